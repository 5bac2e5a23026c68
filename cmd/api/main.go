package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/cmlabs-hris/workstatus-backend-go/internal/service/auth"
	serviceCompany "github.com/cmlabs-hris/workstatus-backend-go/internal/service/company"
	serviceMember "github.com/cmlabs-hris/workstatus-backend-go/internal/service/member"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/service/policy"
	serviceStatusOfWork "github.com/cmlabs-hris/workstatus-backend-go/internal/service/statusofwork"
	serviceUser "github.com/cmlabs-hris/workstatus-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	memberRepo := postgresql.NewMemberRepository(db)
	statusOfWorkRepo := postgresql.NewStatusOfWorkRepository(db)
	vacationRepo := postgresql.NewRequestVacationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	evaluator := policy.NewEvaluator(memberRepo)
	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	userService := serviceUser.NewUserService(db, userRepo)
	companyService := serviceCompany.NewCompanyService(db, companyRepo, memberRepo, evaluator)
	memberService := serviceMember.NewMemberService(db, memberRepo, companyRepo, evaluator)
	statusOfWorkService := serviceStatusOfWork.NewStatusOfWorkService(db, statusOfWorkRepo, vacationRepo, memberRepo, evaluator)

	limiters := appHTTP.NewRateLimiters(cfg.App)
	router := appHTTP.NewRouter(cfg.App, cfg.LogLevel(), JWTService, limiters, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authService, googleService),
		User:         appHTTP.NewUserHandler(userService),
		Company:      appHTTP.NewCompanyHandler(companyService),
		Member:       appHTTP.NewMemberHandler(memberService),
		StatusOfWork: appHTTP.NewStatusOfWorkHandler(statusOfWorkService),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler()
	cron.NewSessionJobs(JWTRepository, cfg.JWT.PurgeRetention).RegisterJobs(scheduler, cfg.JWT.PurgeInterval)
	cron.NewLimiterJobs(cfg.App.RateLimitIdleTTL, limiters.IP, limiters.User).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env, "google_oauth", cfg.OAuth2Google.Enabled())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server error", "error", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
