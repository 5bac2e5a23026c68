package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/config"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/time/rate"
)

type Handlers struct {
	Auth         AuthHandler
	User         UserHandler
	Company      CompanyHandler
	Member       MemberHandler
	StatusOfWork StatusOfWorkHandler
}

// RateLimiters are shared with the scheduler, which purges idle buckets.
type RateLimiters struct {
	IP   *middleware.IPRateLimiter
	User *middleware.IPRateLimiter
}

func NewRateLimiters(cfg config.AppConfig) RateLimiters {
	return RateLimiters{
		IP:   middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
		User: middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}
}

func NewRouter(cfg config.AppConfig, logLevel slog.Level, jwtService jwt.Service, limiters RateLimiters, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.Name),
		slog.String("version", cfg.Version),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.RateLimitByIP(limiters.IP))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Auth.Signup)
		r.Post("/login", h.Auth.Login)
		r.Post("/refresh", h.Auth.RefreshToken)
		r.Post("/logout", h.Auth.Logout)
		r.Get("/login/google", h.Auth.LoginWithGoogle)
		r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
	})

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
		r.Use(middleware.AuthRequired)
		r.Use(middleware.RateLimitByUser(limiters.User))

		r.Route("/users/me", func(r chi.Router) {
			r.Get("/", h.User.GetMe)
			r.Patch("/", h.User.UpdateMe)
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", h.Company.List)
			r.Post("/", h.Company.Create)
			r.Route("/{companyId}", func(r chi.Router) {
				r.Get("/", h.Company.GetByID)
				r.Patch("/", h.Company.Update)
				r.Delete("/", h.Company.Delete)
				r.Post("/members", h.Member.Join)
			})
		})

		r.Route("/status/{statusId}", func(r chi.Router) {
			r.Get("/", h.StatusOfWork.Get)
			r.Patch("/", h.StatusOfWork.Update)
			r.Delete("/", h.StatusOfWork.Delete)
		})

		r.Route("/worker", func(r chi.Router) {
			r.Get("/companies", h.Member.ListMine)
			r.Get("/mywork", h.StatusOfWork.FindMine)
			r.Get("/mywork/vacations", h.StatusOfWork.ListMyVacations)
			r.Post("/mywork/vacations", h.StatusOfWork.RequestVacation)
		})

		r.Route("/manager", func(r chi.Router) {
			r.Post("/vacations/{vacationId}/{status}", h.StatusOfWork.ReviewVacation)

			r.Route("/{companyId}", func(r chi.Router) {
				r.Get("/members", h.Member.ListByCompany)
				r.Patch("/members/{memberId}", h.Member.Update)
				r.Delete("/members/{memberId}", h.Member.Delete)
				r.Post("/members/{memberId}/status", h.StatusOfWork.Create)
				r.Get("/status", h.StatusOfWork.FindByCompany)
				r.Get("/vacations", h.StatusOfWork.ListCompanyVacations)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.BadRequest(w, "Method not allowed", nil)
	})
	return r
}
