package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/workstatus-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/workstatus-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

var errInvalidBody = errors.New("invalid request format")

// decodeJSON reads the body into dst. Unknown fields are rejected.
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// pathID parses a positive numeric URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		var errs validator.ValidationErrors
		errs.Add(name, name+" must be a positive integer")
		return 0, errs
	}
	return id, nil
}

// queryInt parses a required integer query parameter.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		var errs validator.ValidationErrors
		errs.Add(name, name+" must be an integer")
		return 0, errs
	}
	return v, nil
}

func requesterID(r *http.Request) (int64, error) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	return id, nil
}

func sessionFrom(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		IPAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}
