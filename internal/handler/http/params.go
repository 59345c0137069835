package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/brilliantafrica/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// queryID reads an optional non-negative integer query parameter. Missing or
// empty values yield 0.
func queryID(r *http.Request, key string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, validator.ValidationErrors{{Field: key, Message: key + " must be a non-negative integer"}}
	}
	return id, nil
}

// pathID reads the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, validator.ValidationErrors{{Field: "id", Message: "id must be a positive integer"}}
	}
	return id, nil
}

func query(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
