// Package handler exposes the JSON API consumed by the public front end
// and the admin dashboard.
package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/FrancoCalegari/demobodega/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// apiError maps the core error taxonomy to transport responses. Unknown
// errors are logged and collapsed into a generic 500 so internals never
// leak to the client.
func apiError(e *pbCore.RequestEvent, err error) error {
	var validation *core.ValidationError
	var partial *core.PartialWriteError

	switch {
	case errors.Is(err, core.ErrNotFound):
		return e.JSON(http.StatusNotFound, map[string]string{"error": "Not found"})
	case errors.As(err, &validation):
		return e.JSON(http.StatusBadRequest, map[string]string{"error": validation.Error()})
	case errors.As(err, &partial):
		log.Printf("[API] %v", partial)
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Write failed, please retry"})
	default:
		log.Printf("[API] %s %s: %v", e.Request.Method, e.Request.URL.Path, err)
		return e.JSON(http.StatusInternalServerError, map[string]string{"error": "Server error"})
	}
}
