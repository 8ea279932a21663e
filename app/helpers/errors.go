package helpers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

// IsForeignKeyViolation recognizes FK failures from every supported driver.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1451 || myErr.Number == 1452
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// WriteError maps service errors onto the JSON error shapes. Internal
// messages are only exposed when debug is set.
func WriteError(rd *render.Render, w http.ResponseWriter, err error, debug bool) {
	var (
		validationErr *services.ValidationError
		conflictErr   *services.ConflictError
		referenceErr  *services.ReferenceError
	)

	switch {
	case errors.As(err, &validationErr):
		rd.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "Validation error",
			"details": validationErr.Details,
		})
	case errors.As(err, &conflictErr):
		rd.JSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Conflict",
			"message": conflictErr.Message,
		})
	case errors.As(err, &referenceErr):
		rd.JSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Reference error",
			"message": referenceErr.Message,
		})
	case IsForeignKeyViolation(err):
		rd.JSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Reference error",
			"message": "the request references a record that does not exist or is still in use",
		})
	case errors.Is(err, services.ErrNotFound):
		rd.JSON(w, http.StatusNotFound, map[string]string{
			"error":   "Not found",
			"message": "resource not found",
		})
	case errors.Is(err, services.ErrUnauthorized):
		rd.JSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "Unauthorized",
			"message": "authentication failed",
		})
	default:
		log.Printf("WriteError: unhandled error: %v", err)
		body := map[string]string{"error": "Internal server error"}
		if debug {
			body["message"] = err.Error()
		}
		rd.JSON(w, http.StatusInternalServerError, body)
	}
}

func WriteNotFound(rd *render.Render, w http.ResponseWriter, message string) {
	rd.JSON(w, http.StatusNotFound, map[string]string{
		"error":   "Not found",
		"message": message,
	})
}
