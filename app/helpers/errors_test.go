package helpers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Rakhulsr/go-catalog/app/helpers"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/renderer"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		debug      bool
		wantStatus int
		wantError  string
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("lookup: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantError:  "Not found",
			wantMsg:    "resource not found",
		},
		{
			name:       "conflict",
			err:        &services.ConflictError{Message: "still has products"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Conflict",
			wantMsg:    "still has products",
		},
		{
			name:       "reference",
			err:        &services.ReferenceError{Message: "sub-category x does not exist"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Reference error",
			wantMsg:    "sub-category x does not exist",
		},
		{
			name:       "foreign key",
			err:        fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated),
			wantStatus: http.StatusBadRequest,
			wantError:  "Reference error",
			wantMsg:    "the request references a record that does not exist or is still in use",
		},
		{
			name:       "unauthorized",
			err:        fmt.Errorf("%w: bad token", services.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantError:  "Unauthorized",
			wantMsg:    "authentication failed",
		},
		{
			name:       "internal hidden",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
		{
			name:       "internal in debug",
			err:        errors.New("connection reset"),
			debug:      true,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
			wantMsg:    "connection reset",
		},
	}

	rd := renderer.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)

			rec := httptest.NewRecorder()
			helpers.WriteError(rd, rec, tt.err, tt.debug)

			c.Assert(rec.Code, qt.Equals, tt.wantStatus)
			var body map[string]string
			c.Assert(json.Unmarshal(rec.Body.Bytes(), &body), qt.IsNil)
			c.Assert(body["error"], qt.Equals, tt.wantError)
			c.Assert(body["message"], qt.Equals, tt.wantMsg)
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	c := qt.New(t)

	rec := httptest.NewRecorder()
	helpers.WriteError(renderer.New(), rec, &services.ValidationError{Details: []services.FieldError{
		{Field: "name", Message: "name is required"},
	}}, false)

	c.Assert(rec.Code, qt.Equals, http.StatusBadRequest)
	c.Assert(strings.TrimSpace(rec.Body.String()), qt.JSONEquals, map[string]interface{}{
		"error":   "Validation error",
		"details": []interface{}{map[string]interface{}{"field": "name", "message": "name is required"}},
	})
}

func TestIsForeignKeyViolation(t *testing.T) {
	c := qt.New(t)

	c.Assert(helpers.IsForeignKeyViolation(&mysql.MySQLError{Number: 1451}), qt.IsTrue)
	c.Assert(helpers.IsForeignKeyViolation(&mysql.MySQLError{Number: 1452}), qt.IsTrue)
	c.Assert(helpers.IsForeignKeyViolation(&mysql.MySQLError{Number: 1062}), qt.IsFalse)
	c.Assert(helpers.IsForeignKeyViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23503"})), qt.IsTrue)
	c.Assert(helpers.IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}), qt.IsFalse)
	c.Assert(helpers.IsForeignKeyViolation(errors.New("constraint failed: FOREIGN KEY constraint failed (787)")), qt.IsTrue)
	c.Assert(helpers.IsForeignKeyViolation(errors.New("disk full")), qt.IsFalse)
}
