package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/unrolled/render"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		log.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// Recoverer turns a panic into the standard 500 body.
func Recoverer(rd *render.Render, exposeErrors bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					log.Printf("Recoverer: panic on %s %s: %v\n%s", r.Method, r.URL.Path, rv, debug.Stack())
					body := map[string]string{"error": "Internal server error"}
					if exposeErrors {
						body["message"] = fmt.Sprint(rv)
					}
					rd.JSON(w, http.StatusInternalServerError, body)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
