package api

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"fyyur/internal/logger"
)

// RequestLogger logs method, path, status and duration of every request.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				log.LogAPI(r.Method, r.URL.Path, status, time.Since(start))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Recoverer turns a panicking handler into the 500 page.
func (h *Handler) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rvr := recover()
			if rvr == nil {
				return
			}
			if rvr == http.ErrAbortHandler {
				panic(rvr)
			}
			h.Logger.Error("HTTP", fmt.Sprintf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rvr, debug.Stack()))
			h.ServerError(w, r)
		}()
		next.ServeHTTP(w, r)
	})
}
