package httpx

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/growthwpmaxx/face-ai-relay/internal/metrics"
)

// MaxBodyBytes caps inbound bodies; two base64 photos fit comfortably.
const MaxBodyBytes = 10 << 20

// Recoverer turns any panic into a 500 {error, detail} JSON body.
// A response that was already started is left as is; the fault is only logged.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logrus.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"request_id": middleware.GetReqID(r.Context()),
				"panic":      rec,
				"stack":      string(debug.Stack()),
			}).Error("[http] unhandled fault")

			if ww.Status() != 0 {
				return
			}
			WriteJSON(ww, http.StatusInternalServerError, ErrorBody{
				Error:  "An unexpected internal server error occurred.",
				Detail: fmt.Sprint(rec),
			})
		}()

		next.ServeHTTP(ww, r)
	})
}

// RequestLogger logs every request and counts responses per route.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			metrics.ObserveResponse(route, strconv.Itoa(status))

			entry := logrus.WithFields(logrus.Fields{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"took":       time.Since(start),
				"remote":     r.RemoteAddr,
				"request_id": middleware.GetReqID(r.Context()),
			})
			if status >= http.StatusInternalServerError {
				entry.Warn("[http] request")
				return
			}
			entry.Info("[http] request")
		}()

		next.ServeHTTP(ww, r)
	})
}

func LimitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, n)
			}
			next.ServeHTTP(w, r)
		})
	}
}
