package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/akinalp/directory/pkg"
	"github.com/akinalp/directory/pkg/metrics"
	"github.com/akinalp/directory/pkg/ratelimit"
)

// Logger, her isteği tamamlandığında structured log olarak yazar.
// 5xx yanıtlar error, 4xx warn, diğerleri info seviyesindedir.
// Request context'ine de logger eklenir: zerolog.Ctx(r.Context()).
func Logger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newStatusRecorder(w)

			reqLogger := logger.With().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Logger()
			ctx := reqLogger.WithContext(r.Context())

			next.ServeHTTP(wrapped, r.WithContext(ctx))

			var event *zerolog.Event
			switch {
			case wrapped.status >= http.StatusInternalServerError:
				event = reqLogger.Error()
			case wrapped.status >= http.StatusBadRequest:
				event = reqLogger.Warn()
			default:
				event = reqLogger.Info()
			}

			event.
				Str("query", r.URL.RawQuery).
				Int("status", wrapped.status).
				Dur("duration", time.Since(start)).
				Str("ip", ratelimit.ExtractIP(r)).
				Msg("http request")
		})
	}
}

// Recovery, handler'daki panic'i yakalar, loglar ve 500 döner.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					logger.Error().
						Interface("panic", rec).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					pkg.ErrorWithMessage(w, http.StatusInternalServerError, pkg.ErrInternal.Error())
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// Instrument, route bazlı istek sayısı ve süre metriklerini kaydeder.
// route, mux pattern'idir (ör: "GET /api/servers"); ham path kullanılmaz,
// böylece label cardinality sabit kalır.
func Instrument(m *metrics.Metrics, route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newStatusRecorder(w)

			next.ServeHTTP(wrapped, r)

			m.ObserveRequest(route, wrapped.status, time.Since(start))
		})
	}
}

// statusRecorder, yazılan status code'u yakalayan ResponseWriter.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rw *statusRecorder) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}

// Unwrap, http.ResponseController'ın alttaki writer'a ulaşabilmesi için.
func (rw *statusRecorder) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}
