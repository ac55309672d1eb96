package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"clubhouse/config"
	"clubhouse/infras/otel"
	"clubhouse/shared/constant"
	"clubhouse/transport/http/response"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const otelHTTPScopeName = "http"

type AppMiddleware interface {
	RequestID(next http.Handler) http.Handler
	Logging(next http.Handler) http.Handler
	Recoverer(next http.Handler) http.Handler
	Tracing(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

// RequestID attaches a request id to the context and echoes it back in the
// response headers, honoring an inbound id when present.
func (a *appMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(constant.RequestHeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(request.Context(), constant.ContextKeyRequestID, requestID)
		writer.Header().Set(constant.RequestHeaderRequestID, requestID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (a *appMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(recorder, request)

		requestID, _ := request.Context().Value(constant.ContextKeyRequestID).(string)

		log.Info().
			Str("method", request.Method).
			Str("path", request.URL.Path).
			Int("status", recorder.status).
			Dur("elapsed", time.Since(start)).
			Str("requestID", requestID).
			Msg("request handled")
	})
}

func (a *appMiddleware) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Any("panic", rec).Str("path", request.URL.Path).Msg("panic recovered")

				response.WithUnhealthy(writer)
			}
		}()

		next.ServeHTTP(writer, request)
	})
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.UserAgent(),
			"http.host":       request.Host,
			"http.source":     request.RemoteAddr,
		})

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
