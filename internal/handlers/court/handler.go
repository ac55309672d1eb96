package court

import (
	"net/http"

	"clubhouse/infras/otel"
	"clubhouse/internal/domains/court/service"
	"clubhouse/shared/constant"
	"clubhouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Court
	otel    otel.Otel
}

func New(service service.Court, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/courts", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCourts)
	})
}

func (handler *Handler) GetCourts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourts")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get courts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
