package schedule

import (
	"net/http"

	"clubhouse/infras/otel"
	"clubhouse/internal/domains/schedule/service"
	"clubhouse/shared/constant"
	"clubhouse/shared/validator"
	"clubhouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedules", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSchedules)
		routerGroup.Get("/closed-frames", handler.GetClosedFrames)
	})
}

func (handler *Handler) GetSchedules(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSchedules")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedules")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetClosedFrames returns the date's blocked intervals per court for the
// calendar view.
func (handler *Handler) GetClosedFrames(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClosedFrames")
	defer scope.End()

	date := request.URL.Query().Get(constant.RequestParamDate)

	if err := validator.ValidateVar(date, "required,datetime=2006-01-02"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ClosedFramesForDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("date", date).Msg("failed to get closed frames")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
