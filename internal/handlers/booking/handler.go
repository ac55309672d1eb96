package booking

import (
	"net/http"
	"strconv"

	"clubhouse/infras/otel"
	"clubhouse/internal/domains/booking/model/dto"
	"clubhouse/internal/domains/booking/service"
	"clubhouse/shared/constant"
	"clubhouse/shared/failure"
	"clubhouse/shared/validator"
	"clubhouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookingsForDate)
		routerGroup.Get("/overlapping", handler.GetOverlapping)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.PatchBooking)
	})
}

// CreateBooking admits a new booking through the full validation and overlap
// gauntlet and returns the generated id.
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, dto.CreateBookingResponse{ID: id})
}

// GetBookingsForDate lists the date's active bookings with nested players.
func (handler *Handler) GetBookingsForDate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsForDate")
	defer scope.End()

	date := request.URL.Query().Get(constant.RequestParamDate)

	if err := validator.ValidateVar(date, "required,datetime=2006-01-02"); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetForDate(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetOverlapping previews conflicts for a candidate slot without taking locks.
func (handler *Handler) GetOverlapping(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverlapping")
	defer scope.End()

	query := request.URL.Query()

	courtID, err := strconv.ParseInt(query.Get("court_id"), 10, 64)
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("invalid court_id"))

		return
	}

	date := query.Get(constant.RequestParamDate)
	start := query.Get("start")
	end := query.Get("end")

	if err := validator.ValidateVar(date, "required,datetime=2006-01-02"); err != nil {
		response.WithError(writer, err)

		return
	}

	if err := validator.ValidateVar(start, "required,hourmin"); err != nil {
		response.WithError(writer, err)

		return
	}

	if err := validator.ValidateVar(end, "required,hourmin"); err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Overlapping(ctx, courtID, date, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find overlapping bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingByID returns one booking with its derived permission flags.
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("invalid booking id"))

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// PatchBooking dispatches a lifecycle command and returns the affected
// calendar date.
func (handler *Handler) PatchBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PatchBooking")
	defer scope.End()

	id, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil {
		response.WithError(writer, failure.BadRequestFromString("invalid booking id"))

		return
	}

	cmd := dto.PatchCommand{}

	if err := validator.Validate(request.Body, &cmd); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate command")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Patch(ctx, id, cmd)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking", id).Str("command", cmd.Name).Msg("failed to patch booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking command " + cmd.Name + " applied")

	response.WithJSON(writer, http.StatusOK, res)
}
