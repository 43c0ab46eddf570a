package appointment

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/appointment/model/dto"
	"hms/internal/domains/appointment/service"
	schedulingDto "hms/internal/domains/scheduling/model/dto"
	schedulingService "hms/internal/domains/scheduling/service"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/role"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Appointment
	scheduling schedulingService.Scheduling
	otel       otel.Otel
}

func New(service service.Appointment, scheduling schedulingService.Scheduling, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		scheduling: scheduling,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BookAppointment)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Post("/request", handler.RequestAppointment)
		routerGroup.Get("/{id}", handler.GetAppointment)
		routerGroup.Delete("/{id}", handler.CancelAppointment)
		routerGroup.Post("/{id}/cancel-and-release", handler.CancelAndRelease)
	})
}

func appointmentID(r *http.Request) (int64, error) {
	id, err := shared.ConvertStringToInt64(chi.URLParam(r, constant.RequestParamID))
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("invalid appointment id")
	}

	return id, nil
}

// BookAppointment records an appointment in an already allocated room.
// @Summary Book an appointment
// @Description Book a doctor and patient into a room for a date and time. Date is YYYY-MM-DD and time is HH:MM.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} response.Data[dto.AppointmentResponse] "Appointment booked"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/appointments [post]
// @Security BearerAuth
func (handler *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookAppointment")
	defer scope.End()

	req := dto.BookAppointmentRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	if !role.ActorFromContext(ctx).ActsFor(req.Patient) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment booked successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// RequestAppointment allocates a room, books and charges the fee in one step.
// @Summary Request an appointment
// @Description Allocate a room of the requested type, book the appointment and charge the appointment fee atomically.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body schedulingDto.RequestAppointmentRequest true "Request Appointment Request"
// @Success 201 {object} response.Data[schedulingDto.RequestAppointmentResponse] "Appointment scheduled"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/appointments/request [post]
// @Security BearerAuth
func (handler *Handler) RequestAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestAppointment")
	defer scope.End()

	req := schedulingDto.RequestAppointmentRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	if !role.ActorFromContext(ctx).ActsFor(req.Patient) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	res, err := handler.scheduling.RequestAppointment(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment scheduled successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetAppointments lists appointments visible to the caller.
// @Summary List appointments
// @Description Patients see their own appointments and doctors their own schedule. Other roles may filter by doctor or patient.
// @Tags Appointment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param doctor query string false "Filter by doctor"
// @Param patient query string false "Filter by patient"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse] "List of appointments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	var (
		res dto.GetAppointmentsResponse
		err error
	)

	switch actor := role.ActorFromContext(ctx); actor.Role {
	case role.Patient:
		res, err = handler.service.ListForPatient(ctx, actor.Username, queryParams)
	case role.Doctor:
		res, err = handler.service.ListForDoctor(ctx, actor.Username, queryParams)
	default:
		res, err = handler.service.List(ctx, queryParams, dto.ListAppointmentsFilter{
			Doctor:  r.URL.Query().Get(constant.RequestParamDoctor),
			Patient: r.URL.Query().Get(constant.RequestParamPatient),
		})
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointments retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetAppointment retrieves one appointment.
// @Summary Get an appointment
// @Tags Appointment
// @Produce json
// @Param id path integer true "Appointment ID"
// @Success 200 {object} response.Data[dto.AppointmentResponse] "Appointment details"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointment")
	defer scope.End()

	id, err := appointmentID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("appointment", id).Msg("failed to get appointment")

		response.WithError(w, err)

		return
	}

	if !role.ActorFromContext(ctx).Sees(res.Doctor, res.Patient) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelAppointment removes an appointment and leaves its room allocated.
// @Summary Cancel an appointment
// @Tags Appointment
// @Produce json
// @Param id path integer true "Appointment ID"
// @Success 200 {object} response.Message "Appointment cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/appointments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	id, err := appointmentID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err = handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("appointment", id).Msg("failed to cancel appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Appointment cancelled successfully")
}

// CancelAndRelease cancels an appointment and frees its room atomically.
// @Summary Cancel an appointment and release its room
// @Tags Appointment
// @Produce json
// @Param id path integer true "Appointment ID"
// @Success 200 {object} response.Data[schedulingDto.CancelAndReleaseResponse] "Appointment cancelled and room released"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/appointments/{id}/cancel-and-release [post]
// @Security BearerAuth
func (handler *Handler) CancelAndRelease(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAndRelease")
	defer scope.End()

	id, err := appointmentID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.scheduling.CancelAndRelease(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("appointment", id).Msg("failed to cancel appointment and release room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment cancelled and room released")

	response.WithJSON(w, http.StatusOK, res)
}
