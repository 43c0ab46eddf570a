package clinical

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/clinical/model/dto"
	"hms/internal/domains/clinical/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Clinical
	otel    otel.Otel
}

func New(service service.Clinical, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clinical", func(routerGroup chi.Router) {
		routerGroup.Post("/prescriptions", handler.WritePrescription)
		routerGroup.Get("/prescriptions", handler.GetPrescriptions)
		routerGroup.Post("/records", handler.AddPatientRecord)
		routerGroup.Get("/records", handler.GetPatientRecords)
	})
}


// WritePrescription writes a prescription.
// @Summary Write a prescription
// @Description Doctors always sign as themselves. Other authors must name the doctor.
// @Tags Clinical
// @Accept json
// @Produce json
// @Param request body dto.NoteRequest true "Note Request"
// @Success 201 {object} response.Data[dto.NoteResponse] "Prescription written successfully"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/clinical/prescriptions [post]
// @Security BearerAuth
func (handler *Handler) WritePrescription(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".WritePrescription")
	defer scope.End()

	req := dto.NoteRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.WritePrescription(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to write prescription")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Prescription written successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPrescriptions lists the prescriptions of a patient, newest first.
// @Summary List prescriptions
// @Tags Clinical
// @Produce json
// @Param patient query string true "Patient username"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetNotesResponse] "List prescriptions"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/clinical/prescriptions [get]
// @Security BearerAuth
func (handler *Handler) GetPrescriptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrescriptions")
	defer scope.End()

	patient := r.URL.Query().Get(constant.RequestParamPatient)
	if patient == "" {
		response.WithError(w, failure.BadRequestFromString("patient is required"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListPrescriptions(ctx, patient, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("patient", patient).Msg("failed to get prescriptions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddPatientRecord adds a patient record.
// @Summary Add a patient record
// @Description Doctors always sign as themselves. Other authors must name the doctor.
// @Tags Clinical
// @Accept json
// @Produce json
// @Param request body dto.NoteRequest true "Note Request"
// @Success 201 {object} response.Data[dto.NoteResponse] "Patient record added successfully"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/clinical/records [post]
// @Security BearerAuth
func (handler *Handler) AddPatientRecord(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddPatientRecord")
	defer scope.End()

	req := dto.NoteRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.AddPatientRecord(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to write patient record")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Patient record added successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPatientRecords lists the patient records of a patient, newest first.
// @Summary List patient records
// @Tags Clinical
// @Produce json
// @Param patient query string true "Patient username"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetNotesResponse] "List patient records"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/clinical/records [get]
// @Security BearerAuth
func (handler *Handler) GetPatientRecords(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPatientRecords")
	defer scope.End()

	patient := r.URL.Query().Get(constant.RequestParamPatient)
	if patient == "" {
		response.WithError(w, failure.BadRequestFromString("patient is required"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListPatientRecords(ctx, patient, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("patient", patient).Msg("failed to get patient records")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
