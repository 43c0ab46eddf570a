package pharmacy

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/pharmacy/model/dto"
	"hms/internal/domains/pharmacy/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/validator"
	"hms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pharmacy
	otel    otel.Otel
}

func New(service service.Pharmacy, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/pharmacy", func(routerGroup chi.Router) {
		routerGroup.Post("/medications", handler.AddMedication)
		routerGroup.Get("/medications", handler.GetInventory)
		routerGroup.Get("/medications/expired", handler.GetExpired)
		routerGroup.Patch("/medications/{name}/stock", handler.UpdateStock)
		routerGroup.Post("/dispense", handler.Dispense)
	})
}

// AddMedication adds a medication to the inventory.
// @Summary Add a medication
// @Tags Pharmacy
// @Accept json
// @Produce json
// @Param request body dto.AddMedicationRequest true "Add Medication Request"
// @Success 201 {object} response.Message "Medication added successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/pharmacy/medications [post]
// @Security BearerAuth
func (handler *Handler) AddMedication(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddMedication")
	defer scope.End()

	req := dto.AddMedicationRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddMedication(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add medication")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Medication added successfully")

	response.WithMessage(w, http.StatusCreated, "Medication added successfully")
}

// GetInventory lists medications.
// @Summary List inventory
// @Tags Pharmacy
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetInventoryResponse] "Inventory"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/pharmacy/medications [get]
// @Security BearerAuth
func (handler *Handler) GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInventory")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListInventory(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inventory")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetExpired lists medications past their expiry date.
// @Summary List expired medications
// @Tags Pharmacy
// @Produce json
// @Success 200 {object} response.Data[[]dto.MedicationResponse] "Expired medications"
// @Failure 503 {object} response.Error
// @Router /v1/pharmacy/medications/expired [get]
// @Security BearerAuth
func (handler *Handler) GetExpired(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExpired")
	defer scope.End()

	res, err := handler.service.Expired(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get expired medications")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateStock adds stock to a medication, creating it when unknown.
// @Summary Restock a medication
// @Tags Pharmacy
// @Accept json
// @Produce json
// @Param name path string true "Medication name"
// @Param request body dto.UpdateInventoryRequest true "Update Inventory Request"
// @Success 200 {object} response.Data[dto.MedicationResponse] "Medication restocked"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/pharmacy/medications/{name}/stock [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStock")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamName)

	req := dto.UpdateInventoryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateInventory(ctx, name, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("medication", name).Msg("failed to update inventory")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Medication restocked successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Dispense hands out medication and charges the patient.
// @Summary Dispense medication
// @Description Decrement stock and charge quantity times price to the patient in one transaction.
// @Tags Pharmacy
// @Accept json
// @Produce json
// @Param request body dto.DispenseRequest true "Dispense Request"
// @Success 200 {object} response.Data[dto.DispenseResponse] "Medication dispensed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/pharmacy/dispense [post]
// @Security BearerAuth
func (handler *Handler) Dispense(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dispense")
	defer scope.End()

	req := dto.DispenseRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Dispense(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to dispense medication")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Medication dispensed successfully")

	response.WithJSON(w, http.StatusOK, res)
}
