package billing

import (
	"net/http"

	"hms/infras/otel"
	"hms/internal/domains/billing/model/dto"
	"hms/internal/domains/billing/service"
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
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/billing", func(routerGroup chi.Router) {
		routerGroup.Get("/balance/{patient}", handler.GetBalance)
		routerGroup.Get("/history/{patient}", handler.GetHistory)
		routerGroup.Post("/deposit", handler.Deposit)
		routerGroup.Post("/entries", handler.PostEntry)
		routerGroup.Post("/charges/appointment", handler.ChargeAppointment)
		routerGroup.Post("/charges/medication", handler.ChargeMedication)
	})

	router.Route("/finance", func(routerGroup chi.Router) {
		routerGroup.Post("/revenue", handler.TrackRevenue)
		routerGroup.Post("/costs", handler.TrackCosts)
		routerGroup.Get("/pending", handler.PendingPayments)
		routerGroup.Get("/profitability", handler.Profitability)
	})
}

// GetBalance returns the running balance of a patient.
// @Summary Get patient balance
// @Description Returns zero for a patient with no ledger entries. Patients may only read their own balance.
// @Tags Billing
// @Produce json
// @Param patient path string true "Patient username"
// @Success 200 {object} response.Data[dto.BalanceResponse] "Patient balance"
// @Failure 403 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/billing/balance/{patient} [get]
// @Security BearerAuth
func (handler *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBalance")
	defer scope.End()

	patient := chi.URLParam(r, constant.RequestParamPatient)

	if !role.ActorFromContext(ctx).ActsFor(patient) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	res, err := handler.service.GetBalance(ctx, patient)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("patient", patient).Msg("failed to get balance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetHistory lists the ledger entries of a patient, newest first.
// @Summary Get billing history
// @Tags Billing
// @Produce json
// @Param patient path string true "Patient username"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetHistoryResponse] "Billing history"
// @Failure 403 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/billing/history/{patient} [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	patient := chi.URLParam(r, constant.RequestParamPatient)

	if !role.ActorFromContext(ctx).ActsFor(patient) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.History(ctx, patient, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("patient", patient).Msg("failed to get billing history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Deposit credits a patient account.
// @Summary Deposit funds
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.DepositRequest true "Deposit Request"
// @Success 201 {object} response.Data[dto.LedgerEntryResponse] "Deposit recorded"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/billing/deposit [post]
// @Security BearerAuth
func (handler *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Deposit")
	defer scope.End()

	req := dto.DepositRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if !role.ActorFromContext(ctx).ActsFor(req.Patient) {
		response.WithError(w, failure.ResourceRestrictedError)

		return
	}

	res, err := handler.service.Deposit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deposit")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Deposit recorded successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// PostEntry appends a signed ledger entry.
// @Summary Post a ledger entry
// @Description Negative amounts are charges and positive amounts are payments.
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.PostEntryRequest true "Post Entry Request"
// @Success 201 {object} response.Data[dto.LedgerEntryResponse] "Entry posted"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/billing/entries [post]
// @Security BearerAuth
func (handler *Handler) PostEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PostEntry")
	defer scope.End()

	req := dto.PostEntryRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.PostEntry(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to post ledger entry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ledger entry posted successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// ChargeAppointment charges the configured appointment fee.
// @Summary Charge appointment fee
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.ChargeAppointmentRequest true "Charge Appointment Request"
// @Success 201 {object} response.Data[dto.LedgerEntryResponse] "Fee charged"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/billing/charges/appointment [post]
// @Security BearerAuth
func (handler *Handler) ChargeAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChargeAppointment")
	defer scope.End()

	req := dto.ChargeAppointmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ChargeAppointmentFee(ctx, req.Patient)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to charge appointment fee")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// ChargeMedication charges quantity times price for a medication.
// @Summary Charge medication
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body dto.ChargeMedicationRequest true "Charge Medication Request"
// @Success 201 {object} response.Data[dto.LedgerEntryResponse] "Medication charged"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/billing/charges/medication [post]
// @Security BearerAuth
func (handler *Handler) ChargeMedication(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChargeMedication")
	defer scope.End()

	req := dto.ChargeMedicationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ChargeMedication(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to charge medication")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// TrackRevenue records hospital revenue.
// @Summary Track revenue
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.TrackRevenueRequest true "Track Revenue Request"
// @Success 201 {object} response.Message "Revenue recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/finance/revenue [post]
// @Security BearerAuth
func (handler *Handler) TrackRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrackRevenue")
	defer scope.End()

	req := dto.TrackRevenueRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.TrackRevenue(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to track revenue")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Revenue recorded successfully")
}

// TrackCosts records a hospital cost.
// @Summary Track costs
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.TrackCostRequest true "Track Cost Request"
// @Success 201 {object} response.Message "Cost recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/finance/costs [post]
// @Security BearerAuth
func (handler *Handler) TrackCosts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrackCosts")
	defer scope.End()

	req := dto.TrackCostRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.TrackCosts(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to track costs")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Cost recorded successfully")
}

// PendingPayments lists patients with a negative balance.
// @Summary Pending payments
// @Tags Finance
// @Produce json
// @Success 200 {object} response.Data[[]dto.PendingPaymentResponse] "Outstanding balances"
// @Failure 503 {object} response.Error
// @Router /v1/finance/pending [get]
// @Security BearerAuth
func (handler *Handler) PendingPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PendingPayments")
	defer scope.End()

	res, err := handler.service.PendingPayments(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Profitability reports revenue minus costs.
// @Summary Profitability
// @Tags Finance
// @Produce json
// @Success 200 {object} response.Data[dto.ProfitabilityResponse] "Profitability report"
// @Failure 503 {object} response.Error
// @Router /v1/finance/profitability [get]
// @Security BearerAuth
func (handler *Handler) Profitability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Profitability")
	defer scope.End()

	res, err := handler.service.Profitability(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profitability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
