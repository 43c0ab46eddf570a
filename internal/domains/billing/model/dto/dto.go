package dto

import (
	"strings"
	"time"

	"hms/internal/domains/billing/model"
	"hms/shared"

	"github.com/shopspring/decimal"
)

type PostEntryRequest struct {
	Patient string          `json:"patient" validate:"required,max=100"`
	Type    string          `json:"type"    validate:"required,max=100"`
	Amount  decimal.Decimal `json:"amount"  swaggertype:"string" example:"-200"`
}

func (r *PostEntryRequest) Normalize() {
	r.Patient = strings.TrimSpace(r.Patient)
	r.Type = strings.TrimSpace(r.Type)
}

type ChargeAppointmentRequest struct {
	Patient string `json:"patient" validate:"required,max=100"`
}

type ChargeMedicationRequest struct {
	Patient    string          `json:"patient"    validate:"required,max=100"`
	Medication string          `json:"medication" validate:"required,max=100"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"      swaggertype:"string" example:"12.50"`
}

type DepositRequest struct {
	Patient string          `json:"patient" validate:"required,max=100"`
	Amount  decimal.Decimal `json:"amount"  swaggertype:"string" example:"100"`
}

type TrackRevenueRequest struct {
	Source string          `json:"source" validate:"required,max=100"`
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"1500"`
}

type TrackCostRequest struct {
	Category string          `json:"category" validate:"required,max=100"`
	Amount   decimal.Decimal `json:"amount"   swaggertype:"string" example:"300"`
}

type LedgerEntryResponse struct {
	ID      int64           `json:"transaction_id"`
	Patient string          `json:"patient"`
	Type    string          `json:"type"`
	Amount  decimal.Decimal `json:"amount"  swaggertype:"string"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string"`
	Date    time.Time       `json:"transaction_date"`
}

func (r *LedgerEntryResponse) FromModel(m model.LedgerEntry) {
	r.ID = m.ID
	r.Patient = m.Patient
	r.Type = m.Type
	r.Amount = m.Amount
	r.Balance = m.Balance
	r.Date = m.Date
}

type BalanceResponse struct {
	Patient  string          `json:"patient"`
	Balance  decimal.Decimal `json:"balance"  swaggertype:"string"`
	Currency string          `json:"currency"`
}

type GetHistoryResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetHistoryResponse) FromModels(models []model.LedgerEntry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]LedgerEntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}

type PendingPaymentResponse struct {
	Patient     string          `json:"patient"`
	Outstanding decimal.Decimal `json:"outstanding" swaggertype:"string"`
}

type ProfitabilityResponse struct {
	Revenue  decimal.Decimal `json:"total_revenue" swaggertype:"string"`
	Costs    decimal.Decimal `json:"total_costs"   swaggertype:"string"`
	Profit   decimal.Decimal `json:"profit"        swaggertype:"string"`
	Currency string          `json:"currency"`
}
