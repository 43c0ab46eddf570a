package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

const EventEntryPosted = "ledger.entry_posted"

// LedgerEvent is the value published to the billing topic, keyed by patient.
type LedgerEvent struct {
	Event         string          `json:"event"`
	TransactionID int64           `json:"transaction_id"`
	Patient       string          `json:"patient"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	Timestamp     time.Time       `json:"timestamp"`
}

func NewLedgerEvent(entry LedgerEntryResponse, currency string) LedgerEvent {
	return LedgerEvent{
		Event:         EventEntryPosted,
		TransactionID: entry.ID,
		Patient:       entry.Patient,
		Type:          entry.Type,
		Amount:        entry.Amount,
		Balance:       entry.Balance,
		Currency:      currency,
		Timestamp:     entry.Date,
	}
}
