package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	LedgerTableName  = "financialtransactions"
	LedgerEntityName = "financial transaction"

	RevenueTableName  = "revenue"
	RevenueEntityName = "revenue"

	CostTableName  = "costs"
	CostEntityName = "cost"
)

const (
	FieldTransactionID   = "transactionid"
	FieldPatient         = "patient"
	FieldTransactionType = "transactiontype"
	FieldAmount          = "amount"
	FieldBalance         = "balance"
	FieldTransactionDate = "transactiondate"

	FieldRevenueID = "revenueid"
	FieldCostID    = "costid"
)

const (
	TypeAppointmentPayment = "Appointment Payment"
	TypeMedicationPayment  = "Medication Payment"
	TypeDeposit            = "Deposit"
)

// LedgerEntry is one row of a patient's append-only ledger.
type LedgerEntry struct {
	ID      int64           `db:"transactionid"   insert:"-"`
	Patient string          `db:"patient"`
	Type    string          `db:"transactiontype"`
	Amount  decimal.Decimal `db:"amount"`
	Balance decimal.Decimal `db:"balance"`
	Date    time.Time       `db:"transactiondate"`
}

// PostedBalance is a patient's running balance and the entry that produced it.
type PostedBalance struct {
	TransactionID int64           `db:"transactionid"`
	Balance       decimal.Decimal `db:"balance"`
}

type Revenue struct {
	ID     int64           `db:"revenueid" insert:"-"`
	Source string          `db:"source"`
	Amount decimal.Decimal `db:"amount"`
	Date   time.Time       `db:"date"`
}

type Cost struct {
	ID       int64           `db:"costid"   insert:"-"`
	Category string          `db:"category"`
	Amount   decimal.Decimal `db:"amount"`
	Date     time.Time       `db:"date"`
}

// PendingPayment is a patient's unsettled appointment and medication charges.
type PendingPayment struct {
	Patient     string          `db:"patient"`
	Outstanding decimal.Decimal `db:"outstanding"`
}

type Totals struct {
	Revenue decimal.Decimal `db:"revenue"`
	Costs   decimal.Decimal `db:"costs"`
}
