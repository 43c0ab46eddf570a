package model

import (
	"hms/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "pharmacyinventory"
	EntityName = "medication"

	FieldID     = "medicationid"
	FieldName   = "medicationname"
	FieldStock  = "stock"
	FieldPrice  = "price"
	FieldExpiry = "expirydate"
)

type Medication struct {
	ID         int64           `db:"medicationid"   insert:"-"`
	Name       string          `db:"medicationname"`
	Stock      int             `db:"stock"`
	Price      decimal.Decimal `db:"price"`
	ExpiryDate *timezone.Date  `db:"expirydate"`
}
