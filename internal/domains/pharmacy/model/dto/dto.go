package dto

import (
	"strings"

	"hms/internal/domains/pharmacy/model"
	"hms/shared"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"

	"github.com/shopspring/decimal"
)

type AddMedicationRequest struct {
	Name       string          `json:"name"                  validate:"required,max=100"`
	Stock      int             `json:"stock"                 validate:"gte=0"`
	Price      decimal.Decimal `json:"price"                 validate:"gte=0"                 swaggertype:"string" example:"12.50"`
	ExpiryDate string          `json:"expiry_date,omitempty" validate:"omitempty,date"        example:"2027-01-31"`
}

func (r *AddMedicationRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ExpiryDate = strings.TrimSpace(r.ExpiryDate)
}

func (r *AddMedicationRequest) ToModel() (model.Medication, error) {
	medication := model.Medication{
		Name:  r.Name,
		Stock: r.Stock,
		Price: r.Price.Round(2),
	}

	if r.ExpiryDate != "" {
		expiry, err := timezone.ParseDate(r.ExpiryDate)
		if err != nil {
			return medication, failure.BadRequest(err) //nolint:wrapcheck
		}

		medication.ExpiryDate = &expiry
	}

	return medication, nil
}

type UpdateInventoryRequest struct {
	Stock int `json:"stock" validate:"required,gt=0"`
}

type DispenseRequest struct {
	Patient    string `json:"patient"    validate:"required,max=100"`
	Medication string `json:"medication" validate:"required,max=100"`
	Quantity   int    `json:"quantity"   validate:"required,gt=0"`
}

func (r *DispenseRequest) Normalize() {
	r.Patient = strings.TrimSpace(r.Patient)
	r.Medication = strings.TrimSpace(r.Medication)
}

// SearchFilter matches medication names containing search, case-insensitively.
func SearchFilter(search string) gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if search = strings.TrimSpace(search); search != "" {
		filter.Add(gDto.Filter{Field: model.FieldName, Value: search, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	return filter
}

// ExpiredFilter matches medications whose expiry date is before day.
func ExpiredFilter(day timezone.Date) gDto.FilterGroup {
	return shared.FilterAnd(
		gDto.Filter{Field: model.FieldExpiry, Value: day.String(), Operator: gDto.FilterOperatorLess, Table: model.TableName},
	)
}

type MedicationResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Stock      int             `json:"stock"`
	Price      decimal.Decimal `json:"price"                 swaggertype:"string"`
	ExpiryDate *timezone.Date  `json:"expiry_date,omitempty" swaggertype:"string"`
}

func (r *MedicationResponse) FromModel(m model.Medication) {
	r.ID = m.ID
	r.Name = m.Name
	r.Stock = m.Stock
	r.Price = m.Price
	r.ExpiryDate = m.ExpiryDate
}

type GetInventoryResponse struct {
	Medications []MedicationResponse `json:"medications"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetInventoryResponse) FromModels(models []model.Medication, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Medications = make([]MedicationResponse, len(models))
	for i, mod := range models {
		r.Medications[i].FromModel(mod)
	}
}

type DispenseResponse struct {
	Medication string          `json:"medication"`
	Quantity   int             `json:"quantity"`
	Remaining  int             `json:"remaining"`
	Charged    decimal.Decimal `json:"charged" swaggertype:"string"`
	Balance    decimal.Decimal `json:"balance" swaggertype:"string"`
}
