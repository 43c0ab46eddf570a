package dto

import (
	"strings"

	"hms/internal/domains/appointment/model"
	"hms/shared"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"
)

type BookAppointmentRequest struct {
	Doctor      string `json:"doctor"       validate:"required,max=100"`
	Patient     string `json:"patient"      validate:"required,max=100"`
	Date        string `json:"date"         validate:"required,date"`
	Time        string `json:"time"         validate:"required,clock"`
	Room        int    `json:"room"         validate:"required,gt=0"`
	Department  string `json:"department"   validate:"required,max=100"`
	IsEmergency bool   `json:"is_emergency"`
}

// Normalize trims the free-text identifiers in place.
func (r *BookAppointmentRequest) Normalize() {
	r.Doctor = strings.TrimSpace(r.Doctor)
	r.Patient = strings.TrimSpace(r.Patient)
	r.Department = strings.TrimSpace(r.Department)
}

func (r *BookAppointmentRequest) ToModel() (model.Appointment, error) {
	date, err := timezone.ParseDate(r.Date)
	if err != nil {
		return model.Appointment{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	clock, err := timezone.ParseClock(r.Time)
	if err != nil {
		return model.Appointment{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	return model.Appointment{
		Doctor:      r.Doctor,
		Patient:     r.Patient,
		Date:        date,
		Time:        clock,
		Room:        r.Room,
		Department:  r.Department,
		IsEmergency: r.IsEmergency,
	}, nil
}

type BookAppointmentResponse struct {
	ID int64 `json:"appointment_id"`
}

// ListAppointmentsFilter narrows a listing to one doctor and/or one patient.
type ListAppointmentsFilter struct {
	Doctor  string
	Patient string
}

func (f ListAppointmentsFilter) ToFilterGroup() gDto.FilterGroup {
	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Doctor != "" {
		filter.Add(gDto.Filter{Field: model.FieldDoctor, Value: f.Doctor, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Patient != "" {
		filter.Add(gDto.Filter{Field: model.FieldPatient, Value: f.Patient, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return filter
}

// SlotFilter matches appointments holding the same room at the same date and time.
func SlotFilter(m model.Appointment) gDto.FilterGroup {
	return shared.FilterAnd(
		gDto.Filter{Field: model.FieldRoom, Value: m.Room, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldDate, Value: m.Date.String(), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldTime, Value: m.Time.String(), Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)
}

type AppointmentResponse struct {
	ID          int64  `json:"appointment_id"`
	Doctor      string `json:"doctor"`
	Patient     string `json:"patient"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Room        int    `json:"room"`
	Department  string `json:"department"`
	IsEmergency bool   `json:"is_emergency"`
}

func (r *AppointmentResponse) FromModel(m model.Appointment) {
	r.ID = m.ID
	r.Doctor = m.Doctor
	r.Patient = m.Patient
	r.Date = m.Date.String()
	r.Time = m.Time.String()
	r.Room = m.Room
	r.Department = m.Department
	r.IsEmergency = m.IsEmergency
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}
