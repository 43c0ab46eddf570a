package dto

import (
	appointmentDto "hms/internal/domains/appointment/model/dto"

	"github.com/shopspring/decimal"
)

type RequestAppointmentRequest struct {
	Doctor      string `json:"doctor"       validate:"required,max=100"`
	Patient     string `json:"patient"      validate:"required,max=100"`
	Date        string `json:"date"         validate:"required,date"`
	Time        string `json:"time"         validate:"required,clock"`
	RoomType    string `json:"room_type"    validate:"required,max=50"`
	Department  string `json:"department"   validate:"required,max=100"`
	IsEmergency bool   `json:"is_emergency"`
}

// ToBooking builds the booking for the allocated room.
func (r *RequestAppointmentRequest) ToBooking(room int) appointmentDto.BookAppointmentRequest {
	return appointmentDto.BookAppointmentRequest{
		Doctor:      r.Doctor,
		Patient:     r.Patient,
		Date:        r.Date,
		Time:        r.Time,
		Room:        room,
		Department:  r.Department,
		IsEmergency: r.IsEmergency,
	}
}

type RequestAppointmentResponse struct {
	AppointmentID int64           `json:"appointment_id"`
	Room          int             `json:"room"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"string"`
}

type CancelAndReleaseResponse struct {
	AppointmentID int64 `json:"appointment_id"`
	Room          int   `json:"room"`
}
