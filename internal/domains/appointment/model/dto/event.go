package dto

import "time"

const (
	EventBooked    = "appointment.booked"
	EventCancelled = "appointment.cancelled"
)

// AppointmentEvent is the value published to the appointment topic, keyed by patient.
type AppointmentEvent struct {
	Event       string              `json:"event"`
	Appointment AppointmentResponse `json:"appointment"`
	OccurredAt  time.Time           `json:"occurred_at"`
}
