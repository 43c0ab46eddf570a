package model

import "hms/shared/timezone"

const (
	TableName  = "appointments"
	EntityName = "appointment"
)

const (
	FieldID          = "appointmentid"
	FieldDoctor      = "doctor"
	FieldPatient     = "patient"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldRoom        = "room"
	FieldDepartment  = "department"
	FieldIsEmergency = "isemergency"
)

type Appointment struct {
	ID          int64          `db:"appointmentid" insert:"-"`
	Doctor      string         `db:"doctor"`
	Patient     string         `db:"patient"`
	Date        timezone.Date  `db:"date"`
	Time        timezone.Clock `db:"time"`
	Room        int            `db:"room"`
	Department  string         `db:"department"`
	IsEmergency bool           `db:"isemergency"`
}
