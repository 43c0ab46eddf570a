package model

import "time"

const (
	PrescriptionTableName  = "prescriptions"
	PrescriptionEntityName = "prescription"
	RecordTableName        = "patientrecords"
	RecordEntityName       = "patient record"

	FieldPrescriptionID = "prescriptionid"
	FieldRecordID       = "recordid"
	FieldPatient        = "patient"
	FieldDoctor         = "doctor"
	FieldPrescription   = "prescription"
	FieldRecord         = "record"
	FieldCreatedAt      = "createdat"
)

type Prescription struct {
	ID        int64     `db:"prescriptionid" insert:"-"`
	Patient   string    `db:"patient"`
	Doctor    string    `db:"doctor"`
	Text      string    `db:"prescription"`
	CreatedAt time.Time `db:"createdat"`
}

type PatientRecord struct {
	ID        int64     `db:"recordid"  insert:"-"`
	Patient   string    `db:"patient"`
	Doctor    string    `db:"doctor"`
	Text      string    `db:"record"`
	CreatedAt time.Time `db:"createdat"`
}
