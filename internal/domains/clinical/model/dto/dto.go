package dto

import (
	"strings"
	"time"

	"hms/internal/domains/clinical/model"
	"hms/shared"
	gDto "hms/shared/dto"
)

// NoteRequest is the body of both a prescription and a patient record.
type NoteRequest struct {
	Doctor  string `json:"doctor,omitempty" validate:"omitempty,max=100"`
	Patient string `json:"patient"          validate:"required,max=100"`
	Text    string `json:"text"             validate:"required,max=4000"`
}

func (r *NoteRequest) Normalize() {
	r.Doctor = strings.TrimSpace(r.Doctor)
	r.Patient = strings.TrimSpace(r.Patient)
	r.Text = strings.TrimSpace(r.Text)
}

func (r *NoteRequest) ToPrescription(now time.Time) model.Prescription {
	return model.Prescription{Patient: r.Patient, Doctor: r.Doctor, Text: r.Text, CreatedAt: now}
}

func (r *NoteRequest) ToRecord(now time.Time) model.PatientRecord {
	return model.PatientRecord{Patient: r.Patient, Doctor: r.Doctor, Text: r.Text, CreatedAt: now}
}

func PatientFilter(patient, table string) gDto.FilterGroup {
	return shared.FilterByID(patient, model.FieldPatient, table)
}

type NoteResponse struct {
	ID        int64     `json:"id"`
	Patient   string    `json:"patient"`
	Doctor    string    `json:"doctor"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *NoteResponse) FromPrescription(m model.Prescription) {
	r.ID = m.ID
	r.Patient = m.Patient
	r.Doctor = m.Doctor
	r.Text = m.Text
	r.CreatedAt = m.CreatedAt
}

func (r *NoteResponse) FromRecord(m model.PatientRecord) {
	r.ID = m.ID
	r.Patient = m.Patient
	r.Doctor = m.Doctor
	r.Text = m.Text
	r.CreatedAt = m.CreatedAt
}

type GetNotesResponse struct {
	Notes     []NoteResponse `json:"notes"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetNotesResponse) FromPrescriptions(models []model.Prescription, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notes = make([]NoteResponse, len(models))
	for i, mod := range models {
		r.Notes[i].FromPrescription(mod)
	}
}

func (r *GetNotesResponse) FromRecords(models []model.PatientRecord, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notes = make([]NoteResponse, len(models))
	for i, mod := range models {
		r.Notes[i].FromRecord(mod)
	}
}
