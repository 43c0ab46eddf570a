package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/clinical/model"
	gDto "hms/shared/dto"
	gRepo "hms/shared/repository"
)

type Clinical interface {
	InsertPrescription(ctx context.Context, prescription model.Prescription, returning string, dest any) error
	GetPrescriptions(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Prescription, error)
	CountPrescriptions(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertRecord(ctx context.Context, record model.PatientRecord, returning string, dest any) error
	GetRecords(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PatientRecord, error)
	CountRecords(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	prescriptions gRepo.Repository[model.Prescription]
	records       gRepo.Repository[model.PatientRecord]
}

func New(db *postgres.Connection, otel otel.Otel) Clinical {
	return &repositoryImpl{
		prescriptions: gRepo.NewRepository[model.Prescription](model.PrescriptionEntityName, model.PrescriptionTableName, model.FieldPrescriptionID, db, otel),
		records:       gRepo.NewRepository[model.PatientRecord](model.RecordEntityName, model.RecordTableName, model.FieldRecordID, db, otel),
	}
}

func (r *repositoryImpl) InsertPrescription(ctx context.Context, prescription model.Prescription, returning string, dest any) error {
	return r.prescriptions.InsertReturning(ctx, prescription, returning, dest) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPrescriptions(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Prescription, error) {
	return r.prescriptions.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountPrescriptions(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.prescriptions.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertRecord(ctx context.Context, record model.PatientRecord, returning string, dest any) error {
	return r.records.InsertReturning(ctx, record, returning, dest) //nolint:wrapcheck
}

func (r *repositoryImpl) GetRecords(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.PatientRecord, error) {
	return r.records.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountRecords(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.records.Count(ctx, filter) //nolint:wrapcheck
}
