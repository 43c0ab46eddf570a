package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Clinical=MockClinicalService

import (
	"context"
	"fmt"

	"hms/infras/otel"
	"hms/internal/domains/clinical/model"
	"hms/internal/domains/clinical/model/dto"
	"hms/internal/domains/clinical/repository"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/role"
	"hms/shared/timezone"
	"hms/shared/validator"

	"github.com/rs/zerolog/log"
)

type Clinical interface {
	WritePrescription(ctx context.Context, req dto.NoteRequest) (dto.NoteResponse, error)
	ListPrescriptions(ctx context.Context, patient string, req gDto.QueryParams) (dto.GetNotesResponse, error)
	AddPatientRecord(ctx context.Context, req dto.NoteRequest) (dto.NoteResponse, error)
	ListPatientRecords(ctx context.Context, patient string, req gDto.QueryParams) (dto.GetNotesResponse, error)
}

type serviceImpl struct {
	repo repository.Clinical
	otel otel.Otel
}

func New(repo repository.Clinical, otel otel.Otel) Clinical {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// prepare validates a note; a doctor always writes under their own name.
func prepare(ctx context.Context, req *dto.NoteRequest) error {
	req.Normalize()

	if actor := role.ActorFromContext(ctx); actor.Role == role.Doctor {
		req.Doctor = actor.Username
	}

	if err := validator.ValidateStruct(req); err != nil {
		return err //nolint:wrapcheck
	}

	if req.Doctor == "" {
		return failure.BadRequestFromString("doctor is required") //nolint:wrapcheck
	}

	return nil
}

func newestFirst(req gDto.QueryParams) gDto.QueryParams {
	if req.SortBy == "" {
		req.SortBy = model.FieldCreatedAt
		req.SortDir = gDto.SortDirDesc
	}

	return req
}

func (s *serviceImpl) WritePrescription(ctx context.Context, req dto.NoteRequest) (res dto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".WritePrescription")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = prepare(ctx, &req); err != nil {
		return res, err
	}

	prescription := req.ToPrescription(timezone.Now())

	if err = s.repo.InsertPrescription(ctx, prescription, model.FieldPrescriptionID, &prescription.ID); err != nil {
		log.Error().Err(err).Str("patient", req.Patient).Msg("failed to write prescription")

		return res, fmt.Errorf("failed to write prescription: %w", err)
	}

	res.FromPrescription(prescription)

	return res, nil
}

func (s *serviceImpl) ListPrescriptions(ctx context.Context, patient string, req gDto.QueryParams) (res dto.GetNotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPrescriptions")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := dto.PatientFilter(patient, model.PrescriptionTableName)

	total, err := s.repo.CountPrescriptions(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count prescriptions")

		return res, fmt.Errorf("failed to count prescriptions: %w", err)
	}

	models, err := s.repo.GetPrescriptions(ctx, newestFirst(req), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get prescriptions")

		return res, fmt.Errorf("failed to get prescriptions: %w", err)
	}

	res.FromPrescriptions(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) AddPatientRecord(ctx context.Context, req dto.NoteRequest) (res dto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPatientRecord")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = prepare(ctx, &req); err != nil {
		return res, err
	}

	record := req.ToRecord(timezone.Now())

	if err = s.repo.InsertRecord(ctx, record, model.FieldRecordID, &record.ID); err != nil {
		log.Error().Err(err).Str("patient", req.Patient).Msg("failed to add patient record")

		return res, fmt.Errorf("failed to add patient record: %w", err)
	}

	res.FromRecord(record)

	return res, nil
}

func (s *serviceImpl) ListPatientRecords(ctx context.Context, patient string, req gDto.QueryParams) (res dto.GetNotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListPatientRecords")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := dto.PatientFilter(patient, model.RecordTableName)

	total, err := s.repo.CountRecords(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count patient records")

		return res, fmt.Errorf("failed to count patient records: %w", err)
	}

	models, err := s.repo.GetRecords(ctx, newestFirst(req), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get patient records")

		return res, fmt.Errorf("failed to get patient records: %w", err)
	}

	res.FromRecords(models, total, req.Limit)

	return res, nil
}
