package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService

import (
	"context"
	"fmt"

	"hms/config"
	"hms/infras/kafka"
	"hms/infras/metrics"
	"hms/infras/otel"
	"hms/internal/domains/appointment/model"
	"hms/internal/domains/appointment/model/dto"
	"hms/internal/domains/appointment/repository"
	roomService "hms/internal/domains/room/service"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"
	"hms/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Appointment interface {
	Book(ctx context.Context, req dto.BookAppointmentRequest) (dto.AppointmentResponse, error)
	BookTx(ctx context.Context, tx *sqlx.Tx, req dto.BookAppointmentRequest) (dto.AppointmentResponse, error)
	Cancel(ctx context.Context, id int64) error
	CancelTx(ctx context.Context, tx *sqlx.Tx, id int64) (dto.AppointmentResponse, error)
	Get(ctx context.Context, id int64) (dto.AppointmentResponse, error)
	List(ctx context.Context, req gDto.QueryParams, filter dto.ListAppointmentsFilter) (dto.GetAppointmentsResponse, error)
	ListForDoctor(ctx context.Context, doctor string, req gDto.QueryParams) (dto.GetAppointmentsResponse, error)
	ListForPatient(ctx context.Context, patient string, req gDto.QueryParams) (dto.GetAppointmentsResponse, error)
	Notify(ctx context.Context, event string, appointment dto.AppointmentResponse)
}

type serviceImpl struct {
	repo    repository.Appointment
	rooms   roomService.Room
	cfg     *config.Config
	kafka   kafka.Client
	otel    otel.Otel
	metrics *metrics.Collector
}

func New(repo repository.Appointment, rooms roomService.Room, cfg *config.Config, kafka kafka.Client, otel otel.Otel, metrics *metrics.Collector) Appointment {
	return &serviceImpl{
		repo:    repo,
		rooms:   rooms,
		cfg:     cfg,
		kafka:   kafka,
		otel:    otel,
		metrics: metrics,
	}
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointment, err := s.prepare(ctx, &req)
	if err != nil {
		return res, err
	}

	if s.cfg.Scheduling.ConflictCheck {
		taken, err := s.repo.Exist(ctx, dto.SlotFilter(appointment))
		if err = s.checkSlot(taken, err); err != nil {
			return res, err
		}
	}

	if err = s.repo.InsertReturning(ctx, appointment, model.FieldID, &appointment.ID); err != nil {
		log.Error().Err(err).Msg("failed to book appointment")

		return res, fmt.Errorf("failed to book appointment: %w", err)
	}

	res.FromModel(appointment)
	s.metrics.Appointment(metrics.EventBooked)
	s.Notify(ctx, dto.EventBooked, res)

	return res, nil
}

// BookTx leaves event publication to the caller, after commit.
func (s *serviceImpl) BookTx(ctx context.Context, tx *sqlx.Tx, req dto.BookAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointment, err := s.prepare(ctx, &req)
	if err != nil {
		return res, err
	}

	if s.cfg.Scheduling.ConflictCheck {
		taken, err := s.repo.ExistTx(ctx, tx, dto.SlotFilter(appointment))
		if err = s.checkSlot(taken, err); err != nil {
			return res, err
		}
	}

	if err = s.repo.InsertReturningTx(ctx, tx, appointment, model.FieldID, &appointment.ID); err != nil {
		log.Error().Err(err).Msg("failed to book appointment")

		return res, fmt.Errorf("failed to book appointment: %w", err)
	}

	res.FromModel(appointment)
	s.metrics.Appointment(metrics.EventBooked)

	return res, nil
}

// prepare validates the request and checks that the room is known.
func (s *serviceImpl) prepare(ctx context.Context, req *dto.BookAppointmentRequest) (model.Appointment, error) {
	req.Normalize()

	if err := validator.ValidateStruct(req); err != nil {
		return model.Appointment{}, err //nolint:wrapcheck
	}

	appointment, err := req.ToModel()
	if err != nil {
		return model.Appointment{}, err //nolint:wrapcheck
	}

	exist, err := s.rooms.Exists(ctx, req.Room)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return model.Appointment{}, fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		return model.Appointment{}, failure.NotFound(fmt.Sprintf("room %d not found", req.Room)) // nolint:wrapcheck
	}

	return appointment, nil
}

func (s *serviceImpl) checkSlot(taken bool, err error) error {
	if err != nil {
		log.Error().Err(err).Msg("failed to check appointment slot")

		return fmt.Errorf("failed to check appointment slot: %w", err)
	}

	if taken {
		return failure.Conflict("room is already booked at this date and time") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	appointment, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == 0 {
		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	affected, err := s.repo.Delete(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel appointment")

		return fmt.Errorf("failed to cancel appointment: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	var res dto.AppointmentResponse

	res.FromModel(appointment)
	s.metrics.Appointment(metrics.EventCancelled)
	s.Notify(ctx, dto.EventCancelled, res)

	return nil
}

// CancelTx locks and deletes the appointment, returning what was removed.
func (s *serviceImpl) CancelTx(ctx context.Context, tx *sqlx.Tx, id int64) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	appointment, err := s.repo.GetForUpdateTx(ctx, tx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == 0 {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	if _, err = s.repo.DeleteTx(ctx, tx, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel appointment")

		return res, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	res.FromModel(appointment)
	s.metrics.Appointment(metrics.EventCancelled)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == 0 {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, req gDto.QueryParams, filter dto.ListAppointmentsFilter) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// listings are stable by id unless the caller sorts explicitly
	if req.SortBy == "" {
		req.SortBy = model.FieldID
		req.SortDir = "ASC"
	}

	group := filter.ToFilterGroup()

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) ListForDoctor(ctx context.Context, doctor string, req gDto.QueryParams) (dto.GetAppointmentsResponse, error) {
	return s.List(ctx, req, dto.ListAppointmentsFilter{Doctor: doctor})
}

func (s *serviceImpl) ListForPatient(ctx context.Context, patient string, req gDto.QueryParams) (dto.GetAppointmentsResponse, error) {
	return s.List(ctx, req, dto.ListAppointmentsFilter{Patient: patient})
}

// Notify publishes the event in the background; failures are only logged.
func (s *serviceImpl) Notify(ctx context.Context, event string, appointment dto.AppointmentResponse) {
	topic := s.cfg.Kafka.Topics.Appointment

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, topic, kafka.Message{
			Key: appointment.Patient,
			Value: dto.AppointmentEvent{
				Event:       event,
				Appointment: appointment,
				OccurredAt:  timezone.Now(),
			},
		})

		s.metrics.EventPublished(topic, err)

		if err != nil {
			log.Error().Err(err).Str("event", event).Int64("appointmentID", appointment.ID).Msg("failed to publish appointment event")
		}
	}()
}
