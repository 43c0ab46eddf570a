package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Scheduling=MockSchedulingService

import (
	"context"
	"strings"

	"hms/infras/otel"
	"hms/infras/postgres"
	appointmentDto "hms/internal/domains/appointment/model/dto"
	appointmentService "hms/internal/domains/appointment/service"
	billingDto "hms/internal/domains/billing/model/dto"
	billingService "hms/internal/domains/billing/service"
	roomService "hms/internal/domains/room/service"
	"hms/internal/domains/scheduling/model/dto"
	"hms/shared/constant"
	"hms/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Scheduling runs the multi-step flows that must commit or roll back as one unit.
type Scheduling interface {
	RequestAppointment(ctx context.Context, req dto.RequestAppointmentRequest) (dto.RequestAppointmentResponse, error)
	CancelAndRelease(ctx context.Context, id int64) (dto.CancelAndReleaseResponse, error)
}

type serviceImpl struct {
	transactor   postgres.Transactor
	rooms        roomService.Room
	appointments appointmentService.Appointment
	billing      billingService.Billing
	otel         otel.Otel
}

func New(transactor postgres.Transactor, rooms roomService.Room, appointments appointmentService.Appointment,
	billing billingService.Billing, otel otel.Otel,
) Scheduling {
	return &serviceImpl{
		transactor:   transactor,
		rooms:        rooms,
		appointments: appointments,
		billing:      billing,
		otel:         otel,
	}
}

func (s *serviceImpl) RequestAppointment(ctx context.Context, req dto.RequestAppointmentRequest) (res dto.RequestAppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestAppointment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.RoomType = strings.TrimSpace(req.RoomType)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	var (
		appointment appointmentDto.AppointmentResponse
		entry       billingDto.LedgerEntryResponse
	)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		room, txErr := s.rooms.AllocateTx(ctx, tx, req.RoomType)
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		appointment, txErr = s.appointments.BookTx(ctx, tx, req.ToBooking(room))
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		entry, txErr = s.billing.ChargeAppointmentFeeTx(ctx, tx, req.Patient)

		return txErr //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("patient", req.Patient).Str("roomType", req.RoomType).Msg("failed to request appointment")

		return res, err //nolint:wrapcheck
	}

	go s.rooms.InvalidateCache(context.WithoutCancel(ctx), appointment.Room)
	s.appointments.Notify(ctx, appointmentDto.EventBooked, appointment)
	s.billing.Notify(ctx, entry)

	log.Info().Int64("appointmentID", appointment.ID).Int("room", appointment.Room).Str("patient", appointment.Patient).Msg("appointment scheduled")

	return dto.RequestAppointmentResponse{
		AppointmentID: appointment.ID,
		Room:          appointment.Room,
		Balance:       entry.Balance,
	}, nil
}

func (s *serviceImpl) CancelAndRelease(ctx context.Context, id int64) (res dto.CancelAndReleaseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelAndRelease")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var appointment appointmentDto.AppointmentResponse

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var txErr error

		appointment, txErr = s.appointments.CancelTx(ctx, tx, id)
		if txErr != nil {
			return txErr //nolint:wrapcheck
		}

		return s.rooms.ReleaseTx(ctx, tx, appointment.Room) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Int64("appointmentID", id).Msg("failed to cancel and release")

		return res, err //nolint:wrapcheck
	}

	go s.rooms.InvalidateCache(context.WithoutCancel(ctx), appointment.Room)
	s.appointments.Notify(ctx, appointmentDto.EventCancelled, appointment)

	return dto.CancelAndReleaseResponse{AppointmentID: appointment.ID, Room: appointment.Room}, nil
}
