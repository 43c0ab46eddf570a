package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/config"
	kafkaMocks "hms/infras/kafka/mocks"
	"hms/infras/otel/mocks"
	appointmentMocks "hms/internal/domains/appointment/mocks"
	"hms/internal/domains/appointment/model"
	"hms/internal/domains/appointment/model/dto"
	"hms/internal/domains/appointment/service"
	roomMocks "hms/internal/domains/room/mocks"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/timezone"
)

type fixture struct {
	repo  *appointmentMocks.MockAppointment
	rooms *roomMocks.MockRoomService
	cfg   *config.Config
	svc   service.Appointment
}

func newFixture(t *testing.T, conflictCheck bool) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Appointment = "hms.appointments"
	cfg.Scheduling.ConflictCheck = conflictCheck

	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	kafkaClient.EXPECT().SendMessages(gomock.Any(), "hms.appointments", gomock.Any()).Return(nil).AnyTimes()

	f := fixture{
		repo:  appointmentMocks.NewMockAppointment(ctrl),
		rooms: roomMocks.NewMockRoomService(ctrl),
		cfg:   cfg,
	}

	f.svc = service.New(f.repo, f.rooms, cfg, kafkaClient, mocks.NewOtel(), nil)

	return f
}

func validRequest() dto.BookAppointmentRequest {
	return dto.BookAppointmentRequest{
		Doctor:     "dr.house",
		Patient:    "john",
		Date:       "2024-05-01",
		Time:       "10:30",
		Room:       101,
		Department: "Cardiology",
	}
}

func stored(id int64) model.Appointment {
	date, _ := timezone.ParseDate("2024-05-01")
	clock, _ := timezone.ParseClock("10:30")

	return model.Appointment{ID: id, Doctor: "dr.house", Patient: "john", Date: date, Time: clock, Room: 101, Department: "Cardiology"}
}

func TestAppointmentService_Book(t *testing.T) {
	tests := []struct {
		name          string
		req           func() dto.BookAppointmentRequest
		conflictCheck bool
		setupMock     func(f fixture)
		wantKind      failure.Kind
		wantErr       bool
	}{
		{
			name: "successful booking",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Exists(gomock.Any(), 101).Return(true, nil)
				f.repo.EXPECT().
					InsertReturning(gomock.Any(), gomock.Any(), model.FieldID, gomock.Any()).
					DoAndReturn(func(_ context.Context, m model.Appointment, _ string, dest any) error {
						assert.Equal(t, "2024-05-01", m.Date.String())
						assert.Equal(t, "10:30", m.Time.String())
						*(dest.(*int64)) = 7

						return nil
					})
			},
		},
		{
			name: "blank doctor",
			req: func() dto.BookAppointmentRequest {
				req := validRequest()
				req.Doctor = "   "

				return req
			},
			setupMock: func(_ fixture) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "blank department",
			req: func() dto.BookAppointmentRequest {
				req := validRequest()
				req.Department = " "

				return req
			},
			setupMock: func(_ fixture) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "unparseable date",
			req: func() dto.BookAppointmentRequest {
				req := validRequest()
				req.Date = "01/05/2024"

				return req
			},
			setupMock: func(_ fixture) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "unparseable time",
			req: func() dto.BookAppointmentRequest {
				req := validRequest()
				req.Time = "half past ten"

				return req
			},
			setupMock: func(_ fixture) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "unknown room",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Exists(gomock.Any(), 101).Return(false, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "same slot is allowed without conflict check",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Exists(gomock.Any(), 101).Return(true, nil)
				f.repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:          "slot taken with conflict check",
			req:           validRequest,
			conflictCheck: true,
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Exists(gomock.Any(), 101).Return(true, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name: "insert error",
			req:  validRequest,
			setupMock: func(f fixture) {
				f.rooms.EXPECT().Exists(gomock.Any(), 101).Return(true, nil)
				f.repo.EXPECT().InsertReturning(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.conflictCheck)
			tt.setupMock(f)

			res, err := f.svc.Book(context.Background(), tt.req())

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != failure.KindUnknown {
					assert.True(t, failure.IsKind(err, tt.wantKind), err)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 101, res.Room)
			}
		})
	}
}

func TestAppointmentService_BookTx(t *testing.T) {
	f := newFixture(t, true)

	f.rooms.EXPECT().Exists(gomock.Any(), 101).Return(true, nil)
	f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().
		InsertReturningTx(gomock.Any(), gomock.Nil(), gomock.Any(), model.FieldID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, _ model.Appointment, _ string, dest any) error {
			*(dest.(*int64)) = 11

			return nil
		})

	res, err := f.svc.BookTx(context.Background(), nil, validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(11), res.ID)
	assert.Equal(t, "john", res.Patient)
}

func TestAppointmentService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful cancel",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(7), nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "unknown appointment",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Appointment{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "deleted concurrently",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(7), nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "delete error",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(7), nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			tt.setupMock(f)

			err := f.svc.Cancel(context.Background(), 7)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != failure.KindUnknown {
					assert.True(t, failure.IsKind(err, tt.wantKind))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentService_CancelTx(t *testing.T) {
	f := newFixture(t, false)

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(stored(7), nil)
	f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(int64(1), nil)

	res, err := f.svc.CancelTx(context.Background(), nil, 7)

	require.NoError(t, err)
	assert.Equal(t, 101, res.Room)

	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Nil(), gomock.Any()).Return(model.Appointment{}, nil)

	_, err = f.svc.CancelTx(context.Background(), nil, 8)
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestAppointmentService_Get(t *testing.T) {
	f := newFixture(t, false)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored(7), nil)

	res, err := f.svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, dto.AppointmentResponse{
		ID: 7, Doctor: "dr.house", Patient: "john", Date: "2024-05-01", Time: "10:30", Room: 101, Department: "Cardiology",
	}, res)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Appointment{}, nil)

	_, err = f.svc.Get(context.Background(), 8)
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestAppointmentService_ListForDoctor(t *testing.T) {
	f := newFixture(t, false)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Appointment, error) {
			assert.Equal(t, model.FieldID, params.SortBy)
			assert.Equal(t, "ASC", params.SortDir)

			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "appointments.doctor")
			assert.Equal(t, "dr.house", args["doctor"])

			return []model.Appointment{stored(1), stored(2)}, nil
		})

	res, err := f.svc.ListForDoctor(context.Background(), "dr.house", gDto.QueryParams{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Appointments, 2)
}

func TestAppointmentService_ListForPatientCountError(t *testing.T) {
	f := newFixture(t, false)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("count error"))

	_, err := f.svc.ListForPatient(context.Background(), "john", gDto.QueryParams{Page: 1, Limit: 10})
	assert.Error(t, err)
}
