package service_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/config"
	kafkaMocks "hms/infras/kafka/mocks"
	"hms/infras/otel/mocks"
	"hms/internal/domains/appointment/model"
	"hms/internal/domains/appointment/model/dto"
	"hms/internal/domains/appointment/service"
	roomMocks "hms/internal/domains/room/mocks"
	gDto "hms/shared/dto"
	"hms/shared/failure"
)

// memoryAppointments evaluates AND groups of eq filters against stored rows.
type memoryAppointments struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Appointment
}

func newMemoryAppointments() *memoryAppointments {
	return &memoryAppointments{rows: map[int64]model.Appointment{}}
}

func column(m model.Appointment, field string) string {
	switch field {
	case model.FieldID:
		return fmt.Sprint(m.ID)
	case model.FieldDoctor:
		return m.Doctor
	case model.FieldPatient:
		return m.Patient
	case model.FieldDate:
		return m.Date.String()
	case model.FieldTime:
		return m.Time.String()
	case model.FieldRoom:
		return fmt.Sprint(m.Room)
	case model.FieldDepartment:
		return m.Department
	default:
		return ""
	}
}

func matches(m model.Appointment, filter gDto.FilterGroup) bool {
	for _, item := range filter.Filters {
		f, ok := item.(gDto.Filter)
		if !ok || f.Operator != gDto.FilterOperatorEq {
			continue
		}

		if column(m, f.Field) != fmt.Sprint(f.Value) {
			return false
		}
	}

	return true
}

func (r *memoryAppointments) selectRows(filter gDto.FilterGroup) []model.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []model.Appointment

	for _, row := range r.rows {
		if matches(row, filter) {
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	return rows
}

func (r *memoryAppointments) InsertReturning(_ context.Context, m model.Appointment, _ string, dest any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m.ID = r.nextID
	r.rows[m.ID] = m
	*(dest.(*int64)) = m.ID

	return nil
}

func (r *memoryAppointments) InsertReturningTx(ctx context.Context, _ *sqlx.Tx, m model.Appointment, returning string, dest any) error {
	return r.InsertReturning(ctx, m, returning, dest)
}

func (r *memoryAppointments) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Appointment, error) {
	rows := r.selectRows(filter)
	if len(rows) == 0 {
		return model.Appointment{}, nil
	}

	return rows[0], nil
}

func (r *memoryAppointments) GetForUpdateTx(ctx context.Context, _ *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Appointment, error) {
	return r.Get(ctx, filter, columns...)
}

func (r *memoryAppointments) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Appointment, error) {
	return r.selectRows(filter), nil
}

func (r *memoryAppointments) Count(_ context.Context, filter gDto.FilterGroup) (int, error) {
	return len(r.selectRows(filter)), nil
}

func (r *memoryAppointments) Exist(_ context.Context, filter gDto.FilterGroup) (bool, error) {
	return len(r.selectRows(filter)) > 0, nil
}

func (r *memoryAppointments) ExistTx(ctx context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (bool, error) {
	return r.Exist(ctx, filter)
}

func (r *memoryAppointments) Delete(_ context.Context, filter gDto.FilterGroup) (int64, error) {
	rows := r.selectRows(filter)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range rows {
		delete(r.rows, row.ID)
	}

	return int64(len(rows)), nil
}

func (r *memoryAppointments) DeleteTx(ctx context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (int64, error) {
	return r.Delete(ctx, filter)
}

func newScheduleBook(t *testing.T) service.Appointment {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Appointment = "hms.appointments"
	cfg.Scheduling.ConflictCheck = true

	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	kafkaClient.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	rooms := roomMocks.NewMockRoomService(ctrl)
	rooms.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

	return service.New(newMemoryAppointments(), rooms, cfg, kafkaClient, mocks.NewOtel(), nil)
}

func bookingFor(patient, clock string) dto.BookAppointmentRequest {
	req := validRequest()
	req.Patient = patient
	req.Time = clock

	return req
}

func TestAppointmentSchedule_BookThenCancel(t *testing.T) {
	svc := newScheduleBook(t)
	ctx := context.Background()

	booked, err := svc.Book(ctx, bookingFor("pat1", "10:30"))
	require.NoError(t, err)
	assert.NotZero(t, booked.ID)

	listed, err := svc.ListForPatient(ctx, "pat1", gDto.QueryParams{})
	require.NoError(t, err)
	require.Len(t, listed.Appointments, 1)
	assert.Equal(t, booked.ID, listed.Appointments[0].ID)

	require.NoError(t, svc.Cancel(ctx, booked.ID))

	listed, err = svc.ListForPatient(ctx, "pat1", gDto.QueryParams{})
	require.NoError(t, err)
	assert.Empty(t, listed.Appointments)
	assert.Equal(t, 0, listed.TotalData)

	err = svc.Cancel(ctx, booked.ID)
	assert.True(t, failure.IsKind(err, failure.KindNotFound))

	_, err = svc.Get(ctx, booked.ID)
	assert.True(t, failure.IsKind(err, failure.KindNotFound))
}

func TestAppointmentSchedule_CancelFreesSlot(t *testing.T) {
	svc := newScheduleBook(t)
	ctx := context.Background()

	first, err := svc.Book(ctx, bookingFor("pat1", "10:30"))
	require.NoError(t, err)

	_, err = svc.Book(ctx, bookingFor("pat2", "10:30"))
	assert.True(t, failure.IsKind(err, failure.KindConflict))

	other, err := svc.Book(ctx, bookingFor("pat2", "11:00"))
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, first.ID))

	again, err := svc.Book(ctx, bookingFor("pat2", "10:30"))
	require.NoError(t, err)
	assert.Greater(t, again.ID, other.ID)

	listed, err := svc.ListForPatient(ctx, "pat2", gDto.QueryParams{})
	require.NoError(t, err)
	require.Len(t, listed.Appointments, 2)
	assert.Equal(t, "11:00", listed.Appointments[0].Time)
	assert.Equal(t, "10:30", listed.Appointments[1].Time)

	mine, err := svc.ListForPatient(ctx, "pat1", gDto.QueryParams{})
	require.NoError(t, err)
	assert.Empty(t, mine.Appointments)
}
