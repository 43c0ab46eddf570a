package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/infras/otel/mocks"
	clinicalMocks "hms/internal/domains/clinical/mocks"
	"hms/internal/domains/clinical/model"
	"hms/internal/domains/clinical/model/dto"
	"hms/internal/domains/clinical/service"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/role"
)

func asDoctor(username string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, username)

	return role.WithContext(ctx, role.Doctor)
}

func TestClinicalService_WritePrescription(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.NoteRequest
		setupMock func(repo *clinicalMocks.MockClinical)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "doctor writes under own name",
			ctx:  asDoctor("dr.house"),
			req:  dto.NoteRequest{Doctor: "dr.wilson", Patient: "john", Text: " Amoxicillin 500mg "},
			setupMock: func(repo *clinicalMocks.MockClinical) {
				repo.EXPECT().InsertPrescription(gomock.Any(), gomock.Any(), model.FieldPrescriptionID, gomock.Any()).
					DoAndReturn(func(_ context.Context, p model.Prescription, _ string, dest any) error {
						assert.Equal(t, "dr.house", p.Doctor)
						assert.Equal(t, "Amoxicillin 500mg", p.Text)

						*dest.(*int64) = 12

						return nil
					})
			},
		},
		{
			name:      "doctor required outside a doctor session",
			ctx:       context.Background(),
			req:       dto.NoteRequest{Patient: "john", Text: "rest"},
			setupMock: func(_ *clinicalMocks.MockClinical) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
		{
			name:      "empty text",
			ctx:       asDoctor("dr.house"),
			req:       dto.NoteRequest{Patient: "john", Text: "   "},
			setupMock: func(_ *clinicalMocks.MockClinical) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "insert error",
			ctx:  asDoctor("dr.house"),
			req:  dto.NoteRequest{Patient: "john", Text: "rest"},
			setupMock: func(repo *clinicalMocks.MockClinical) {
				repo.EXPECT().InsertPrescription(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := clinicalMocks.NewMockClinical(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, mocks.NewOtel())

			res, err := svc.WritePrescription(tt.ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != failure.KindUnknown {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(12), res.ID)
				assert.Equal(t, "dr.house", res.Doctor)
			}
		})
	}
}

func TestClinicalService_AddPatientRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := clinicalMocks.NewMockClinical(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().InsertRecord(gomock.Any(), gomock.Any(), model.FieldRecordID, gomock.Any()).Return(nil)

	res, err := svc.AddPatientRecord(context.Background(), dto.NoteRequest{Doctor: "dr.house", Patient: "john", Text: "BP 120/80"})

	assert.NoError(t, err)
	assert.Equal(t, "BP 120/80", res.Text)
	assert.False(t, res.CreatedAt.IsZero())
}

func TestClinicalService_ListPrescriptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := clinicalMocks.NewMockClinical(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().CountPrescriptions(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().GetPrescriptions(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.Prescription, error) {
			assert.Equal(t, model.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Prescription{{ID: 3, Patient: "john"}, {ID: 2, Patient: "john"}}, nil
		})

	res, err := svc.ListPrescriptions(context.Background(), "john", gDto.QueryParams{Page: 1, Limit: 2})

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Notes, 2)
}

func TestClinicalService_ListPatientRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := clinicalMocks.NewMockClinical(ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().CountRecords(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))

	_, err := svc.ListPatientRecords(context.Background(), "john", gDto.QueryParams{})

	assert.Error(t, err)
}
