package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/metrics"
	"hms/infras/otel/mocks"
	"hms/infras/postgres"
	billingMocks "hms/internal/domains/billing/mocks"
	billingDto "hms/internal/domains/billing/model/dto"
	pharmacyMocks "hms/internal/domains/pharmacy/mocks"
	"hms/internal/domains/pharmacy/model"
	"hms/internal/domains/pharmacy/model/dto"
	"hms/internal/domains/pharmacy/service"
	cacheMocks "hms/shared/cache/mocks"
	gDto "hms/shared/dto"
	"hms/shared/failure"
)

type fixture struct {
	repo    *pharmacyMocks.MockPharmacy
	billing *billingMocks.MockBillingService
	cache   *cacheMocks.MockRedisCache
	db      sqlmock.Sqlmock
	metrics *metrics.Collector
	svc     service.Pharmacy
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "postgres")

	f := fixture{
		repo:    pharmacyMocks.NewMockPharmacy(ctrl),
		billing: billingMocks.NewMockBillingService(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		db:      mock,
		metrics: metrics.NewCollector("test"),
	}

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, &postgres.Connection{Read: db, Write: db}, f.billing, &config.Config{}, f.cache, mocks.NewOtel(), f.metrics)

	return f
}

func TestPharmacyService_AddMedication(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.AddMedicationRequest
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  dto.AddMedicationRequest{Name: " Paracetamol ", Stock: 10, Price: decimal.RequireFromString("12.5"), ExpiryDate: "2027-01-31"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.Medication) error {
					assert.Equal(t, "Paracetamol", m.Name)
					assert.Equal(t, 10, m.Stock)
					require.NotNil(t, m.ExpiryDate)
					assert.Equal(t, "2027-01-31", m.ExpiryDate.String())

					return nil
				})
			},
		},
		{
			name:      "invalid expiry date",
			req:       dto.AddMedicationRequest{Name: "Paracetamol", Stock: 10, Price: decimal.NewFromInt(5), ExpiryDate: "31-01-2027"},
			setupMock: func(_ fixture) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
		{
			name: "duplicate name",
			req:  dto.AddMedicationRequest{Name: "Paracetamol", Stock: 10, Price: decimal.NewFromInt(5)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindDuplicateKey,
		},
		{
			name: "insert error",
			req:  dto.AddMedicationRequest{Name: "Paracetamol", Stock: 10, Price: decimal.NewFromInt(5)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.AddMedication(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != failure.KindUnknown {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPharmacyService_UpdateInventory(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Restock(gomock.Any(), "Ibuprofen", 5).Return(model.Medication{ID: 4, Name: "Ibuprofen", Stock: 5, Price: decimal.Zero}, nil)

	res, err := f.svc.UpdateInventory(context.Background(), "Ibuprofen", dto.UpdateInventoryRequest{Stock: 5})

	assert.NoError(t, err)
	assert.Equal(t, 5, res.Stock)
	assert.True(t, res.Price.IsZero())

	_, err = f.svc.UpdateInventory(context.Background(), "Ibuprofen", dto.UpdateInventoryRequest{Stock: 0})
	assert.True(t, failure.IsKind(err, failure.KindBadRequest))
}

func TestPharmacyService_ListInventory(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Medication, error) {
			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "LIKE")
			assert.Equal(t, "%para%", args[model.FieldName])

			return []model.Medication{{ID: 1, Name: "Paracetamol", Stock: 3}}, nil
		})

	res, err := f.svc.ListInventory(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, Search: "para"})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Medications, 1)
}

func TestPharmacyService_Expired(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Medication{{ID: 2, Name: "Old Syrup"}}, nil)

	res, err := f.svc.Expired(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "Old Syrup", res[0].Name)
}

func TestPharmacyService_Dispense(t *testing.T) {
	stocked := model.Medication{ID: 1, Name: "Paracetamol", Stock: 10, Price: decimal.RequireFromString("12.50")}
	req := dto.DispenseRequest{Patient: "john", Medication: "Paracetamol", Quantity: 3}

	tests := []struct {
		name      string
		req       dto.DispenseRequest
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "decrements stock and charges the patient",
			req:  req,
			setupMock: func(f fixture) {
				f.db.ExpectBegin()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(stocked, nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), map[string]any{model.FieldStock: 7}, gomock.Any()).Return(int64(1), nil)
				f.billing.EXPECT().
					ChargeMedicationTx(gomock.Any(), gomock.Any(), billingDto.ChargeMedicationRequest{
						Patient: "john", Medication: "Paracetamol", Quantity: 3, Price: stocked.Price,
					}).
					Return(billingDto.LedgerEntryResponse{Patient: "john", Amount: decimal.RequireFromString("-37.50"), Balance: decimal.RequireFromString("-37.50")}, nil)
				f.db.ExpectCommit()
				f.billing.EXPECT().Notify(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "unknown medication",
			req:  req,
			setupMock: func(f fixture) {
				f.db.ExpectBegin()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Medication{}, nil)
				f.db.ExpectRollback()
			},
			wantErr:  true,
			wantKind: failure.KindNotFound,
		},
		{
			name: "insufficient stock",
			req:  dto.DispenseRequest{Patient: "john", Medication: "Paracetamol", Quantity: 11},
			setupMock: func(f fixture) {
				f.db.ExpectBegin()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(stocked, nil)
				f.db.ExpectRollback()
			},
			wantErr:  true,
			wantKind: failure.KindBadRequest,
		},
		{
			name: "unpriced medication rolls back the decrement",
			req:  req,
			setupMock: func(f fixture) {
				f.db.ExpectBegin()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Medication{ID: 1, Name: "Paracetamol", Stock: 10}, nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.billing.EXPECT().ChargeMedicationTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(billingDto.LedgerEntryResponse{}, failure.InvalidQuantityOrPrice("price must be positive"))
				f.db.ExpectRollback()
			},
			wantErr:  true,
			wantKind: failure.KindInvalidQuantityOrPrice,
		},
		{
			name:      "non-positive quantity",
			req:       dto.DispenseRequest{Patient: "john", Medication: "Paracetamol", Quantity: 0},
			setupMock: func(_ fixture) {},
			wantErr:   true,
			wantKind:  failure.KindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Dispense(context.Background(), tt.req)

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
				assert.InDelta(t, 0, testutil.ToFloat64(f.metrics.DispensedUnitsTotal), 0)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 7, res.Remaining)
				assert.Equal(t, "37.5", res.Charged.String())
				assert.InDelta(t, 3, testutil.ToFloat64(f.metrics.DispensedUnitsTotal), 0)
			}

			assert.NoError(t, f.db.ExpectationsWereMet())
		})
	}
}
