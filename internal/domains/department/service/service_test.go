package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/otel/mocks"
	departmentMocks "hms/internal/domains/department/mocks"
	"hms/internal/domains/department/model"
	"hms/internal/domains/department/model/dto"
	"hms/internal/domains/department/service"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/failure"
)

func setup(t *testing.T) (*departmentMocks.MockDepartment, *cacheMocks.MockRedisCache, service.Department) {
	ctrl := gomock.NewController(t)

	mockRepo := departmentMocks.NewMockDepartment(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return mockRepo, mockCache, service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())
}

func TestDepartmentService_Add(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *departmentMocks.MockDepartment)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func(repo *departmentMocks.MockDepartment) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), model.Department{Name: "Cardiology", Description: "Heart"}).Return(nil)
			},
		},
		{
			name: "duplicate name",
			setupMock: func(repo *departmentMocks.MockDepartment) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantKind: failure.KindDuplicateKey,
		},
		{
			name: "insert error",
			setupMock: func(repo *departmentMocks.MockDepartment) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, svc := setup(t)
			tt.setupMock(repo)

			err := svc.Add(context.Background(), dto.AddDepartmentRequest{Name: " Cardiology ", Description: "Heart"})

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

func TestDepartmentService_Remove(t *testing.T) {
	repo, _, svc := setup(t)

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	assert.NoError(t, svc.Remove(context.Background(), "Cardiology"))

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	assert.True(t, failure.IsKind(svc.Remove(context.Background(), "Unknown"), failure.KindNotFound))
}

func TestDepartmentService_List(t *testing.T) {
	repo, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), "department:gets", gomock.Any()).Return(errors.New("cache miss"))
	repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Defaults, nil)

	res, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Departments, len(model.Defaults))
	assert.Equal(t, "Cardiology", res.Departments[0].Name)
}
