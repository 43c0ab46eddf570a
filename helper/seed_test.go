package helper_test

import (
	"context"
	"errors"
	"testing"

	"hms/helper"
	departmentMocks "hms/internal/domains/department/mocks"
	departmentModel "hms/internal/domains/department/model"
	roomMocks "hms/internal/domains/room/mocks"
	"hms/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSeedWith(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(rooms *roomMocks.MockRoom, departments *departmentMocks.MockDepartment)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(rooms *roomMocks.MockRoom, departments *departmentMocks.MockDepartment) {
				rooms.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(len(helper.DefaultRooms))
				departments.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(len(departmentModel.Defaults))
			},
		},
		{
			name: "existing rows are skipped",
			setupMock: func(rooms *roomMocks.MockRoom, departments *departmentMocks.MockDepartment) {
				rooms.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(failure.DuplicateKey("room already exists")).Times(len(helper.DefaultRooms))
				departments.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(failure.DuplicateKey("department already exists")).Times(len(departmentModel.Defaults))
			},
		},
		{
			name: "room insert fails",
			setupMock: func(rooms *roomMocks.MockRoom, _ *departmentMocks.MockDepartment) {
				rooms.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rooms := roomMocks.NewMockRoom(ctrl)
			departments := departmentMocks.NewMockDepartment(ctrl)
			tt.setupMock(rooms, departments)

			err := helper.SeedWith(context.Background(), rooms, departments)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
