package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/jwt"
	jwtMocks "hms/infras/jwt/mocks"
	"hms/infras/otel/mocks"
	"hms/internal/domains/auth/model/dto"
	"hms/internal/domains/auth/service"
	userMocks "hms/internal/domains/user/mocks"
	userModel "hms/internal/domains/user/model"
	userDto "hms/internal/domains/user/model/dto"
	"hms/shared/constant"
	"hms/shared/failure"
	"hms/shared/role"
)

// "password" hashed
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type fixture struct {
	userRepo *userMocks.MockUser
	users    *userMocks.MockUserService
	jwt      *jwtMocks.MockJWT
	svc      service.Auth
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		userRepo: userMocks.NewMockUser(ctrl),
		users:    userMocks.NewMockUserService(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.userRepo, f.users, &config.Config{}, mocks.NewOtel(), f.jwt)

	return f
}

func validUser() userModel.User {
	return userModel.User{
		Username:    "rina",
		Password:    passwordHash,
		Role:        "receptionist",
		PhoneNumber: "01234567890",
		IsActive:    true,
	}
}

func TestAuthService_Signup(t *testing.T) {
	f := newFixture(t)
	req := userDto.CreateUserRequest{Username: "ali", Password: "secret-password", Role: "patient", PhoneNumber: "01234567890"}

	f.users.EXPECT().Create(gomock.Any(), req).Return(nil)
	assert.NoError(t, f.svc.Signup(context.Background(), req))

	f.users.EXPECT().Create(gomock.Any(), req).Return(failure.DuplicateKey("username already exists"))
	assert.True(t, failure.IsKind(f.svc.Signup(context.Background(), req), failure.KindDuplicateKey))
}

func TestAuthService_Login(t *testing.T) {
	tokenPair := &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: "rina", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), "rina", "receptionist").Return(tokenPair, nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "user not found",
			req:  dto.LoginRequest{Username: "ghost", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Username: "rina", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "rina", Password: "wrongpassword"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindUnauthorized,
		},
		{
			name: "inactive user",
			req:  dto.LoginRequest{Username: "rina", Password: "password"},
			setupMock: func(f fixture) {
				inactive := validUser()
				inactive.IsActive = false

				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr:  true,
			wantKind: failure.KindForbidden,
		},
		{
			name: "unknown role",
			req:  dto.LoginRequest{Username: "rina", Password: "password"},
			setupMock: func(f fixture) {
				unknown := validUser()
				unknown.Role = "janitor"

				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(unknown, nil)
			},
			wantErr:  true,
			wantKind: failure.KindForbidden,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Username: "rina", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), "rina", "receptionist").Return(nil, errors.New("token generation failed"))
			},
			wantErr: true,
		},
		{
			name: "update last login error",
			req:  dto.LoginRequest{Username: "rina", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair, nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantKind != failure.KindUnknown {
					assert.Equal(t, tt.wantKind, failure.GetKind(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", result.AccessToken)
				assert.Equal(t, role.Receptionist, result.Role)
				assert.Contains(t, result.Capabilities, role.CanAllocateRoom)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().
					RefreshTokens(gomock.Any(), "valid-refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access-token", RefreshToken: "new-refresh-token"}, nil)
			},
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "invalid-refresh-token"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().
					RefreshTokens(gomock.Any(), "invalid-refresh-token").
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.True(t, failure.IsKind(err, failure.KindUnauthorized))
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		username  string
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name:     "successful password change",
			req:      dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			username: "rina",
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name:      "anonymous caller",
			req:       dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			setupMock: func(_ fixture) {},
			wantErr:   true,
		},
		{
			name:     "user not found",
			req:      dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			username: "ghost",
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr: true,
		},
		{
			name:     "wrong current password",
			req:      dto.ChangePasswordRequest{CurrentPassword: "wrongpassword", NewPassword: "newpassword123"},
			username: "rina",
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
			},
			wantErr: true,
		},
		{
			name:     "update password error",
			req:      dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "newpassword123"},
			username: "rina",
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.Background()
			if tt.username != "" {
				ctx = context.WithValue(ctx, constant.ContextKeyUsername, tt.username)
			}

			err := f.svc.ChangePassword(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
