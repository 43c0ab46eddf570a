package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hms/config"
	"hms/infras/jwt"
	jwtMocks "hms/infras/jwt/mocks"
	otelMocks "hms/infras/otel/mocks"
	"hms/permissions"
	"hms/shared/role"
	"hms/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, jwtService jwt.JWT) http.Handler {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/rooms/{number}", Method: http.MethodGet, Permissions: []string{"manage_rooms", "allocate_room"}},
			{Path: "/v1/auth/login", Method: http.MethodPost, Skip: true},
		},
	}

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), data, cfg)

	r := chi.NewRouter()
	r.Group(func(group chi.Router) {
		group.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)

		group.Get("/v1/rooms/{number}", func(writer http.ResponseWriter, request *http.Request) {
			actor := role.ActorFromContext(request.Context())
			writer.Header().Set("X-Actor", actor.Username)
			writer.WriteHeader(http.StatusOK)
		})
		group.Post("/v1/auth/login", func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
		})
	})

	return r
}

func TestAuthRole(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		headers    map[string]string
		setupMock  func(mockJWT *jwtMocks.MockJWT)
		wantStatus int
		wantActor  string
	}{
		{
			name:       "missing authorization header",
			method:     http.MethodGet,
			path:       "/v1/rooms/101",
			setupMock:  func(_ *jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed authorization header",
			method:     http.MethodGet,
			path:       "/v1/rooms/101",
			headers:    map[string]string{"Authorization": "Token abc"},
			setupMock:  func(_ *jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			method:  http.MethodGet,
			path:    "/v1/rooms/101",
			headers: map[string]string{"Authorization": "Bearer expired"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "unknown role in claims",
			method:  http.MethodGet,
			path:    "/v1/rooms/101",
			headers: map[string]string{"Authorization": "Bearer token"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{Username: "ghost", Role: "janitor"}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "role holds a listed capability",
			method:  http.MethodGet,
			path:    "/v1/rooms/101",
			headers: map[string]string{"Authorization": "Bearer token"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{Username: "frontdesk", Role: "receptionist"}, nil)
			},
			wantStatus: http.StatusOK,
			wantActor:  "frontdesk",
		},
		{
			name:    "role lacks every listed capability",
			method:  http.MethodGet,
			path:    "/v1/rooms/101",
			headers: map[string]string{"Authorization": "Bearer token"},
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).
					Return(&jwt.Claims{Username: "alice", Role: "patient"}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "public endpoint skips the token",
			method:     http.MethodPost,
			path:       "/v1/auth/login",
			setupMock:  func(_ *jwtMocks.MockJWT) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "valid api key acts as system",
			method:     http.MethodGet,
			path:       "/v1/rooms/101",
			headers:    map[string]string{"X-API-Key": "internal-key"},
			setupMock:  func(_ *jwtMocks.MockJWT) {},
			wantStatus: http.StatusOK,
			wantActor:  "system",
		},
		{
			name:       "wrong api key",
			method:     http.MethodGet,
			path:       "/v1/rooms/101",
			headers:    map[string]string{"X-API-Key": "guess"},
			setupMock:  func(_ *jwtMocks.MockJWT) {},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockJWT := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(mockJWT)

			request := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.headers {
				request.Header.Set(key, value)
			}

			recorder := httptest.NewRecorder()
			newRouter(t, mockJWT).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantActor != "" {
				assert.Equal(t, tt.wantActor, recorder.Header().Get("X-Actor"))
			}
		})
	}
}
