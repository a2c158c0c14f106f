package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/GioMjds/paynal-prajik/config"
	otelMocks "github.com/GioMjds/paynal-prajik/infras/otel/mocks"
	userMocks "github.com/GioMjds/paynal-prajik/internal/domains/user/mocks"
	"github.com/GioMjds/paynal-prajik/internal/domains/user/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/user/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/user/service"
	cacheMocks "github.com/GioMjds/paynal-prajik/shared/cache/mocks"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.User, *userMocks.MockUser) {
	ctrl := gomock.NewController(t)

	mockRepo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo
}

func asAdmin(role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestUserService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo := newService(t)
		lastBooking := time.Date(2025, 6, 1, 0, 0, 0, 0, timezone.GetLocation())

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{
			ID: "user-1", Email: "juan@example.com", Role: constant.RoleGuest, LastBookingDate: &lastBooking, Active: true,
		}, nil)

		res, err := svc.Get(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Equal(t, constant.RoleGuest, res.Role)
		require.NotNil(t, res.LastBookingDate)
		assert.Equal(t, "2025-06-01", *res.LastBookingDate)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestUserService_GetAll(t *testing.T) {
	svc, repo := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 2}
	filter := gDto.FilterGroup{}

	repo.EXPECT().Count(gomock.Any(), filter).Return(3, nil)
	repo.EXPECT().GetAll(gomock.Any(), params, filter).Return([]model.User{{ID: "user-1"}, {ID: "user-2"}}, nil)

	res, err := svc.GetAll(context.Background(), params, filter)

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, 3, res.TotalData)
	assert.Len(t, res.Users, 2)
}

func TestUserService_Update(t *testing.T) {
	inactive := false

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		req       dto.UpdateUserRequest
		setupMock func(repo *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "deactivate guest",
			ctx:  asAdmin(constant.RoleAdmin),
			id:   "user-1",
			req:  dto.UpdateUserRequest{Active: &inactive},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, false, fields[model.FieldActive])
						assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

						return nil
					})
			},
		},
		{
			name: "admin cannot modify a superadmin",
			ctx:  asAdmin(constant.RoleAdmin),
			id:   "user-1",
			req:  dto.UpdateUserRequest{Active: &inactive},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1", Role: constant.RoleSuperAdmin}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:      "empty request",
			ctx:       asAdmin(constant.RoleAdmin),
			id:        "user-1",
			setupMock: func(_ *userMocks.MockUser) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "own account",
			ctx:       asAdmin(constant.RoleAdmin),
			id:        "admin-1",
			req:       dto.UpdateUserRequest{Role: constant.RoleGuest},
			setupMock: func(_ *userMocks.MockUser) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "admin cannot grant superadmin",
			ctx:       asAdmin(constant.RoleAdmin),
			id:        "user-1",
			req:       dto.UpdateUserRequest{Role: constant.RoleSuperAdmin},
			setupMock: func(_ *userMocks.MockUser) {},
			wantCode:  http.StatusForbidden,
		},
		{
			name: "superadmin grants superadmin",
			ctx:  asAdmin(constant.RoleSuperAdmin),
			id:   "user-1",
			req:  dto.UpdateUserRequest{Role: constant.RoleSuperAdmin},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			ctx:  asAdmin(constant.RoleAdmin),
			id:   "missing",
			req:  dto.UpdateUserRequest{Role: constant.RoleAdmin},
			setupMock: func(repo *userMocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			err := svc.Update(tt.ctx, tt.req, tt.id)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("user with bookings", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeFkViolation})

		err := svc.Delete(asAdmin(constant.RoleAdmin), "user-1")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("own account", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Delete(asAdmin(constant.RoleAdmin), "admin-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("deleted", func(t *testing.T) {
		svc, repo := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, svc.Delete(asAdmin(constant.RoleAdmin), "user-1"))
	})
}
