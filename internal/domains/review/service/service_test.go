package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GioMjds/paynal-prajik/config"
	otelMocks "github.com/GioMjds/paynal-prajik/infras/otel/mocks"
	bookingMocks "github.com/GioMjds/paynal-prajik/internal/domains/booking/mocks"
	bookingModel "github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	reviewMocks "github.com/GioMjds/paynal-prajik/internal/domains/review/mocks"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/service"
	cacheMocks "github.com/GioMjds/paynal-prajik/shared/cache/mocks"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	reviews  *reviewMocks.MockReview
	bookings *bookingMocks.MockBooking
}

func newService(t *testing.T) (service.Review, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		reviews:  reviewMocks.NewMockReview(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(m.reviews, m.bookings, cfg, mockCache, otelMocks.NewOtel()), m
}

func withUser(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func strPtr(value string) *string {
	return &value
}

func stay(status string) bookingModel.Booking {
	return bookingModel.Booking{
		ID:     "booking-1",
		UserID: strPtr("guest-1"),
		RoomID: strPtr("room-1"),
		Status: status,
	}
}

func TestReviewService_Create(t *testing.T) {
	tests := []struct {
		name      string
		user      string
		setupMock func(m mocks)
		wantCode  int
	}{
		{
			name: "checked out stay",
			user: "guest-1",
			setupMock: func(m mocks) {
				m.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay(bookingModel.StatusCheckedOut), nil)
				m.reviews.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.reviews.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review model.Review) error {
						assert.Equal(t, "booking-1", review.BookingID)
						assert.Equal(t, "guest-1", review.UserID)
						assert.Equal(t, strPtr("room-1"), review.RoomID)
						assert.Nil(t, review.AreaID)
						assert.Equal(t, "Quiet and clean", *review.Comment)

						return nil
					})
			},
		},
		{
			name: "unknown booking",
			user: "guest-1",
			setupMock: func(m mocks) {
				m.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "someone else's booking",
			user: "guest-2",
			setupMock: func(m mocks) {
				m.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay(bookingModel.StatusCheckedOut), nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "stay not finished",
			user: "guest-1",
			setupMock: func(m mocks) {
				m.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay(bookingModel.StatusCheckedIn), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "already reviewed",
			user: "guest-1",
			setupMock: func(m mocks) {
				m.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay(bookingModel.StatusCheckedOut), nil)
				m.reviews.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "concurrent review",
			user: "guest-1",
			setupMock: func(m mocks) {
				m.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay(bookingModel.StatusCheckedOut), nil)
				m.reviews.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				m.reviews.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			tt.setupMock(m)

			req := dto.CreateReviewRequest{Rating: 5, Comment: " Quiet and clean "}

			res, err := svc.Create(withUser(tt.user, constant.RoleGuest), "booking-1", req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 5, res.Rating)
		})
	}
}

func TestReviewService_GetAll(t *testing.T) {
	svc, m := newService(t)

	filter := dto.ListFilter{RoomID: "room-1"}
	params := gDto.QueryParams{Page: 1, Limit: 10}

	m.reviews.EXPECT().Count(gomock.Any(), filter.ToFilterGroup()).Return(1, nil)
	m.reviews.EXPECT().GetAll(gomock.Any(), params, filter.ToFilterGroup()).Return([]model.Review{
		{ID: "review-1", BookingID: "booking-1", RoomID: strPtr("room-1"), Rating: 4},
	}, nil)

	res, err := svc.GetAll(context.Background(), params, filter.ToFilterGroup())

	require.NoError(t, err)
	require.Len(t, res.Reviews, 1)
	assert.Equal(t, 4, res.Reviews[0].Rating)
	assert.Equal(t, 1, res.TotalPage)
}

func TestReviewService_Update(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		found    model.Review
		wantCode int
	}{
		{name: "author", user: "guest-1", found: model.Review{ID: "review-1", UserID: "guest-1"}},
		{name: "another guest", user: "guest-2", found: model.Review{ID: "review-1", UserID: "guest-1"}, wantCode: http.StatusForbidden},
		{name: "unknown review", user: "guest-1", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			m.reviews.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.found, nil)

			if tt.wantCode == 0 {
				m.reviews.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 3, fields[model.FieldRating])
						assert.NotContains(t, fields, model.FieldComment)

						return nil
					})
			}

			err := svc.Update(withUser(tt.user, constant.RoleGuest), dto.UpdateReviewRequest{Rating: 3}, "review-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestReviewService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		user     string
		role     string
		wantCode int
	}{
		{name: "author", user: "guest-1", role: constant.RoleGuest},
		{name: "admin moderates", user: "admin-1", role: constant.RoleAdmin},
		{name: "another guest", user: "guest-2", role: constant.RoleGuest, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			m.reviews.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Review{ID: "review-1", UserID: "guest-1"}, nil)

			if tt.wantCode == 0 {
				m.reviews.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Delete(withUser(tt.user, tt.role), "review-1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
