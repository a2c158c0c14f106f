package conflict_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GioMjds/paynal-prajik/internal/domains/booking/conflict"
	bookingMocks "github.com/GioMjds/paynal-prajik/internal/domains/booking/mocks"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 10, 0, 0, 0, timezone.GetLocation())
}

func stay(checkIn, checkOut string) conflict.Stay {
	in, _ := time.Parse(time.DateOnly, checkIn)
	out, _ := time.Parse(time.DateOnly, checkOut)

	return conflict.Stay{CheckIn: in, CheckOut: out}
}

func TestStayOverlaps(t *testing.T) {
	existing := stay("2025-06-01", "2025-06-05")

	tests := []struct {
		name  string
		other conflict.Stay
		want  bool
	}{
		{name: "inside", other: stay("2025-06-03", "2025-06-04"), want: true},
		{name: "covering", other: stay("2025-05-30", "2025-06-10"), want: true},
		{name: "starts on check-out", other: stay("2025-06-05", "2025-06-07"), want: false},
		{name: "ends on check-in", other: stay("2025-05-28", "2025-06-01"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(existing))
		})
	}

	assert.Equal(t, 4, existing.Nights())
	assert.True(t, stay("2025-06-02", "2025-06-02").Empty())
}

func TestRoomOverlaps(t *testing.T) {
	requested := stay("2025-06-03", "2025-06-04")

	tests := []struct {
		name      string
		setupMock func(store *bookingMocks.MockStore)
		want      bool
		wantErr   bool
	}{
		{
			name: "held booking overlaps",
			setupMock: func(store *bookingMocks.MockStore) {
				store.EXPECT().
					FindOverlapping(gomock.Any(), "room-1", requested.CheckIn, requested.CheckOut, model.HeldStatuses).
					Return(3, nil)
			},
			want: true,
		},
		{
			name: "no held booking",
			setupMock: func(store *bookingMocks.MockStore) {
				store.EXPECT().
					FindOverlapping(gomock.Any(), "room-1", requested.CheckIn, requested.CheckOut, model.HeldStatuses).
					Return(0, nil)
			},
		},
		{
			name: "store failure",
			setupMock: func(store *bookingMocks.MockStore) {
				store.EXPECT().
					FindOverlapping(gomock.Any(), "room-1", gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := bookingMocks.NewMockStore(ctrl)
			tt.setupMock(store)

			detector := conflict.NewWithClock(store, fixedClock)
			got, err := detector.RoomOverlaps(context.Background(), "room-1", requested)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmailOverlaps(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := bookingMocks.NewMockStore(ctrl)
	requested := stay("2025-06-03", "2025-06-04")

	store.EXPECT().
		FindOverlappingByEmail(gomock.Any(), "juan@example.com", requested.CheckIn, requested.CheckOut, model.ActiveStatuses, true).
		Return(1, nil)

	detector := conflict.NewWithClock(store, fixedClock)
	got, err := detector.EmailOverlaps(context.Background(), "juan@example.com", requested)

	require.NoError(t, err)
	assert.True(t, got)
}

func TestDailyCapReached(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "two today", count: 2, want: false},
		{name: "three today", count: 3, want: true},
		{name: "more than limit", count: 5, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := bookingMocks.NewMockStore(ctrl)

			store.EXPECT().
				CountCreatedToday(gomock.Any(), "user-1", timezone.DateOf(fixedClock())).
				Return(tt.count, nil)

			detector := conflict.NewWithClock(store, fixedClock)
			got, err := detector.DailyCapReached(context.Background(), "user-1")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuestBookedToday(t *testing.T) {
	today := timezone.DateOf(fixedClock())
	yesterday := today.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		checkIn string
		user    conflict.User
		err     error
		want    bool
	}{
		{
			name:    "guest booked today for today",
			checkIn: "2025-06-01",
			user:    conflict.User{ID: "user-1", Role: "guest", LastBookingDate: &today},
			want:    true,
		},
		{
			name:    "guest booked today for later",
			checkIn: "2025-06-02",
			user:    conflict.User{ID: "user-1", Role: "guest", LastBookingDate: &today},
		},
		{
			name:    "guest booked yesterday",
			checkIn: "2025-06-01",
			user:    conflict.User{ID: "user-1", Role: "guest", LastBookingDate: &yesterday},
		},
		{
			name:    "admin booked today",
			checkIn: "2025-06-01",
			user:    conflict.User{ID: "user-1", Role: "admin", LastBookingDate: &today},
		},
		{
			name:    "guest never booked",
			checkIn: "2025-06-01",
			user:    conflict.User{ID: "user-1", Role: "guest"},
		},
		{
			name:    "lookup failure is ignored",
			checkIn: "2025-06-01",
			err:     errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := bookingMocks.NewMockStore(ctrl)

			store.EXPECT().GetUser(gomock.Any(), "user-1").Return(tt.user, tt.err)

			detector := conflict.NewWithClock(store, fixedClock)

			assert.Equal(t, tt.want, detector.GuestBookedToday(context.Background(), "user-1", tt.checkIn))
		})
	}
}
