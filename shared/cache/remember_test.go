package cache_test

import (
	"context"
	"errors"
	"testing"

	"github.com/GioMjds/paynal-prajik/shared/cache"
	"github.com/GioMjds/paynal-prajik/shared/cache/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type roomCount struct {
	Total int `json:"total"`
}

func TestRemember(t *testing.T) {
	t.Run("hit skips the loader", func(t *testing.T) {
		store := mocks.NewMockRedisCache(gomock.NewController(t))

		store.EXPECT().Get(gomock.Any(), "room:count", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*roomCount) = roomCount{Total: 7}

				return nil
			})

		got, err := cache.Remember(context.Background(), store, "room:count", 60, func(context.Context) (roomCount, error) {
			t.Fatal("loader called on a cache hit")

			return roomCount{}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 7, got.Total)
	})

	t.Run("miss loads and saves", func(t *testing.T) {
		store := mocks.NewMockRedisCache(gomock.NewController(t))
		saved := make(chan any, 1)

		store.EXPECT().Get(gomock.Any(), "room:count", gomock.Any()).Return(cache.Nil)
		store.EXPECT().Save(gomock.Any(), "room:count", roomCount{Total: 3}, 60).
			DoAndReturn(func(_ context.Context, _ string, value any, _ int) error {
				saved <- value

				return nil
			})

		got, err := cache.Remember(context.Background(), store, "room:count", 60, func(context.Context) (roomCount, error) {
			return roomCount{Total: 3}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, got.Total)
		assert.Equal(t, roomCount{Total: 3}, <-saved)
	})

	t.Run("failed load is not cached", func(t *testing.T) {
		store := mocks.NewMockRedisCache(gomock.NewController(t))

		store.EXPECT().Get(gomock.Any(), "room:get:missing", gomock.Any()).Return(cache.Nil)

		_, err := cache.Remember(context.Background(), store, "room:get:missing", 60, func(context.Context) (roomCount, error) {
			return roomCount{}, errors.New("room not found")
		})

		assert.EqualError(t, err, "room not found")
	})
}

func TestEvictNow(t *testing.T) {
	store := mocks.NewMockRedisCache(gomock.NewController(t))

	store.EXPECT().Delete(gomock.Any(), "booking:get:b-1").Return(errors.New("redis down"))
	store.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)

	cache.EvictNow(context.Background(), store, "booking:get:b-1", cache.Pattern("booking:gets"))
}
