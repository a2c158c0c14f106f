package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GioMjds/paynal-prajik/config"
	otelMocks "github.com/GioMjds/paynal-prajik/infras/otel/mocks"
	s3Mocks "github.com/GioMjds/paynal-prajik/infras/s3/mocks"
	areaMocks "github.com/GioMjds/paynal-prajik/internal/domains/area/mocks"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/service"
	cacheMocks "github.com/GioMjds/paynal-prajik/shared/cache/mocks"
	"github.com/GioMjds/paynal-prajik/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Area, *areaMocks.MockArea, *s3Mocks.MockS3) {
	ctrl := gomock.NewController(t)

	mockRepo := areaMocks.NewMockArea(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel(), mockS3), mockRepo, mockS3
}

func TestAreaService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateAreaRequest
		setupMock func(repo *areaMocks.MockArea, s3 *s3Mocks.MockS3)
		wantCode  int
	}{
		{
			name: "pavilion with image",
			req: dto.CreateAreaRequest{
				Name: "Garden Pavilion", Capacity: 120, PricePerHour: 2500,
				Image: "data:image/png;base64,iVBORw0KGgo=",
			},
			setupMock: func(repo *areaMocks.MockArea, s3 *s3Mocks.MockS3) {
				s3.EXPECT().
					UploadFileBytes(gomock.Any(), "", model.EntityName, gomock.Any(), "image/png", []byte("\x89PNG\r\n\x1a\n")).
					Return("https://cdn.example.com/area/pavilion.png", nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, area model.Area) error {
						assert.Equal(t, model.StatusAvailable, area.Status)
						assert.Equal(t, "https://cdn.example.com/area/pavilion.png", *area.Image)

						return nil
					})
			},
		},
		{
			name:      "broken image",
			req:       dto.CreateAreaRequest{Name: "Garden Pavilion", Capacity: 120, PricePerHour: 2500, Image: "data:image/png;base64,%%%"},
			setupMock: func(_ *areaMocks.MockArea, _ *s3Mocks.MockS3) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "insert failure",
			req:  dto.CreateAreaRequest{Name: "Function Hall", Capacity: 200, PricePerHour: 4000},
			setupMock: func(repo *areaMocks.MockArea, _ *s3Mocks.MockS3) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, s3 := newService(t)
			tt.setupMock(repo, s3)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.req.Capacity, res.Capacity)
		})
	}
}

func TestAreaService_Get(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Area{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
