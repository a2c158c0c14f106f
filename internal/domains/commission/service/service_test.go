package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GioMjds/paynal-prajik/config"
	otelMocks "github.com/GioMjds/paynal-prajik/infras/otel/mocks"
	commissionMocks "github.com/GioMjds/paynal-prajik/internal/domains/commission/mocks"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/service"
	cacheMocks "github.com/GioMjds/paynal-prajik/shared/cache/mocks"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Commission, *commissionMocks.MockCommission) {
	ctrl := gomock.NewController(t)

	mockRepo := commissionMocks.NewMockCommission(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, otelMocks.NewOtel()), mockRepo
}

func TestCommissionService_Record(t *testing.T) {
	roomID := "7f1c6f0e-8a55-4f44-9c57-0b8c51b0d9a3"

	tests := []struct {
		name      string
		event     dto.FoodOrderEvent
		setupMock func(repo *commissionMocks.MockCommission)
		wantErr   bool
	}{
		{
			name:  "new order at default rate",
			event: dto.FoodOrderEvent{OrderID: "order-1", RoomID: &roomID, TotalAmount: 1234.50},
			setupMock: func(repo *commissionMocks.MockCommission) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Commission{}, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, commission model.Commission) error {
						assert.Equal(t, "order-1", commission.OrderID)
						assert.Equal(t, model.DefaultRate, commission.CommissionRate)
						assert.InDelta(t, 123.45, commission.CommissionAmount, 0.001)
						assert.Equal(t, model.OrderStatusPending, commission.OrderStatus)
						assert.Equal(t, constant.ContextSystem, commission.CreatedBy)
						assert.False(t, commission.OrderedAt.IsZero())

						return nil
					})
			},
		},
		{
			name:  "known order is refreshed",
			event: dto.FoodOrderEvent{OrderID: "order-1", TotalAmount: 1000, Status: model.OrderStatusCompleted},
			setupMock: func(repo *commissionMocks.MockCommission) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Commission{ID: "commission-1", OrderID: "order-1"}, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.OrderStatusCompleted, fields[model.FieldOrderStatus])
						assert.InDelta(t, 100.0, fields[model.FieldCommissionAmount], 0.001)

						return nil
					})
			},
		},
		{
			name:  "paid order only changes status",
			event: dto.FoodOrderEvent{OrderID: "order-1", TotalAmount: 5000, Status: model.OrderStatusReviewed},
			setupMock: func(repo *commissionMocks.MockCommission) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Commission{ID: "commission-1", IsPaid: true}, nil)
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.OrderStatusReviewed, fields[model.FieldOrderStatus])
						assert.NotContains(t, fields, model.FieldCommissionAmount)

						return nil
					})
			},
		},
		{
			name:      "missing order id",
			event:     dto.FoodOrderEvent{TotalAmount: 100},
			setupMock: func(_ *commissionMocks.MockCommission) {},
			wantErr:   true,
		},
		{
			name:  "insert failure",
			event: dto.FoodOrderEvent{OrderID: "order-2", TotalAmount: 100},
			setupMock: func(repo *commissionMocks.MockCommission) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Commission{}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)
			tt.setupMock(repo)

			err := svc.Record(context.Background(), tt.event)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCommissionService_GetAll(t *testing.T) {
	svc, repo := newService(t)

	filter := gDto.FilterGroup{}

	repo.EXPECT().Count(gomock.Any(), filter).Return(1, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), filter).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Commission, error) {
			assert.Equal(t, model.FieldOrderedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Commission{{ID: "commission-1", CommissionAmount: 50}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, filter)

	require.NoError(t, err)
	require.Len(t, res.Commissions, 1)
	assert.Equal(t, 50.0, res.Commissions[0].CommissionAmount)
}

func TestCommissionService_MarkPaid(t *testing.T) {
	tests := []struct {
		name      string
		found     model.Commission
		wantCode  int
		wantWrite bool
	}{
		{
			name:      "completed order",
			found:     model.Commission{ID: "commission-1", OrderStatus: model.OrderStatusCompleted},
			wantWrite: true,
		},
		{name: "not found", found: model.Commission{}, wantCode: http.StatusNotFound},
		{
			name:     "already paid",
			found:    model.Commission{ID: "commission-1", OrderStatus: model.OrderStatusCompleted, IsPaid: true},
			wantCode: http.StatusConflict,
		},
		{
			name:     "order still processing",
			found:    model.Commission{ID: "commission-1", OrderStatus: model.OrderStatusProcessing},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService(t)

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.found, nil)

			if tt.wantWrite {
				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, true, fields[model.FieldIsPaid])
						assert.Contains(t, fields, model.FieldPaidAt)
						assert.Equal(t, "paid via GCash", fields[model.FieldNotes])
						assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

						return nil
					})
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.MarkPaid(ctx, "commission-1", dto.MarkPaidRequest{Notes: "paid via GCash"})

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCommissionService_Summary(t *testing.T) {
	svc, repo := newService(t)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	gomock.InOrder(
		repo.EXPECT().Count(gomock.Any(), filter).Return(5, nil),
		repo.EXPECT().Sum(gomock.Any(), model.FieldTotalOrderValue, filter).Return(5000.0, nil),
		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil),
		repo.EXPECT().Sum(gomock.Any(), model.FieldTotalOrderValue, gomock.Any()).Return(3200.0, nil),
		repo.EXPECT().Sum(gomock.Any(), model.FieldCommissionAmount, gomock.Any()).Return(320.0, nil),
		repo.EXPECT().
			Sum(gomock.Any(), model.FieldCommissionAmount, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, unpaid gDto.FilterGroup) (float64, error) {
				assert.Len(t, unpaid.Filters, 2)

				return 120.0, nil
			}),
	)

	res, err := svc.Summary(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalOrders)
	assert.Equal(t, 3, res.CompletedOrders)
	assert.Equal(t, 320.0, res.TotalCommission)
	assert.Equal(t, 120.0, res.UnpaidCommission)
	assert.Equal(t, 106.67, res.AverageCommission)
}
