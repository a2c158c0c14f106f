package service

import (
	"context"
	"fmt"
	"math"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/commission/repository"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/cache"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	"github.com/GioMjds/paynal-prajik/shared/timezone"
	"github.com/GioMjds/paynal-prajik/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCommission     = "commission:get"
	cacheGetAllCommission  = "commission:gets"
	cacheCountCommission   = "commission:count"
	cacheSummaryCommission = "commission:summary"
)

type Commission interface {
	Record(ctx context.Context, event dto.FoodOrderEvent) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCommissionsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CommissionResponse, error)
	MarkPaid(ctx context.Context, id string, req dto.MarkPaidRequest) error
	Summary(ctx context.Context, filter gDto.FilterGroup) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Commission
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Commission, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Commission {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Record stores the commission of a food order. Events for a known order refresh its status
// and amounts unless the commission has already been paid out.
func (s *serviceImpl) Record(ctx context.Context, event dto.FoodOrderEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if err = validator.ValidateStruct(&event); err != nil {
		return fmt.Errorf("invalid food order event: %w", err)
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldOrderID,
				Operator: gDto.FilterOperatorEq,
				Value:    event.OrderID,
				Table:    model.TableName,
			},
		},
	}

	existing, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get commission")

		return fmt.Errorf("failed to get commission: %w", err)
	}

	switch {
	case existing.ID == constant.Empty:
		err = s.repo.Insert(ctx, event.ToModel())
	case existing.IsPaid:
		err = s.repo.Update(ctx, map[string]any{
			model.FieldOrderStatus:   event.OrderStatus(),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: constant.ContextSystem,
		}, filter)
	default:
		err = s.repo.Update(ctx, event.ToUpdate(), filter)
	}

	if err != nil {
		log.Error().Err(err).Str("order_id", event.OrderID).Msg("failed to record commission")

		return fmt.Errorf("failed to record commission: %w", err)
	}

	s.invalidate(ctx, existing.ID)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCommissionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.SortBy == constant.Empty {
		req.SortBy, req.SortDir = model.FieldOrderedAt, gDto.SortDirDesc
	}

	key := shared.BuildCacheKeyWithQuery(cacheGetAllCommission, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetCommissionsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, err
		}

		commissions, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to get commissions: %w", err)
		}

		res.FromModels(commissions, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheCountCommission, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("failed to count commissions: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CommissionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetCommission, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.CommissionResponse, err error) {
		commission, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(commission)

		return res, nil
	})
}

func (s *serviceImpl) MarkPaid(ctx context.Context, id string, req dto.MarkPaidRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPaid")
	defer scope.End()
	defer scope.TraceIfError(&err)

	commission, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if commission.IsPaid {
		return failure.Conflict("commission is already paid") // nolint:wrapcheck
	}

	if commission.OrderStatus != model.OrderStatusCompleted {
		return failure.BadRequestFromString("only commissions of completed orders can be paid") // nolint:wrapcheck
	}

	user := shared.UserIDFrom(ctx)

	fields := map[string]any{
		model.FieldIsPaid:        true,
		model.FieldPaidAt:        timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.Notes != constant.Empty {
		fields[model.FieldNotes] = req.Notes
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to mark commission as paid: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Summary aggregates orders and commissions. Commission totals only count completed orders.
func (s *serviceImpl) Summary(ctx context.Context, filter gDto.FilterGroup) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheSummaryCommission, gDto.QueryParams{}, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (dto.SummaryResponse, error) {
		return s.summarize(ctx, filter)
	})
}

func (s *serviceImpl) summarize(ctx context.Context, filter gDto.FilterGroup) (res dto.SummaryResponse, err error) {
	completed := dto.With(filter, gDto.Filter{
		ArgName:  "summary_status",
		Field:    model.FieldOrderStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    model.OrderStatusCompleted,
		Table:    model.TableName,
	})
	unpaid := dto.With(completed, gDto.Filter{
		ArgName:  "summary_paid",
		Field:    model.FieldIsPaid,
		Operator: gDto.FilterOperatorEq,
		Value:    false,
		Table:    model.TableName,
	})

	if res.TotalOrders, err = s.repo.Count(ctx, filter); err != nil {
		return res, fmt.Errorf("failed to count orders: %w", err)
	}

	if res.TotalSales, err = s.repo.Sum(ctx, model.FieldTotalOrderValue, filter); err != nil {
		return res, fmt.Errorf("failed to sum sales: %w", err)
	}

	if res.CompletedOrders, err = s.repo.Count(ctx, completed); err != nil {
		return res, fmt.Errorf("failed to count completed orders: %w", err)
	}

	if res.CompletedSales, err = s.repo.Sum(ctx, model.FieldTotalOrderValue, completed); err != nil {
		return res, fmt.Errorf("failed to sum completed sales: %w", err)
	}

	if res.TotalCommission, err = s.repo.Sum(ctx, model.FieldCommissionAmount, completed); err != nil {
		return res, fmt.Errorf("failed to sum commissions: %w", err)
	}

	if res.UnpaidCommission, err = s.repo.Sum(ctx, model.FieldCommissionAmount, unpaid); err != nil {
		return res, fmt.Errorf("failed to sum unpaid commissions: %w", err)
	}

	if res.CompletedOrders > 0 {
		res.AverageCommission = math.Round(res.TotalCommission/float64(res.CompletedOrders)*100) / 100
	}

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Commission, error) {
	commission, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return commission, fmt.Errorf("failed to get commission: %w", err)
	}

	if commission.ID == constant.Empty {
		return commission, failure.NotFound("commission not found") // nolint:wrapcheck
	}

	return commission, nil
}

// invalidate drops the cached commission, when id is known, and every list, count and summary.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	keys := []string{
		cache.Pattern(cacheGetAllCommission),
		cache.Pattern(cacheCountCommission),
		cache.Pattern(cacheSummaryCommission),
	}

	if id != constant.Empty {
		keys = append(keys, shared.BuildCacheKey(cacheGetCommission, id))
	}

	cache.Evict(ctx, s.cache, keys...)
}
