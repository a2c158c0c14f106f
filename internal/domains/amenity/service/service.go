package service

import (
	"context"
	"fmt"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/internal/domains/amenity/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/amenity/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/amenity/repository"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/cache"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	gRepo "github.com/GioMjds/paynal-prajik/shared/repository"
)

const (
	cacheGetAmenity    = "amenity:get"
	cacheGetAllAmenity = "amenity:gets"
	cacheCountAmenity  = "amenity:count"
)

type Amenity interface {
	Create(ctx context.Context, req dto.CreateAmenityRequest) (dto.AmenityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAmenitiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AmenityResponse, error)
	Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Amenity
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Amenity, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Amenity {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAmenityRequest) (res dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	amenity := req.ToModel(shared.UserIDFrom(ctx))

	if err = s.repo.Insert(ctx, amenity); err != nil {
		if gRepo.IsViolation(err, constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict("this amenity already exists") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create amenity: %w", err)
	}

	cache.Evict(ctx, s.cache, cache.Pattern(cacheGetAllAmenity), cache.Pattern(cacheCountAmenity))

	res.FromModel(amenity)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAmenitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheGetAllAmenity, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetAmenitiesResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, err
		}

		amenities, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to get amenities: %w", err)
		}

		res.FromModels(amenities, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheCountAmenity, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("failed to count amenities: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AmenityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetAmenity, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.AmenityResponse, err error) {
		amenity, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(amenity)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAmenityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	fields := shared.TransformFields(req, shared.UserIDFrom(ctx))

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsViolation(err, constant.PqErrorCodeUniqueViolation) {
			return failure.Conflict("this amenity already exists") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update amenity: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete amenity: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Amenity, error) {
	amenity, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return amenity, fmt.Errorf("failed to get amenity: %w", err)
	}

	if amenity.ID == constant.Empty {
		return amenity, failure.NotFound("amenity not found") // nolint:wrapcheck
	}

	return amenity, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	cache.Evict(ctx, s.cache,
		shared.BuildCacheKey(cacheGetAmenity, id),
		cache.Pattern(cacheGetAllAmenity),
		cache.Pattern(cacheCountAmenity),
	)
}
