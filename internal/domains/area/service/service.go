package service

import (
	"context"
	"fmt"
	"mime"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/infras/s3"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/area/repository"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/base64"
	"github.com/GioMjds/paynal-prajik/shared/cache"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetArea    = "area:get"
	cacheGetAllArea = "area:gets"
	cacheCountArea  = "area:count"
)

type Area interface {
	Create(ctx context.Context, req dto.CreateAreaRequest) (dto.AreaResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAreasResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AreaResponse, error)
}

type serviceImpl struct {
	repo  repository.Area
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Area, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Area {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAreaRequest) (res dto.AreaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user := shared.UserIDFrom(ctx)

	imageURL, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return res, err
	}

	area := req.ToModel(user, imageURL)

	if err = s.repo.Insert(ctx, area); err != nil {
		return res, fmt.Errorf("failed to create area: %w", err)
	}

	cache.Evict(ctx, s.cache, cache.Pattern(cacheGetAllArea), cache.Pattern(cacheCountArea))

	res.FromModel(area)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAreasResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheGetAllArea, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetAreasResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, err
		}

		areas, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to get areas: %w", err)
		}

		res.FromModels(areas, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheCountArea, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("failed to count areas: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AreaResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetArea, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.AreaResponse, err error) {
		area, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return res, fmt.Errorf("failed to get area: %w", err)
		}

		if area.ID == constant.Empty {
			return res, failure.NotFound("area not found") // nolint:wrapcheck
		}

		res.FromModel(area)

		return res, nil
	})
}

// uploadImage stores a base64 data URL image and returns its public URL. No image yields "".
func (s *serviceImpl) uploadImage(ctx context.Context, encoded string) (string, error) {
	if encoded == constant.Empty {
		return constant.Empty, nil
	}

	contentType, data, err := base64.Decode(encoded)
	if err != nil {
		return constant.Empty, failure.BadRequest(err) // nolint:wrapcheck
	}

	object := uuid.NewString()
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		object += exts[0]
	}

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, model.EntityName, object, contentType, data)
	if err != nil {
		log.Error().Err(err).Str("object", object).Msg("failed to upload area image")

		return constant.Empty, fmt.Errorf("failed to upload area image: %w", err)
	}

	return url, nil
}
