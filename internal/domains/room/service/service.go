package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/infras/s3"
	"github.com/GioMjds/paynal-prajik/internal/domains/room/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/room/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/room/repository"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/cache"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	gRepo "github.com/GioMjds/paynal-prajik/shared/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user := shared.UserIDFrom(ctx)

	image, err := s.uploadImage(ctx, req.Image, req.ImageFile)
	if err != nil {
		return res, err
	}

	room := req.ToModel(user, image.url)

	if err = s.repo.Insert(ctx, room); err != nil {
		s.deleteImage(ctx, image.object)

		if gRepo.IsViolation(err, constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict("a room with this name already exists") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	cache.Evict(ctx, s.cache, cache.Pattern(cacheGetAllRoom), cache.Pattern(cacheCountRoom))

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetRoomsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, err
		}

		rooms, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to get rooms: %w", err)
		}

		res.FromModels(rooms, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheCountRoom, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("failed to count rooms: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetRoom, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.RoomResponse, err error) {
		room, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(room)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	image, err := s.uploadImage(ctx, req.Image, req.ImageFile)
	if err != nil {
		return err
	}

	user := shared.UserIDFrom(ctx)

	fields := shared.TransformFields(req, user)
	if image.url != constant.Empty {
		fields[model.FieldImage] = image.url
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		s.deleteImage(ctx, image.object)

		if gRepo.IsViolation(err, constant.PqErrorCodeUniqueViolation) {
			return failure.Conflict("a room with this name already exists") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update room: %w", err)
	}

	if image.url != constant.Empty {
		s.deleteStoredImage(ctx, current.Image)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	room, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsViolation(err, constant.PqErrorCodeFkViolation) {
			return failure.Conflict("room has bookings and cannot be deleted, set it to maintenance instead") // nolint:wrapcheck
		}

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.deleteStoredImage(ctx, room.Image)
	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

type upload struct {
	url    string
	object string
}

func (s *serviceImpl) uploadImage(ctx context.Context, header *multipart.FileHeader, file multipart.File) (upload, error) {
	if header == nil {
		return upload{}, nil
	}

	object := uuid.NewString() + path.Ext(header.Filename)

	url, err := s.s3.UploadFile(ctx, constant.Empty, model.EntityName, file, header, object)
	if err != nil {
		return upload{}, fmt.Errorf("failed to upload room image: %w", err)
	}

	return upload{url: url, object: object}, nil
}

// deleteStoredImage removes the object behind a previously saved image URL.
func (s *serviceImpl) deleteStoredImage(ctx context.Context, imageURL *string) {
	if imageURL == nil {
		return
	}

	s.deleteImage(ctx, path.Base(s.s3.GetObjectNameFromURL(constant.Empty, *imageURL)))
}

func (s *serviceImpl) deleteImage(ctx context.Context, object string) {
	if object == constant.Empty || object == "." {
		return
	}

	if err := s.s3.DeleteFile(ctx, constant.Empty, model.EntityName, object); err != nil {
		log.Error().Err(err).Str("object", object).Msg("failed to delete room image")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	cache.Evict(ctx, s.cache,
		shared.BuildCacheKey(cacheGetRoom, id),
		cache.Pattern(cacheGetAllRoom),
		cache.Pattern(cacheCountRoom),
	)
}
