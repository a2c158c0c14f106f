package service

import (
	"context"
	"fmt"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	bookingModel "github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	bookingRepo "github.com/GioMjds/paynal-prajik/internal/domains/booking/repository"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/review/repository"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/cache"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	gRepo "github.com/GioMjds/paynal-prajik/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReview    = "review:get"
	cacheGetAllReview = "review:gets"
	cacheCountReview  = "review:count"
)

type Review interface {
	Create(ctx context.Context, bookingID string, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReviewResponse, error)
	Update(ctx context.Context, req dto.UpdateReviewRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Review
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Review, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache,
	otel otel.Otel) Review {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create reviews a checked out booking of the signed in user.
func (s *serviceImpl) Create(ctx context.Context, bookingID string, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user := shared.UserIDFrom(ctx)

	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.UserID == nil || *booking.UserID != user {
		return res, failure.ResourceRestrictedError
	}

	if booking.Status != bookingModel.StatusCheckedOut {
		return res, failure.BadRequestFromString("only checked out bookings can be reviewed") // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Operator: gDto.FilterOperatorEq,
				Value:    bookingID,
				Table:    model.TableName,
			},
		},
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to check review existence: %w", err)
	}

	if exist {
		return res, failure.Conflict("this booking has already been reviewed") // nolint:wrapcheck
	}

	review := req.ToModel(booking, user)

	if err = s.repo.Insert(ctx, review); err != nil {
		if gRepo.IsViolation(err, constant.PqErrorCodeUniqueViolation) {
			return res, failure.Conflict("this booking has already been reviewed") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	cache.Evict(ctx, s.cache, cache.Pattern(cacheGetAllReview), cache.Pattern(cacheCountReview))

	log.Info().Str("booking_id", bookingID).Int("rating", review.Rating).Msg("Booking reviewed")

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetReviewsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, err
		}

		reviews, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			return res, fmt.Errorf("failed to get reviews: %w", err)
		}

		res.FromModels(reviews, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheCountReview, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("failed to count reviews: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetReview, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.ReviewResponse, err error) {
		review, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(review)

		return res, nil
	})
}

// Update lets the author change the rating or the comment.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReviewRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user := shared.UserIDFrom(ctx)

	review, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if review.UserID != user {
		return failure.ResourceRestrictedError
	}

	fields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Delete removes a review. Only its author or an admin may do so.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(&err)

	review, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !shared.IsAdmin(ctx) && review.UserID != shared.UserIDFrom(ctx) {
		return failure.ResourceRestrictedError
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Review, error) {
	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return review, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return review, failure.NotFound("review not found") // nolint:wrapcheck
	}

	return review, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	cache.Evict(ctx, s.cache,
		shared.BuildCacheKey(cacheGetReview, id),
		cache.Pattern(cacheGetAllReview),
		cache.Pattern(cacheCountReview),
	)
}
