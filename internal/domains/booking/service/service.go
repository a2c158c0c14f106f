package service

import (
	"context"
	"fmt"
	"mime"
	"path"
	"slices"

	"github.com/GioMjds/paynal-prajik/config"
	"github.com/GioMjds/paynal-prajik/infras/kafka"
	"github.com/GioMjds/paynal-prajik/infras/otel"
	"github.com/GioMjds/paynal-prajik/infras/s3"
	areaModel "github.com/GioMjds/paynal-prajik/internal/domains/area/model"
	areaRepo "github.com/GioMjds/paynal-prajik/internal/domains/area/repository"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/conflict"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/model/dto"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/repository"
	"github.com/GioMjds/paynal-prajik/internal/domains/booking/validation"
	roomModel "github.com/GioMjds/paynal-prajik/internal/domains/room/model"
	roomRepo "github.com/GioMjds/paynal-prajik/internal/domains/room/repository"
	userModel "github.com/GioMjds/paynal-prajik/internal/domains/user/model"
	userRepo "github.com/GioMjds/paynal-prajik/internal/domains/user/repository"
	"github.com/GioMjds/paynal-prajik/shared"
	"github.com/GioMjds/paynal-prajik/shared/cache"
	"github.com/GioMjds/paynal-prajik/shared/constant"
	gDto "github.com/GioMjds/paynal-prajik/shared/dto"
	"github.com/GioMjds/paynal-prajik/shared/failure"
	gRepo "github.com/GioMjds/paynal-prajik/shared/repository"
	"github.com/GioMjds/paynal-prajik/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking     = "booking:get"
	cacheGetAllBooking  = "booking:gets"
	cacheCountBooking   = "booking:count"
	cacheAvailability   = "booking:availability"
	directoryValidID    = "valid-ids"
	messageRoomRequired = "room_id is required for room bookings"
	messageAreaRequired = "area_id is required for venue bookings"
	messageUnavailable  = "This room is not available for the selected dates"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) error
	Availability(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	areaRepo  areaRepo.Area
	userRepo  userRepo.User
	validator validation.Validator
	s3        s3.S3
	kafka     kafka.Client
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, areaRepo areaRepo.Area, userRepo userRepo.User,
	validator validation.Validator, s3 s3.S3, kafka kafka.Client, cfg *config.Config, cache cache.RedisCache,
	otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		areaRepo:  areaRepo,
		userRepo:  userRepo,
		validator: validator,
		s3:        s3,
		kafka:     kafka,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(&err)

	userID := shared.UserIDFrom(ctx)

	resource, err := s.resource(ctx, req)
	if err != nil {
		return res, err
	}

	var requester *validation.Requester
	if userID != constant.Empty {
		requester = &validation.Requester{UserID: userID}
	}

	errs, err := s.validator.Validate(ctx, req.ToValidation(), resource, requester)
	if err != nil {
		log.Error().Err(err).Msg("failed to validate booking request")

		return res, fmt.Errorf("failed to validate booking request: %w", err)
	}

	if !errs.Empty() {
		log.Info().Interface("errors", errs).Msg("booking request rejected")

		return res, failure.Validation(errs) // nolint:wrapcheck
	}

	validIDURL, err := s.uploadValidID(ctx, req.Document())
	if err != nil {
		return res, err
	}

	booking, err := req.ToModel(userID, validIDURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to build booking")
		s.discardValidID(ctx, validIDURL)

		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")
		s.discardValidID(ctx, validIDURL)

		if gRepo.IsViolation(err, constant.PqErrorCodeExclusionViolation) {
			return res, failure.Conflict(messageUnavailable) // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if userID != constant.Empty {
		s.stampLastBookingDate(ctx, userID)
	}

	s.publish(ctx, dto.EventTypeCreated, booking)

	cache.Evict(ctx, s.cache, cache.Pattern(cacheGetAllBooking), cache.Pattern(cacheCountBooking), cache.Pattern(cacheAvailability))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetBookingsResponse, err error) {
		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, err
		}

		models, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get bookings")

			return res, fmt.Errorf("failed to get bookings: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(&err)

	key := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("failed to count bookings: %w", err)
		}

		return total, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	return cache.Remember(ctx, s.cache, shared.BuildCacheKey(cacheGetBooking, id), s.cfg.Cache.TTL, func(ctx context.Context) (res dto.BookingResponse, err error) {
		booking, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(booking)

		return res, nil
	})
}

// UpdateStatus moves a booking along the admin lifecycle.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !model.CanTransition(booking.Status, req.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("cannot change booking status from %s to %s", booking.Status, req.Status)) // nolint:wrapcheck
	}

	user := shared.UserIDFrom(ctx)
	fields := s.statusFields(req.Status, req.Reason, user)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("status", req.Status).Msg("failed to update booking status")

		if gRepo.IsViolation(err, constant.PqErrorCodeExclusionViolation) {
			return failure.Conflict(messageUnavailable) // nolint:wrapcheck
		}

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status
	s.publish(ctx, dto.EventTypeStatusChanged, booking)
	s.invalidate(ctx, id)

	return nil
}

// Cancel lets the booking owner, or an admin, withdraw a booking that has not started.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user := shared.UserIDFrom(ctx)

	booking, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !shared.IsAdmin(ctx) && (booking.UserID == nil || *booking.UserID != user) {
		return failure.ResourceRestrictedError
	}

	if !slices.Contains(model.CancellableStatuses, booking.Status) {
		return failure.BadRequestFromString(fmt.Sprintf("a %s booking can no longer be cancelled", booking.Status)) // nolint:wrapcheck
	}

	fields := s.statusFields(model.StatusCancelled, req.Reason, user)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = model.StatusCancelled
	s.publish(ctx, dto.EventTypeCancelled, booking)
	s.invalidate(ctx, id)

	return nil
}

// Availability lists the active bookings of a room or area that intersect the requested window.
func (s *serviceImpl) Availability(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.RoomID == constant.Empty && req.AreaID == constant.Empty {
		return res, failure.BadRequestFromString("room_id or area_id is required") // nolint:wrapcheck
	}

	window, err := req.Window()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	key := shared.BuildCacheKey(cacheAvailability, req.RoomID, req.AreaID, req.From, req.To)

	return cache.Remember(ctx, s.cache, key, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.AvailabilityResponse, err error) {
		models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCheckInDate, SortDir: gDto.SortDirAsc}, availabilityFilter(req, window))
		if err != nil {
			return res, fmt.Errorf("failed to get bookings for availability: %w", err)
		}

		res.FromModels(req, models)

		return res, nil
	})
}

// availabilityFilter matches the active bookings of the requested room or area inside window.
func availabilityFilter(req dto.AvailabilityRequest, window conflict.Stay) gDto.FilterGroup {
	filter := repository.VenueOverlapFilter(window.CheckIn, window.CheckOut, model.ActiveStatuses)
	field, value := model.FieldAreaID, req.AreaID

	if req.RoomID != constant.Empty {
		filter = repository.OverlapFilter(window.CheckIn, window.CheckOut, model.ActiveStatuses)
		field, value = model.FieldRoomID, req.RoomID
	}

	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    field,
		Value:    value,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return filter
}

// resource loads the room or area a booking targets, for its capacity.
func (s *serviceImpl) resource(ctx context.Context, req dto.CreateBookingRequest) (*validation.Resource, error) {
	if req.IsVenueBooking {
		if req.AreaID == constant.Empty {
			return nil, failure.BadRequestFromString(messageAreaRequired) // nolint:wrapcheck
		}

		area, err := s.areaRepo.Get(ctx, shared.FilterByID(req.AreaID, areaModel.FieldID, areaModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get area")

			return nil, fmt.Errorf("failed to get area: %w", err)
		}

		if area.ID == constant.Empty {
			return nil, failure.NotFound("area not found") // nolint:wrapcheck
		}

		if area.Status != areaModel.StatusAvailable {
			return nil, failure.BadRequestFromString("area is not open for booking") // nolint:wrapcheck
		}

		return &validation.Resource{ID: area.ID, MaxGuests: &area.Capacity}, nil
	}

	if req.RoomID == constant.Empty {
		return nil, failure.BadRequestFromString(messageRoomRequired) // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return nil, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status != roomModel.StatusAvailable {
		return nil, failure.BadRequestFromString("room is not open for booking") // nolint:wrapcheck
	}

	return &validation.Resource{ID: room.ID, MaxGuests: &room.MaxGuests}, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) statusFields(status, reason, user string) map[string]any {
	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if status == model.StatusCancelled || status == model.StatusRejected {
		fields[model.FieldCancellationDate] = timezone.Now()

		if reason != constant.Empty {
			fields[model.FieldCancellationReason] = reason
		}
	}

	return fields
}

func (s *serviceImpl) uploadValidID(ctx context.Context, doc *validation.Document) (string, error) {
	if doc == nil {
		return constant.Empty, nil
	}

	ext := path.Ext(doc.FileName)
	if ext == constant.Empty {
		if exts, _ := mime.ExtensionsByType(doc.ContentType); len(exts) > 0 {
			ext = exts[0]
		}
	}

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, directoryValidID, uuid.NewString()+ext, doc.ContentType, doc.Content)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload valid ID")

		return constant.Empty, fmt.Errorf("failed to upload valid ID: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) discardValidID(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	objectName := path.Base(s.s3.GetObjectNameFromURL(constant.Empty, url))

	if err := s.s3.DeleteFile(ctx, constant.Empty, directoryValidID, objectName); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to delete orphaned valid ID")
	}
}

func (s *serviceImpl) stampLastBookingDate(ctx context.Context, userID string) {
	fields := map[string]any{
		userModel.FieldLastBookingDate: timezone.Today(),
		constant.FieldModifiedAt:       timezone.Now(),
		constant.FieldModifiedBy:       userID,
	}

	if err := s.userRepo.Update(ctx, fields, shared.FilterByID(userID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("user", userID).Msg("failed to update last booking date")
	}
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	message := kafka.Message{Key: booking.ID, Value: dto.NewEvent(eventType, booking)}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", eventType).Str("booking", booking.ID).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	cache.Evict(ctx, s.cache,
		shared.BuildCacheKey(cacheGetBooking, id),
		cache.Pattern(cacheGetAllBooking),
		cache.Pattern(cacheCountBooking),
		cache.Pattern(cacheAvailability),
	)
}
