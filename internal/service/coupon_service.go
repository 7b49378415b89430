package service

import (
	"context"
	"errors"
	"math"
	"log/slog"
	"time"

	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/phrazzld/coupon-api/internal/platform/logger"
	"github.com/phrazzld/coupon-api/internal/store"
)

// Paging defaults for SearchCoupons.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CouponService provides coupon CRUD operations.
type CouponService interface {
	// ListCoupons returns every coupon ordered by id.
	ListCoupons(ctx context.Context) ([]*domain.Coupon, error)

	// SearchCoupons returns one page of coupons whose name contains
	// nameContains, ignoring case. Non-positive page or pageSize fall back
	// to the defaults; pageSize is capped at MaxPageSize.
	SearchCoupons(ctx context.Context, nameContains string, page, pageSize int) ([]*domain.Coupon, error)

	// GetCoupon returns store.ErrCouponNotFound for an unknown id.
	GetCoupon(ctx context.Context, id int) (*domain.Coupon, error)

	// CreateCoupon rejects a name already in use (ignoring case) with
	// store.ErrCouponNameExists.
	CreateCoupon(ctx context.Context, name string, percent int, isActive bool) (*domain.Coupon, error)

	// UpdateCoupon overwrites name, percent and active flag and stamps the
	// update time. Returns store.ErrCouponNotFound for an unknown id and
	// store.ErrCouponNameExists when renaming onto another coupon's name.
	UpdateCoupon(ctx context.Context, id int, name string, percent int, isActive bool) (*domain.Coupon, error)

	// DeleteCoupon removes the coupon and returns it as it was.
	DeleteCoupon(ctx context.Context, id int) (*domain.Coupon, error)
}

type couponServiceImpl struct {
	coupons  store.CouponStore
	logger   *slog.Logger
	timeFunc func() time.Time
}

// NewCouponService creates a new CouponService.
func NewCouponService(coupons store.CouponStore, logger *slog.Logger) (CouponService, error) {
	if coupons == nil {
		return nil, domain.NewValidationError("coupons", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &couponServiceImpl{
		coupons:  coupons,
		logger:   logger.With(slog.String("component", "coupon_service")),
		timeFunc: time.Now,
	}, nil
}

func (s *couponServiceImpl) ListCoupons(ctx context.Context) ([]*domain.Coupon, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	coupons, err := s.coupons.List(ctx)
	if err != nil {
		log.Error("failed to list coupons", slog.String("error", err.Error()))
		return nil, NewCouponServiceError("list", "failed to list coupons", err)
	}
	return coupons, nil
}

// NormalizePaging applies the paging defaults and cap. The page is clamped
// so that (page-1)*pageSize never overflows int.
func NormalizePaging(page, pageSize int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if maxPage := math.MaxInt/pageSize + 1; page > maxPage {
		page = maxPage
	}
	return page, pageSize
}

func (s *couponServiceImpl) SearchCoupons(
	ctx context.Context,
	nameContains string,
	page, pageSize int,
) ([]*domain.Coupon, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page, pageSize = NormalizePaging(page, pageSize)
	filter := store.CouponFilter{
		NameContains: nameContains,
		Offset:       (page - 1) * pageSize,
		Limit:        pageSize,
	}

	coupons, err := s.coupons.Search(ctx, filter)
	if err != nil {
		log.Error("failed to search coupons",
			slog.String("error", err.Error()),
			slog.String("name_contains", nameContains),
			slog.Int("page", page),
			slog.Int("page_size", pageSize))
		return nil, NewCouponServiceError("search", "failed to search coupons", err)
	}

	log.Debug("coupon search completed",
		slog.String("name_contains", nameContains),
		slog.Int("page", page),
		slog.Int("page_size", pageSize),
		slog.Int("count", len(coupons)))
	return coupons, nil
}

func (s *couponServiceImpl) GetCoupon(ctx context.Context, id int) (*domain.Coupon, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	coupon, err := s.coupons.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCouponNotFound) {
			log.Debug("coupon not found", slog.Int("coupon_id", id))
			return nil, err
		}
		log.Error("failed to get coupon",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", id))
		return nil, NewCouponServiceError("get", "failed to retrieve coupon", err)
	}
	return coupon, nil
}

// nameTaken reports whether a coupon other than exceptID already uses name.
func (s *couponServiceImpl) nameTaken(ctx context.Context, name string, exceptID int) (bool, error) {
	existing, err := s.coupons.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrCouponNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != exceptID, nil
}

func (s *couponServiceImpl) CreateCoupon(
	ctx context.Context,
	name string,
	percent int,
	isActive bool,
) (*domain.Coupon, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	coupon, err := domain.NewCoupon(name, percent, isActive)
	if err != nil {
		log.Debug("invalid coupon", slog.String("error", err.Error()))
		return nil, err
	}
	coupon.Created = s.timeFunc().UTC()

	taken, err := s.nameTaken(ctx, name, 0)
	if err != nil {
		log.Error("failed to check coupon name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, NewCouponServiceError("create", "failed to check coupon name", err)
	}
	if taken {
		log.Debug("coupon name already exists", slog.String("name", name))
		return nil, store.ErrCouponNameExists
	}

	if err := s.coupons.Create(ctx, coupon); err != nil {
		log.Error("failed to create coupon",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, NewCouponServiceError("create", "failed to save coupon", err)
	}

	log.Info("coupon created",
		slog.Int("coupon_id", coupon.ID),
		slog.String("name", coupon.Name))
	return coupon, nil
}

func (s *couponServiceImpl) UpdateCoupon(
	ctx context.Context,
	id int,
	name string,
	percent int,
	isActive bool,
) (*domain.Coupon, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	coupon, err := s.GetCoupon(ctx, id)
	if err != nil {
		return nil, err
	}

	if !coupon.HasName(name) {
		taken, err := s.nameTaken(ctx, name, id)
		if err != nil {
			log.Error("failed to check coupon name",
				slog.String("error", err.Error()),
				slog.Int("coupon_id", id))
			return nil, NewCouponServiceError("update", "failed to check coupon name", err)
		}
		if taken {
			log.Debug("rename collides with another coupon",
				slog.Int("coupon_id", id),
				slog.String("name", name))
			return nil, store.ErrCouponNameExists
		}
	}

	if err := coupon.Update(name, percent, isActive, s.timeFunc()); err != nil {
		log.Debug("invalid coupon update",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", id))
		return nil, err
	}

	if err := s.coupons.Update(ctx, coupon); err != nil {
		if errors.Is(err, store.ErrCouponNotFound) {
			return nil, err
		}
		log.Error("failed to update coupon",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", id))
		return nil, NewCouponServiceError("update", "failed to save coupon", err)
	}

	log.Info("coupon updated", slog.Int("coupon_id", id))
	return coupon, nil
}

func (s *couponServiceImpl) DeleteCoupon(ctx context.Context, id int) (*domain.Coupon, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	coupon, err := s.GetCoupon(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.coupons.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrCouponNotFound) {
			return nil, err
		}
		log.Error("failed to delete coupon",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", id))
		return nil, NewCouponServiceError("delete", "failed to delete coupon", err)
	}

	log.Info("coupon deleted", slog.Int("coupon_id", id))
	return coupon, nil
}
