package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/phrazzld/coupon-api/internal/platform/logger"
	"github.com/phrazzld/coupon-api/internal/store"
)

const couponColumns = `id, name, percent, is_active, created, last_updated`

// PostgresCouponStore implements the store.CouponStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCouponStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCouponStore creates a new PostgreSQL implementation of the CouponStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCouponStore(db store.DBTX, logger *slog.Logger) *PostgresCouponStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCouponStore{
		db:     db,
		logger: logger.With(slog.String("component", "coupon_store")),
	}
}

// Ensure PostgresCouponStore implements store.CouponStore interface
var _ store.CouponStore = (*PostgresCouponStore)(nil)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCoupon(row rowScanner) (*domain.Coupon, error) {
	var (
		c           domain.Coupon
		lastUpdated sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Percent, &c.IsActive, &c.Created, &lastUpdated); err != nil {
		return nil, err
	}
	if lastUpdated.Valid {
		ts := lastUpdated.Time.UTC()
		c.LastUpdated = &ts
	}
	c.Created = c.Created.UTC()
	return &c, nil
}

// Create implements store.CouponStore.Create.
// The database assigns the id, which is written back to coupon.ID.
func (s *PostgresCouponStore) Create(ctx context.Context, coupon *domain.Coupon) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := coupon.Validate(); err != nil {
		log.Warn("coupon validation failed during create",
			slog.String("error", err.Error()),
			slog.String("name", coupon.Name))
		return err
	}

	query := `
		INSERT INTO coupons (name, percent, is_active, created, last_updated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		coupon.Name,
		coupon.Percent,
		coupon.IsActive,
		coupon.Created,
		coupon.LastUpdated,
	).Scan(&coupon.ID)
	if err != nil {
		log.Error("failed to create coupon",
			slog.String("error", err.Error()),
			slog.String("name", coupon.Name))
		return store.NewStoreError("coupon", "create", MapError(err))
	}

	log.Info("coupon created successfully",
		slog.Int("coupon_id", coupon.ID),
		slog.String("name", coupon.Name))
	return nil
}

// GetByID implements store.CouponStore.GetByID.
func (s *PostgresCouponStore) GetByID(ctx context.Context, id int) (*domain.Coupon, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + couponColumns + ` FROM coupons WHERE id = $1`

	coupon, err := scanCoupon(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("coupon not found", slog.Int("coupon_id", id))
			return nil, store.ErrCouponNotFound
		}
		log.Error("failed to get coupon by ID",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", id))
		return nil, store.NewStoreError("coupon", "get", MapError(err))
	}

	return coupon, nil
}

// GetByName implements store.CouponStore.GetByName.
func (s *PostgresCouponStore) GetByName(ctx context.Context, name string) (*domain.Coupon, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + couponColumns + ` FROM coupons WHERE lower(name) = lower($1) ORDER BY id LIMIT 1`

	coupon, err := scanCoupon(s.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCouponNotFound
		}
		log.Error("failed to get coupon by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, store.NewStoreError("coupon", "get", MapError(err))
	}

	return coupon, nil
}

// List implements store.CouponStore.List.
func (s *PostgresCouponStore) List(ctx context.Context) ([]*domain.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons ORDER BY id`
	return s.query(ctx, "list", query)
}

// Search implements store.CouponStore.Search.
// The name filter is a plain substring match, so '%' and '_' in the input are literal.
func (s *PostgresCouponStore) Search(ctx context.Context, filter store.CouponFilter) ([]*domain.Coupon, error) {
	query := `
		SELECT ` + couponColumns + `
		FROM coupons
		WHERE $1 = '' OR strpos(lower(name), lower($1)) > 0
		ORDER BY id
		OFFSET $2
		LIMIT $3
	`
	return s.query(ctx, "search", query, filter.NameContains, filter.Offset, filter.Limit)
}

func (s *PostgresCouponStore) query(ctx context.Context, op, query string, args ...any) ([]*domain.Coupon, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query coupons",
			slog.String("error", err.Error()),
			slog.String("operation", op))
		return nil, store.NewStoreError("coupon", op, MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close coupon rows", slog.String("error", closeErr.Error()))
		}
	}()

	coupons := make([]*domain.Coupon, 0)
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			log.Error("failed to scan coupon row",
				slog.String("error", err.Error()),
				slog.String("operation", op))
			return nil, store.NewStoreError("coupon", op, err)
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("coupon", op, MapError(err))
	}

	log.Debug("coupons retrieved",
		slog.String("operation", op),
		slog.Int("count", len(coupons)))
	return coupons, nil
}

// Update implements store.CouponStore.Update.
func (s *PostgresCouponStore) Update(ctx context.Context, coupon *domain.Coupon) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := coupon.Validate(); err != nil {
		log.Warn("coupon validation failed during update",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", coupon.ID))
		return err
	}

	query := `
		UPDATE coupons
		SET name = $1, percent = $2, is_active = $3, last_updated = $4
		WHERE id = $5
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		coupon.Name,
		coupon.Percent,
		coupon.IsActive,
		coupon.LastUpdated,
		coupon.ID,
	)
	if err != nil {
		log.Error("failed to update coupon",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", coupon.ID))
		return store.NewStoreError("coupon", "update", MapError(err))
	}

	if err := checkRowsAffected(result, store.ErrCouponNotFound); err != nil {
		log.Debug("coupon not updated",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", coupon.ID))
		return err
	}

	log.Info("coupon updated successfully", slog.Int("coupon_id", coupon.ID))
	return nil
}

// Delete implements store.CouponStore.Delete.
func (s *PostgresCouponStore) Delete(ctx context.Context, id int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete coupon",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", id))
		return store.NewStoreError("coupon", "delete", MapError(err))
	}

	if err := checkRowsAffected(result, store.ErrCouponNotFound); err != nil {
		log.Debug("coupon not deleted",
			slog.String("error", err.Error()),
			slog.Int("coupon_id", id))
		return err
	}

	log.Info("coupon deleted successfully", slog.Int("coupon_id", id))
	return nil
}
