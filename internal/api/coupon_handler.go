package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/coupon-api/internal/api/shared"
	"github.com/phrazzld/coupon-api/internal/platform/logger"
	"github.com/phrazzld/coupon-api/internal/service"
	"github.com/phrazzld/coupon-api/internal/store"
)

// CouponHandler serves the /api/coupon routes.
type CouponHandler struct {
	coupons service.CouponService
	logger  *slog.Logger
}

// NewCouponHandler creates a new CouponHandler.
func NewCouponHandler(coupons service.CouponService, logger *slog.Logger) *CouponHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CouponHandler{
		coupons: coupons,
		logger:  logger.With(slog.String("component", "coupon_handler")),
	}
}

// ListCoupons handles GET /api/coupon.
func (h *CouponHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.coupons.ListCoupons(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, toCouponResponses(coupons))
}

// SearchCoupons handles GET /api/coupon/special.
// The couponName query parameter filters by substring; the Page and
// PageSize headers select the page.
func (h *CouponHandler) SearchCoupons(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("couponName")
	page, pageSize := service.NormalizePaging(headerInt(r, headerPage), headerInt(r, headerPageSize))

	coupons, err := h.coupons.SearchCoupons(r.Context(), name, page, pageSize)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, toCouponResponses(coupons))
}

// GetCoupon handles GET /api/coupon/{id}.
// An unknown id is a bad request rather than not found.
func (h *CouponHandler) GetCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := parseCouponID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	coupon, err := h.coupons.GetCoupon(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrCouponNotFound) {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidID, err)
			return
		}
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, toCouponResponse(coupon))
}

// CreateCoupon handles POST /api/coupon.
func (h *CouponHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CouponCreateRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	coupon, err := h.coupons.CreateCoupon(r.Context(), req.Name, req.Percent, req.IsActive)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("coupon created via API", slog.Int("coupon_id", coupon.ID))
	w.Header().Set("Location", fmt.Sprintf("/api/coupon/%d", coupon.ID))
	shared.RespondWithSuccess(w, r, http.StatusCreated, toCouponCreateResponse(coupon))
}

// UpdateCoupon handles PUT /api/coupon.
func (h *CouponHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var req CouponUpdateRequest
	if err := decodeAndValidate(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	coupon, err := h.coupons.UpdateCoupon(r.Context(), req.ID, req.Name, req.Percent, req.IsActive)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, toCouponResponse(coupon))
}

// DeleteCoupon handles DELETE /api/coupon/{id}.
// The HTTP status is 200 while the envelope reports 204.
func (h *CouponHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := parseCouponID(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	removed, err := h.coupons.DeleteCoupon(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.NewSuccessResponse(http.StatusNoContent, toCouponResponse(removed)))
}
