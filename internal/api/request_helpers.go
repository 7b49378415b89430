package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/coupon-api/internal/api/shared"
	"github.com/phrazzld/coupon-api/internal/domain"
)

// pathIDParam is the chi URL parameter holding a coupon id.
const pathIDParam = "id"

// Header names carrying the search paging.
const (
	headerPage     = "Page"
	headerPageSize = "PageSize"
)

// parseCouponID extracts the coupon id from the path. Missing, non-numeric,
// zero and negative ids are all rejected.
func parseCouponID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, pathIDParam)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q: %w", errInvalidPathID, raw, domain.ErrInvalidID)
	}
	return id, nil
}

// headerInt reads an integer header, returning 0 when it is absent or malformed.
func headerInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.Header.Get(name))
	if err != nil {
		return 0
	}
	return n
}

// decodeAndValidate reads the JSON body into req and runs its validate tags.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) error {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		return fmt.Errorf("%w: %v", errInvalidRequestBody, err)
	}
	if err := shared.ValidateRequest(req); err != nil {
		return err
	}
	return nil
}
