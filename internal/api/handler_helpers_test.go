package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/phrazzld/coupon-api/internal/mocks"
	"github.com/phrazzld/coupon-api/internal/service"
	"github.com/stretchr/testify/require"
)

// envelope mirrors shared.APIResponse with a raw result for typed decoding.
type envelope struct {
	IsSuccess     bool            `json:"isSuccess"`
	Result        json.RawMessage `json:"result"`
	StatusCode    int             `json:"statusCode"`
	ErrorMessages []string        `json:"errorMessages"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, result interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if result != nil {
		require.NoError(t, json.Unmarshal(env.Result, result))
	}
	return env
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// newCouponRouter wires a CouponHandler over an in-memory store without auth.
func newCouponRouter(t *testing.T, seed ...*domain.Coupon) (http.Handler, *mocks.MockCouponStore) {
	t.Helper()
	st := mocks.NewMockCouponStore(seed...)
	svc, err := service.NewCouponService(st, nil)
	require.NoError(t, err)
	h := NewCouponHandler(svc, nil)

	r := chi.NewRouter()
	r.Get("/api/coupon", h.ListCoupons)
	r.Get("/api/coupon/special", h.SearchCoupons)
	r.Get("/api/coupon/{id}", h.GetCoupon)
	r.Post("/api/coupon", h.CreateCoupon)
	r.Put("/api/coupon", h.UpdateCoupon)
	r.Delete("/api/coupon/{id}", h.DeleteCoupon)
	return r, st
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

