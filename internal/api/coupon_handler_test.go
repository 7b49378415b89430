package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/coupon-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed() []*domain.Coupon {
	return []*domain.Coupon{
		{ID: 1, Name: "10OFF", Percent: 10, IsActive: true},
		{ID: 2, Name: "20OFF", Percent: 20, IsActive: true},
	}
}

func TestGetCoupon(t *testing.T) {
	t.Parallel()

	h, _ := newCouponRouter(t, seed()...)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantMsg    string
	}{
		{name: "found", path: "/api/coupon/2", wantStatus: http.StatusOK},
		{name: "unknown id", path: "/api/coupon/99", wantStatus: http.StatusBadRequest, wantMsg: "Invalid Id"},
		{name: "zero", path: "/api/coupon/0", wantStatus: http.StatusBadRequest, wantMsg: msgInvalidPathID},
		{name: "negative", path: "/api/coupon/-4", wantStatus: http.StatusBadRequest, wantMsg: msgInvalidPathID},
		{name: "not a number", path: "/api/coupon/abc", wantStatus: http.StatusBadRequest, wantMsg: msgInvalidPathID},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(h, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var got CouponResponse
			if tt.wantStatus == http.StatusOK {
				env := decode(t, rec, &got)
				assert.True(t, env.IsSuccess)
				assert.Equal(t, "20OFF", got.Name)
				assert.Empty(t, env.ErrorMessages)
				return
			}
			env := decode(t, rec, nil)
			assert.False(t, env.IsSuccess)
			assert.Equal(t, tt.wantStatus, env.StatusCode)
			assert.Equal(t, []string{tt.wantMsg}, env.ErrorMessages)
		})
	}
}

func TestCreateCoupon(t *testing.T) {
	t.Parallel()

	t.Run("created with location", func(t *testing.T) {
		t.Parallel()
		h, st := newCouponRouter(t, seed()...)

		req := httptest.NewRequest(http.MethodPost, "/api/coupon",
			jsonBody(t, CouponCreateRequest{Name: "30OFF", Percent: 30, IsActive: true}))
		rec := do(h, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/coupon/3", rec.Header().Get("Location"))

		var got CouponCreateResponse
		env := decode(t, rec, &got)
		assert.True(t, env.IsSuccess)
		assert.Equal(t, http.StatusCreated, env.StatusCode)
		assert.Equal(t, 3, got.ID)
		assert.Equal(t, "30OFF", got.Name)
		assert.Equal(t, 3, st.Len())
	})

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "duplicate name ignoring case", body: `{"name":"10off","percent":5}`, wantMsg: "Coupon Name already Exists"},
		{name: "missing name", body: `{"percent":5}`, wantMsg: "'Name' must not be empty."},
		{name: "blank name", body: `{"name":"   ","percent":10}`, wantMsg: "'Name' must not be empty."},
		{name: "percent above range", body: `{"name":"X","percent":101}`, wantMsg: "'Percent' must be between 0 and 100. You entered 101."},
		{name: "percent below range", body: `{"name":"X","percent":-1}`, wantMsg: "'Percent' must be between 0 and 100. You entered -1."},
		{name: "malformed json", body: `{"name":`, wantMsg: "Invalid request format"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, st := newCouponRouter(t, seed()...)

			rec := do(h, httptest.NewRequest(http.MethodPost, "/api/coupon", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec, nil)
			assert.Equal(t, []string{tt.wantMsg}, env.ErrorMessages)
			assert.Equal(t, 2, st.Len(), "nothing may be persisted")
		})
	}
}

func TestUpdateCoupon(t *testing.T) {
	t.Parallel()

	t.Run("updates and stamps time", func(t *testing.T) {
		t.Parallel()
		h, _ := newCouponRouter(t, seed()...)

		rec := do(h, httptest.NewRequest(http.MethodPut, "/api/coupon",
			jsonBody(t, CouponUpdateRequest{ID: 1, Name: "15OFF", Percent: 15, IsActive: false})))

		require.Equal(t, http.StatusOK, rec.Code)
		var got CouponResponse
		decode(t, rec, &got)
		assert.Equal(t, "15OFF", got.Name)
		assert.Equal(t, 15, got.Percent)
		assert.False(t, got.IsActive)
		assert.NotNil(t, got.LastUpdated)
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{name: "unknown id", body: `{"id":99,"name":"X","percent":5}`, wantStatus: http.StatusNotFound, wantMsg: "Invalid Coupon Id"},
		{name: "id missing", body: `{"id":0,"name":"X","percent":5}`, wantStatus: http.StatusBadRequest, wantMsg: "'Id' must not be empty."},
		{name: "id negative", body: `{"id":-4,"name":"X","percent":5}`, wantStatus: http.StatusBadRequest, wantMsg: "'Id' must be greater than '0'."},
		{name: "blank name", body: `{"id":1,"name":"   ","percent":5}`, wantStatus: http.StatusBadRequest, wantMsg: "'Name' must not be empty."},
		{name: "rename collision", body: `{"id":1,"name":"20OFF","percent":5}`, wantStatus: http.StatusBadRequest, wantMsg: "Coupon Name already Exists"},
		{name: "percent out of range", body: `{"id":1,"name":"X","percent":1000}`, wantStatus: http.StatusBadRequest, wantMsg: "'Percent' must be between 0 and 100. You entered 1000."},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, st := newCouponRouter(t, seed()...)

			rec := do(h, httptest.NewRequest(http.MethodPut, "/api/coupon", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec, nil)
			assert.False(t, env.IsSuccess)
			assert.Equal(t, tt.wantStatus, env.StatusCode)
			assert.Equal(t, []string{tt.wantMsg}, env.ErrorMessages)

			stored, err := st.GetByID(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, "10OFF", stored.Name)
		})
	}
}

func TestDeleteCoupon(t *testing.T) {
	t.Parallel()

	h, st := newCouponRouter(t, seed()...)

	rec := do(h, httptest.NewRequest(http.MethodDelete, "/api/coupon/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var removed CouponResponse
	env := decode(t, rec, &removed)
	assert.True(t, env.IsSuccess)
	assert.Equal(t, http.StatusNoContent, env.StatusCode)
	assert.Equal(t, "10OFF", removed.Name)
	assert.Equal(t, 1, st.Len())

	rec = do(h, httptest.NewRequest(http.MethodDelete, "/api/coupon/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, []string{"Invalid Coupon Id"}, decode(t, rec, nil).ErrorMessages)
	assert.Equal(t, 1, st.Len())

	rec = do(h, httptest.NewRequest(http.MethodDelete, "/api/coupon/0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCoupons(t *testing.T) {
	t.Parallel()

	h, _ := newCouponRouter(t, seed()...)
	rec := do(h, httptest.NewRequest(http.MethodGet, "/api/coupon", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []CouponResponse
	decode(t, rec, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "10OFF", got[0].Name)
}

func TestListCoupons_StoreFailure(t *testing.T) {
	t.Parallel()

	h, st := newCouponRouter(t, seed()...)
	st.Err = errors.New("pq: connection refused to postgres://app:secret@db")

	rec := do(h, httptest.NewRequest(http.MethodGet, "/api/coupon", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, []string{"An unexpected error occurred"}, decode(t, rec, nil).ErrorMessages)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestSearchCoupons(t *testing.T) {
	t.Parallel()

	coupons := seed()
	for i := 3; i <= 14; i++ {
		coupons = append(coupons, &domain.Coupon{ID: i, Name: "SPRING" + string(rune('A'+i)), Percent: i})
	}
	h, _ := newCouponRouter(t, coupons...)

	tests := []struct {
		name      string
		query     string
		page      string
		pageSize  string
		wantIDs   []int
		wantCount int
	}{
		{name: "defaults to first ten", wantCount: 10},
		{name: "filter", query: "off", wantIDs: []int{1, 2}},
		{name: "filter ignores case", query: "spring", page: "2", pageSize: "5", wantIDs: []int{8, 9, 10, 11, 12}},
		{name: "bad headers fall back", query: "OFF", page: "x", pageSize: "-3", wantIDs: []int{1, 2}},
		{name: "past the end", page: "10", pageSize: "10", wantCount: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/api/coupon/special?couponName="+tt.query, nil)
			if tt.page != "" {
				req.Header.Set("Page", tt.page)
			}
			if tt.pageSize != "" {
				req.Header.Set("PageSize", tt.pageSize)
			}
			rec := do(h, req)
			require.Equal(t, http.StatusOK, rec.Code)

			var got []CouponResponse
			env := decode(t, rec, &got)
			assert.True(t, env.IsSuccess)

			if tt.wantIDs == nil {
				assert.Len(t, got, tt.wantCount)
				return
			}
			ids := make([]int, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
