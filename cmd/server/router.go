package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/coupon-api/internal/api"
	apiMiddleware "github.com/phrazzld/coupon-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(app.metrics.Handler)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	authHandler := api.NewAuthHandler(app.userService)
	couponHandler := api.NewCouponHandler(app.couponService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/Register", authHandler.Register)

		r.Get("/coupon/special", couponHandler.SearchCoupons)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.With(apiMiddleware.RequireRole(app.config.Auth.AdminRole)).
				Get("/coupon", couponHandler.ListCoupons)
			r.Get("/coupon/{id}", couponHandler.GetCoupon)
			r.Post("/coupon", couponHandler.CreateCoupon)
			r.Put("/coupon", couponHandler.UpdateCoupon)
			r.Delete("/coupon/{id}", couponHandler.DeleteCoupon)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})
	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
