// Package store defines the persistence interfaces for coupons and local
// users and the errors implementations return. Handlers and services depend
// on these interfaces only; internal/platform/postgres provides the
// production implementation.
package store
