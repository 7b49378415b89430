// Package postgres implements the internal/store interfaces on PostgreSQL
// through database/sql and the pgx driver. It also owns the embedded goose
// migrations that create the coupons and users tables.
package postgres
