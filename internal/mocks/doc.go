// Package mocks provides test doubles for the store, auth and service
// interfaces.
//
// Each mock exposes optional function fields (CreateFn, LoginFn, ...) that
// override the default behavior. The store mocks default to a working
// in-memory implementation so handler and service tests can exercise full
// flows without a database.
package mocks
