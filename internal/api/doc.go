// Package api handles incoming HTTP requests for coupons and accounts:
// request decoding and validation, mapping to and from domain types, and
// error-to-status translation. Every body is wrapped in shared.APIResponse.
package api
