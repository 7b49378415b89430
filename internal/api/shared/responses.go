package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/coupon-api/internal/platform/logger"
	"github.com/phrazzld/coupon-api/internal/redact"
)

// APIResponse is the envelope wrapping every API response body.
type APIResponse struct {
	IsSuccess     bool        `json:"isSuccess"`
	Result        interface{} `json:"result"`
	StatusCode    int         `json:"statusCode"`
	ErrorMessages []string    `json:"errorMessages"`
}

// NewSuccessResponse creates an envelope for a successful result.
func NewSuccessResponse(status int, result interface{}) APIResponse {
	return APIResponse{
		IsSuccess:     true,
		Result:        result,
		StatusCode:    status,
		ErrorMessages: []string{},
	}
}

// NewErrorResponse creates an envelope for a failure.
func NewErrorResponse(status int, messages ...string) APIResponse {
	if messages == nil {
		messages = []string{}
	}
	return APIResponse{
		IsSuccess:     false,
		StatusCode:    status,
		ErrorMessages: messages,
	}
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel raises a 4xx error response from DEBUG to WARN.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess wraps result in a success envelope whose statusCode
// matches the HTTP status.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, result interface{}) {
	RespondWithJSON(w, r, status, NewSuccessResponse(status, result))
}

// RespondWithError writes an error envelope with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrorAndLog(w, r, status, message, nil)
}

// RespondWithErrorAndLog writes an error envelope carrying only userMessage
// and logs the redacted err alongside it.
//
// 5xx responses are logged at ERROR, 4xx at DEBUG unless elevated with
// WithElevatedLogLevel.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	} else if responseOpts.elevateLogLevel && status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}

	logger.FromContext(r.Context()).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, NewErrorResponse(status, userMessage))
}
