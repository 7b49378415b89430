package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/coupon-api/internal/domain"
)

// maxBodyBytes bounds request bodies read by DecodeJSON.
const maxBodyBytes = 1 << 20

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON name, capitalized: "percent" -> "Percent".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return strings.ToUpper(name[:1]) + name[1:]
	})

	if err := v.RegisterValidation("percent", func(fl validator.FieldLevel) bool {
		p := fl.Field().Int()
		return p >= domain.MinCouponPercent && p <= domain.MaxCouponPercent
	}); err != nil {
		panic(err)
	}

	// notblank rejects strings that are empty once surrounding whitespace is trimmed.
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}

	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using its validate tags.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// FirstValidationMessage renders the first rule violation in err as a
// human-readable message such as
// "'Percent' must be between 0 and 100. You entered 101.".
// It returns "" if err carries no validation failure.
func FirstValidationMessage(err error) string {
	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return domainErr.Error()
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return ""
	}

	fe := fieldErrs[0]
	return fmt.Sprintf("'%s' %s", fe.Field(), tagMessage(fe))
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "must not be empty."
	case "percent":
		return fmt.Sprintf("must be between %d and %d. You entered %v.",
			domain.MinCouponPercent, domain.MaxCouponPercent, fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than '%s'.", fe.Param())
	case "gte", "min":
		return fmt.Sprintf("must be greater than or equal to '%s'.", fe.Param())
	case "lte", "max":
		return fmt.Sprintf("must be less than or equal to '%s'.", fe.Param())
	default:
		return "is not valid."
	}
}
