package types

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	appErr "github.com/warrantyit/server/pkg/errors"
)

// HTTPStatus maps the error taxonomy onto transport status codes. This is
// the only place the mapping lives; services never pick status codes.
func HTTPStatus(err error) int {
	switch {
	case appErr.IsCode(err, appErr.CodeInvalid):
		return http.StatusBadRequest
	case appErr.IsCode(err, appErr.CodeUnauthorized):
		return http.StatusUnauthorized
	case appErr.IsCode(err, appErr.CodeNotFound):
		return http.StatusNotFound
	case appErr.IsCode(err, appErr.CodeConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ValidationMessage renders the first failed field of a validator error as a
// caller-facing message. Non-validator errors fall through unchanged.
func ValidationMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	field := fieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please provide a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldName splits a struct field name into words: WarrantyPeriod -> "Warranty period".
func fieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
