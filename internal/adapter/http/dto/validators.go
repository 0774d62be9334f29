package dto

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"simplepay/pkg/amount"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var paymentIDRe = regexp.MustCompile(`^[0-9a-f]{16}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("coin_amount", validateCoinAmount)
		_ = v.RegisterValidation("safe_url", validateSafeURL)
	}
}

// ValidPaymentID reports whether s is a 16 hex digit payment id.
func ValidPaymentID(s string) bool {
	return paymentIDRe.MatchString(s)
}

// validateCoinAmount accepts positive decimal strings with at most 12
// fractional digits.
func validateCoinAmount(fl validator.FieldLevel) bool {
	d, err := amount.Parse(fl.Field().String())
	return err == nil && d.IsPositive()
}

// validateSafeURL accepts only http/https URLs.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// SanitizeStruct trims whitespace and drops control characters from every
// exported string field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}
