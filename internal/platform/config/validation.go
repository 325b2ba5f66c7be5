package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Errors name fields by their koanf keys, so they match base.yaml.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("koanf"), ","); name != "" {
			return name
		}

		return strings.ToLower(f.Name)
	})

	_ = v.RegisterValidation("http_url", isHTTPURL)

	return v
}

// isHTTPURL accepts absolute http and https URLs with a host. Empty values
// pass; pair it with required when the field is mandatory.
func isHTTPURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true
	}

	u, err := url.Parse(raw)

	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate checks c and reports every failing key. The service refuses to
// start on error. The API token is deliberately optional here: a missing
// token only fails the requests that need it.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	lines := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		lines = append(lines, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

var fieldMessages = map[string]string{
	"required":    "%s is required",
	"required_if": "%s is required when %s",
	"min":         "%s must be at least %s",
	"max":         "%s must be at most %s",
	"oneof":       "%s must be one of: %s",
	"startswith":  "%s must start with %q",
	"http_url":    "%s must be a valid URL with an http or https scheme",
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	format, ok := fieldMessages[e.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}

	if strings.Count(format, "%") == 1 {
		return fmt.Sprintf(format, field)
	}

	return fmt.Sprintf(format, field, e.Param())
}

// formatFieldPath drops the root struct name: "Config.server.port" becomes "server.port".
func formatFieldPath(namespace string) string {
	if _, path, found := strings.Cut(namespace, "."); found {
		return path
	}

	return namespace
}
