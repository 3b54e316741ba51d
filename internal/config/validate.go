package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// upperBounds limit the values accepted from interactive edits.
var upperBounds = map[string]int{
	KeyWorkDuration:            120,
	KeyShortBreakDuration:      30,
	KeyLongBreakDuration:       60,
	KeySessionsBeforeLongBreak: 10,
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report settings file keys instead of struct field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
}

// Validate checks that every field is a positive integer.
func (c TimerConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]

		return ErrInvalidConfiguration.Wrap(errNotPositive.Fmt(fe.Field(), fe.Value()))
	}

	return ErrInvalidConfiguration.Wrap(err)
}

// ValidateBounds applies Validate and additionally rejects values above the
// limits offered by the settings form.
func (c TimerConfig) ValidateBounds() error {
	if err := c.Validate(); err != nil {
		return err
	}

	for _, f := range c.fields() {
		if err := checkBound(f.key, *f.value); err != nil {
			return err
		}
	}

	return nil
}

// UpperBound returns the largest value accepted for key by ValidateBounds.
func UpperBound(key string) int {
	return upperBounds[key]
}

// ParseField converts the raw text of a single setting to its value,
// applying the same rules as ValidateBounds.
func ParseField(key, raw string) (int, error) {
	if _, ok := upperBounds[key]; !ok {
		return 0, ErrInvalidConfiguration.Wrap(errUnknownKey.Fmt(key))
	}

	raw = strings.TrimSpace(raw)

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidConfiguration.Wrap(errNotANumber.Fmt(key, raw))
	}

	if err := validate.Var(n, "gt=0"); err != nil {
		return 0, ErrInvalidConfiguration.Wrap(errNotPositive.Fmt(key, n))
	}

	if err := checkBound(key, n); err != nil {
		return 0, err
	}

	return n, nil
}

func checkBound(key string, n int) error {
	limit := upperBounds[key]

	if err := validate.Var(n, fmt.Sprintf("lte=%d", limit)); err != nil {
		return ErrInvalidConfiguration.Wrap(errOutOfRange.Fmt(key, limit, n))
	}

	return nil
}
