package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"wastetrack/pkg/e"
	"wastetrack/pkg/validator"
)

const maxBodyBytes = 1 << 20

// Bind decodes a JSON request body into T, rejecting unknown fields and trailing data,
// then runs struct validation. Failures wrap e.ErrInvalidInput.
func Bind[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var dst T

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return dst, fmt.Errorf("empty body: %w", e.ErrInvalidInput)
		}
		return dst, fmt.Errorf("invalid JSON: %s: %w", err.Error(), e.ErrInvalidInput)
	}
	if dec.More() {
		return dst, fmt.Errorf("invalid JSON: trailing data: %w", e.ErrInvalidInput)
	}

	if err := validator.ValidateStruct(dst); err != nil {
		return dst, fmt.Errorf("%s: %w", validator.Describe(err), e.ErrInvalidInput)
	}
	return dst, nil
}
