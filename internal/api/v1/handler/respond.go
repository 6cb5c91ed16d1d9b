package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"kizuna/internal/api/v1/dto"

	"github.com/go-playground/validator/v10"
)

const maxJSONBody = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, dto.ErrorDTO{Error: msg})
}

// decodeAndValidate reads a JSON body into v and runs the struct's validate
// tags. Errors are ready to show to the caller.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) error {
	if err := decodeJSON(w, r, v); err != nil {
		return err
	}
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("Validation failed: field %s is %s", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("Validation failed: %w", err)
	}
	return nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("Invalid JSON payload: %w", err)
	}
	return nil
}
