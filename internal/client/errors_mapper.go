package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-user-api/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := apiErrorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// apiErrorMessage extracts a human-readable message from an API error body.
// Validation failures arrive as {"errors":[...]}, everything else as
// {"error":"..."}; non-JSON bodies fall back to the raw text.
func apiErrorMessage(resp *resty.Response) string {
	body := resp.Body()

	var validation models.ValidationErrorsResponse
	if err := json.Unmarshal(body, &validation); err == nil && len(validation.Errors) > 0 {
		return strings.Join(validation.Errors, "; ")
	}

	var single models.ErrorResponse
	if err := json.Unmarshal(body, &single); err == nil && single.Error != "" {
		return single.Error
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return http.StatusText(resp.StatusCode())
}
