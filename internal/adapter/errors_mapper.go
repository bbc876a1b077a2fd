package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError turns a non-2xx gateway reply into an error. Every mapped
// error also matches ErrDelivery, so callers see one failure kind whether
// the gateway answered badly or could not be reached.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(status)
	}

	var reason error
	switch status {
	case http.StatusBadRequest:
		reason = ErrBadRequest
	case http.StatusUnauthorized:
		reason = ErrUnauthorized
	case http.StatusForbidden:
		reason = ErrForbidden
	case http.StatusNotFound:
		reason = ErrNotFound
	case http.StatusConflict:
		reason = ErrConflict
	case http.StatusBadGateway:
		reason = ErrBadGateway
	case http.StatusInternalServerError:
		reason = ErrInternalServerError
	default:
		return fmt.Errorf("%w: gateway status %d: %s", ErrDelivery, status, body)
	}
	return fmt.Errorf("%w: %w: %s", ErrDelivery, reason, body)
}
