package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-diary/internal/validators"
)

// Body caps fit the longest valid field values with every character JSON
// escaped as \uXXXX, plus room for keys and whitespace.
const (
	jsonEscapeFactor = 6
	jsonBodyOverhead = 1024

	maxCredentialsBodyBytes = jsonEscapeFactor*(validators.MaxUsernameLength+validators.MaxPasswordLength) + jsonBodyOverhead
	maxEntryBodyBytes       = jsonEscapeFactor*(validators.MaxTitleLength+validators.MaxContentLength) + jsonBodyOverhead
)

// decodeJSON reads at most limit bytes of the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, limit int64, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
