package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
)

// errorStatusMap is checked in order; the first matching sentinel wins.
// Driver failures wrap both a low-level sentinel and ErrStoreUnavailable,
// so availability is listed first.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},

	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidEntryID, http.StatusBadRequest},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserInContext, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrEntryNotFound, http.StatusNotFound},
	{store.ErrEntryForbidden, http.StatusForbidden},
	// a token outliving its account
	{store.ErrUserReferenceViolation, http.StatusUnauthorized},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and responds with its mapped status. Bodies of
// 5xx responses carry only the status text.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Info().Err(err).Int("status", status).Msg(msg)
	utils.WriteError(w, publicMessage(err), status)
}

// publicMessage strips internal wrapping context: the message starts at the
// first known sentinel, keeping any detail appended after it.
func publicMessage(err error) string {
	text := err.Error()
	for _, entry := range errorStatusMap {
		if !errors.Is(err, entry.err) {
			continue
		}
		if i := strings.Index(text, entry.err.Error()); i >= 0 {
			return text[i:]
		}
		return entry.err.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}
