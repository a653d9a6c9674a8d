package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
)

type errorResponse struct {
	status  int
	message string
}

// errorResponseMap lists the errors that clients may learn about. Anything
// else, validation failures included, is reported as a generic 500.
var errorResponseMap = []struct {
	target error
	errorResponse
}{
	{ErrEmptyBody, errorResponse{http.StatusBadRequest, msgBodyNotSpecified}},
	{service.ErrUserNotFound, errorResponse{http.StatusBadRequest, msgUserNotFound}},
	{service.ErrWrongPassword, errorResponse{http.StatusUnauthorized, msgIncorrectPassword}},
	{service.ErrUnauthorizedAccessToAnotherPost, errorResponse{http.StatusForbidden, msgForbidden}},
}

func responseFromError(err error) errorResponse {
	for _, e := range errorResponseMap {
		if errors.Is(err, e.target) {
			return e.errorResponse
		}
	}
	return errorResponse{http.StatusInternalServerError, msgSomethingWentWrong}
}

// writeError logs err and writes the matching {"error": ...} response.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", resp.status).Msg(msg)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: resp.message}, resp.status)
}
