package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxBodySize = 1 << 20

// decodeJSON decodes the request body into dst. A missing, oversized or
// malformed body is reported as ErrEmptyBody.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrEmptyBody, err)
	}

	return nil
}

// decodeOptionalJSON is decodeJSON for bodies that may be omitted entirely.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	err := decodeJSON(w, r, dst)
	if errors.Is(err, ErrEmptyBody) && (errors.Is(err, io.EOF) || r.Body == nil || r.Body == http.NoBody) {
		return nil
	}

	return err
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q: %w", ErrInvalidPathID, raw, err)
	}

	return id, nil
}

// callerID returns the authenticated user's ID set by the auth middleware.
func callerID(r *http.Request) (uuid.UUID, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrNoUserInContext
	}

	return id, nil
}
