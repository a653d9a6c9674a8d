package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/google/uuid"
)

func (h *Handler) follow(w http.ResponseWriter, r *http.Request) {
	h.changeFollowing(w, r, h.services.FollowService.Follow)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request) {
	h.changeFollowing(w, r, h.services.FollowService.Unfollow)
}

func (h *Handler) following(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "following lookup without caller")
		return
	}

	entries, err := h.services.FollowService.Following(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "following lookup failed")
		return
	}

	utils.WriteJSON(w, nonNil(entries), http.StatusOK)
}

func (h *Handler) followers(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "followers lookup without caller")
		return
	}

	entries, err := h.services.FollowService.Followers(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "followers lookup failed")
		return
	}

	utils.WriteJSON(w, nonNil(entries), http.StatusOK)
}

type followingChange func(ctx context.Context, userID, targetID uuid.UUID) (models.User, error)

// changeFollowing runs change for the caller and the {id} target and answers
// with the updated caller record.
func (h *Handler) changeFollowing(w http.ResponseWriter, r *http.Request, change followingChange) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "following change without caller")
		return
	}

	targetID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid user id")
		return
	}

	user, err := change(r.Context(), userID, targetID)
	if err != nil {
		writeError(w, r, err, "following change failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// nonNil makes empty lists serialise as [] instead of null.
func nonNil(entries []models.FollowEntry) []models.FollowEntry {
	if entries == nil {
		return []models.FollowEntry{}
	}
	return entries
}
