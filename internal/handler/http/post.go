package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-social-api/internal/service"
	"github.com/MKhiriev/go-social-api/internal/utils"
	"github.com/MKhiriev/go-social-api/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "post creation without caller")
		return
	}

	var request models.PostRequest
	if err = decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err, "invalid post body")
		return
	}

	post, err := h.services.PostService.CreatePost(r.Context(), models.Post{
		UserID:  userID,
		Title:   request.Title,
		Content: request.Content,
	})
	if err != nil {
		writeError(w, r, err, "post creation failed")
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

// updatePost applies a partial update. An unknown post id yields 200 with a
// JSON null body.
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "post update without caller")
		return
	}

	postID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid post id")
		return
	}

	var update models.PostUpdate
	if err = decodeOptionalJSON(w, r, &update); err != nil {
		writeError(w, r, err, "invalid post update body")
		return
	}
	update.ID = postID
	update.CallerID = userID

	post, err := h.services.PostService.UpdatePost(r.Context(), update)
	if errors.Is(err, service.ErrPostNotFound) {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, err, "post update failed")
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

// deletePost answers "deleted successfully" whether or not the post existed.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err, "post deletion without caller")
		return
	}

	postID, err := pathID(r)
	if err != nil {
		writeError(w, r, err, "invalid post id")
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), postID, userID); err != nil {
		writeError(w, r, err, "post deletion failed")
		return
	}

	utils.WriteText(w, msgDeletedSuccessfully, "text/html; charset=utf-8", http.StatusOK)
}
