package server

import (
	"encoding/json"
	"net/http"
)

type collaborationPayload struct {
	PlaylistID string `json:"playlistId"`
	UserID     string `json:"userId"`
}

// AddCollaborationHandler 授权用户协作歌单，仅所有者可操作
func (h *APIHandler) AddCollaborationHandler(w http.ResponseWriter, r *http.Request) {
	actorID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload collaborationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.PlaylistID == "" || payload.UserID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	collaboration, err := h.collabService.Add(r.Context(), payload.PlaylistID, payload.UserID, actorID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"collaborationId": collaboration.ID})
}

// RemoveCollaborationHandler 撤销协作授权，仅所有者可操作
func (h *APIHandler) RemoveCollaborationHandler(w http.ResponseWriter, r *http.Request) {
	actorID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload collaborationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.PlaylistID == "" || payload.UserID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.collabService.Remove(r.Context(), payload.PlaylistID, payload.UserID, actorID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "collaboration removed")
}
