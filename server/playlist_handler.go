package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// CreatePlaylistHandler 创建歌单
func (h *APIHandler) CreatePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.playlistService.Create(r.Context(), payload.Name, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"playlistId": created.ID})
}

// GetPlaylistsHandler 返回当前用户拥有的歌单
func (h *APIHandler) GetPlaylistsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	playlists, err := h.playlistService.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"playlists": playlists})
}

// DeletePlaylistHandler 删除歌单
func (h *APIHandler) DeletePlaylistHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	playlistID := mux.Vars(r)["id"]
	if err := h.playlistService.Delete(r.Context(), playlistID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "playlist deleted")
}

// AddPlaylistSongHandler 添加歌曲到歌单
func (h *APIHandler) AddPlaylistSongHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	playlistID := mux.Vars(r)["id"]

	var payload struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.SongID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.playlistService.AddSong(r.Context(), playlistID, payload.SongID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "song added to playlist")
}

// GetPlaylistSongsHandler 返回歌单详情（含歌曲列表）
func (h *APIHandler) GetPlaylistSongsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	playlistID := mux.Vars(r)["id"]
	detail, err := h.playlistService.GetSongs(r.Context(), playlistID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"playlist": detail})
}

// RemovePlaylistSongHandler 从歌单中移除歌曲
func (h *APIHandler) RemovePlaylistSongHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	playlistID := mux.Vars(r)["id"]

	var payload struct {
		SongID string `json:"songId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.SongID == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.playlistService.RemoveSong(r.Context(), playlistID, payload.SongID, userID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "song removed from playlist")
}

// GetPlaylistActivitiesHandler 返回歌单的账目记录
func (h *APIHandler) GetPlaylistActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	playlistID := mux.Vars(r)["id"]
	activities, err := h.playlistService.Activities(r.Context(), playlistID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"playlistId": playlistID,
		"activities": activities,
	})
}
