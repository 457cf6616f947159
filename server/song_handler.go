package server

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"MeloList/model"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// CreateSongHandler 创建歌曲
func (h *APIHandler) CreateSongHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title     string `json:"title"`
		Performer string `json:"performer"`
		Genre     string `json:"genre"`
		Duration  int64  `json:"duration"`
		AlbumID   string `json:"albumId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Title == "" || payload.Performer == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	song := &model.Song{
		ID:        fmt.Sprintf("song-%s", uuid.NewString()),
		Title:     payload.Title,
		Performer: payload.Performer,
		Genre:     sql.NullString{String: payload.Genre, Valid: payload.Genre != ""},
		Duration:  sql.NullInt64{Int64: payload.Duration, Valid: payload.Duration > 0},
		AlbumID:   sql.NullString{String: payload.AlbumID, Valid: payload.AlbumID != ""},
	}
	if err := h.songRepo.CreateSong(r.Context(), song); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"songId": song.ID})
}

// GetSongsHandler 返回全部歌曲
func (h *APIHandler) GetSongsHandler(w http.ResponseWriter, r *http.Request) {
	songs, err := h.songRepo.ListSongs(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if songs == nil {
		songs = []*model.SongSummary{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"songs": songs})
}

// GetSongHandler 返回单首歌曲
func (h *APIHandler) GetSongHandler(w http.ResponseWriter, r *http.Request) {
	songID := mux.Vars(r)["id"]

	song, err := h.songRepo.GetSongByID(r.Context(), songID)
	if err != nil {
		writeError(w, err)
		return
	}
	if song == nil {
		http.Error(w, "Song not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"song": song})
}
