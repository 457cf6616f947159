package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// CreateAlbumHandler 创建专辑
func (h *APIHandler) CreateAlbumHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
		Year int    `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.albumService.Create(r.Context(), payload.Name, payload.Year)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"albumId": created.ID})
}

// GetAlbumHandler 返回专辑及其收录的歌曲
func (h *APIHandler) GetAlbumHandler(w http.ResponseWriter, r *http.Request) {
	albumID := mux.Vars(r)["id"]

	detail, err := h.albumService.Get(r.Context(), albumID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"album": detail})
}

// UpdateAlbumHandler 更新专辑信息
func (h *APIHandler) UpdateAlbumHandler(w http.ResponseWriter, r *http.Request) {
	albumID := mux.Vars(r)["id"]

	var payload struct {
		Name string `json:"name"`
		Year int    `json:"year"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.albumService.Update(r.Context(), albumID, payload.Name, payload.Year); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "album updated")
}

// DeleteAlbumHandler 删除专辑
func (h *APIHandler) DeleteAlbumHandler(w http.ResponseWriter, r *http.Request) {
	albumID := mux.Vars(r)["id"]

	if err := h.albumService.Delete(r.Context(), albumID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "album deleted")
}

// AddAlbumLikeHandler 用户点赞专辑
func (h *APIHandler) AddAlbumLikeHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	albumID := mux.Vars(r)["id"]
	if err := h.albumService.AddLike(r.Context(), userID, albumID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "album liked")
}

// RemoveAlbumLikeHandler 用户取消点赞
func (h *APIHandler) RemoveAlbumLikeHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	albumID := mux.Vars(r)["id"]
	if err := h.albumService.RemoveLike(r.Context(), userID, albumID); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "album like removed")
}

// GetAlbumLikesHandler 返回专辑点赞数
// X-Data-Source 标记计数来自缓存还是数据库
func (h *APIHandler) GetAlbumLikesHandler(w http.ResponseWriter, r *http.Request) {
	albumID := mux.Vars(r)["id"]

	count, err := h.albumService.GetLikes(r.Context(), albumID)
	if err != nil {
		writeError(w, err)
		return
	}

	source := "db"
	if count.Cache {
		source = "cache"
	}
	w.Header().Set("X-Data-Source", source)
	writeJSON(w, http.StatusOK, map[string]interface{}{"likes": count.Likes})
}
