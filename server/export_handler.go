package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// ExportPlaylistHandler 请求导出歌单，仅所有者可操作
// 发布成功即返回202风格的受理响应，投递由独立的消费进程完成
func (h *APIHandler) ExportPlaylistHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := GetUserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	playlistID := mux.Vars(r)["id"]

	var payload struct {
		TargetEmail string `json:"targetEmail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || !strings.Contains(payload.TargetEmail, "@") {
		http.Error(w, "Invalid target email", http.StatusBadRequest)
		return
	}

	if err := h.exportProducer.RequestExport(r.Context(), playlistID, userID, payload.TargetEmail); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "export request is being processed")
}
