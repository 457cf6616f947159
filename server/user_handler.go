package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"MeloList/model"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// CreateUserHandler 开通用户账号
// 认证凭据由独立的身份服务管理，这里只落基本资料
func (h *APIHandler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Username == "" || payload.Email == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user := &model.User{
		ID:       fmt.Sprintf("user-%s", uuid.NewString()),
		Username: payload.Username,
		Email:    payload.Email,
	}
	if err := h.userRepo.CreateUser(r.Context(), user); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"userId": user.ID})
}

// GetUserHandler 返回用户资料
func (h *APIHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.userRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
