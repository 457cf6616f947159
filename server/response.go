package server

import (
	"encoding/json"
	"net/http"

	"MeloList/apperror"
	"MeloList/logger"
)

// apiResponse 统一响应信封
type apiResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// writeJSON 写出成功响应
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Status: "success", Data: data})
}

// writeMessage 写出只带提示文案的成功响应
func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Status: "success", Message: message})
}

// writeError 把错误种类映射到HTTP状态码
// 业务错误返回fail，其余一律按服务器内部错误处理
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case apperror.IsNotFound(err):
		status = http.StatusNotFound
	case apperror.IsAuthorization(err):
		status = http.StatusForbidden
	case apperror.IsInvariant(err):
		status = http.StatusBadRequest
	default:
		logger.Error("internal server error", logger.ErrorField(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(apiResponse{
			Status:  "error",
			Message: "internal server error",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Status: "fail", Message: err.Error()})
}
