// File: internal/handler/status.go
package handler

import (
	"errors"
	"net/http"

	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/service"
)

// StatusOf 將領域錯誤對應為 HTTP 狀態碼與信封訊息
// 未知錯誤一律視為 500，不洩漏原始錯誤內容
func StatusOf(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrInvalidCredential):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, database.ErrPoolExhausted):
		return http.StatusInternalServerError, service.ErrInternal.Error()
	default:
		return http.StatusInternalServerError, service.ErrInternal.Error()
	}
}
