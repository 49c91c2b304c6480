// File: internal/service/errors.go
package service

import "errors"

// 領域錯誤，由 handler 邊界統一對應 HTTP 狀態碼
// 錯誤訊息即為回應信封中的 message
var (
	ErrNotFound          = errors.New("User not found")
	ErrInvalidCredential = errors.New("Invalid Password")
	ErrConflict          = errors.New("User Already Exists")
	ErrInternal          = errors.New("Internal Server Error")
)

// 令牌驗證錯誤，一律以回傳值表達，不以 panic 傳遞
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)
