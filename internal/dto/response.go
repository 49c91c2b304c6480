// File: internal/dto/response.go
package dto

// Response 全域回應信封，所有端點成功或失敗都回傳此格式
// swagger:model dto.Response
type Response struct {
	// HTTP 狀態碼
	Status int `json:"status" example:"200"`

	// 人類可讀的訊息
	Message string `json:"message" example:"Login Successfully"`

	// 選用的資料負載
	Data any `json:"data,omitempty"`
}

// NewResponse 組裝回應信封，data 可省略
func NewResponse(status int, message string, data ...any) Response {
	resp := Response{Status: status, Message: message}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	return resp
}
