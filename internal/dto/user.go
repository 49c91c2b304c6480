// File: internal/dto/user.go
package dto

// UserResponse 回傳的使用者資訊，不含密碼哈希
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        int    `json:"user_id" example:"1"`
	Email     string `json:"email" example:"alice@example.com"`
	FirstName string `json:"first_name" example:"Alice"`
	LastName  string `json:"last_name" example:"Chen"`
	IsActive  bool   `json:"isactive" example:"true"`
}

// UpdateUserRequest 更新使用者的請求格式，所有欄位皆為選填
// swagger:model dto.UpdateUserRequest
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password  *string `json:"password" validate:"omitempty,min=8" example:"Secret123!"`
	FirstName *string `json:"first_name" example:"Alice"`
	LastName  *string `json:"last_name" example:"Chen"`
}

// ListUsersParams 查詢使用者列表的分頁與排序參數
// swagger:model dto.ListUsersParams
type ListUsersParams struct {
	Limit  int    `query:"limit" validate:"omitempty,gt=0" example:"10"`
	Offset int    `query:"offset" validate:"omitempty,gte=0" example:"0"`
	Search string `query:"search" example:"alice"`
	Sort   string `query:"sort" validate:"omitempty,oneof=ASC DESC" example:"ASC"`
}
