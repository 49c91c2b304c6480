// File: internal/handler/users/list_users.go
package users

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/dto"
	"rest-boilerplate/internal/store"
)

// ListUsersHandler 列出使用者
// @Summary     List users
// @Description 依 limit/offset/search/sort 條件列出使用者
// @Tags        users
// @Produce     json
// @Param       limit  query int    false "每頁筆數"
// @Param       offset query int    false "起始位移"
// @Param       search query string false "Email 關鍵字"
// @Param       sort   query string false "排序方向 (ASC/DESC)"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /user [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var params dto.ListUsersParams
		if err := c.Bind(&params); err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, "invalid query parameters"))
		}
		if err := c.Validate(&params); err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, err.Error()))
		}

		list, err := store.ListUsers(c.Request().Context(), db, params.Limit, params.Offset, params.Search, params.Sort)
		if err != nil {
			return c.JSON(http.StatusInternalServerError,
				dto.NewResponse(http.StatusInternalServerError, "Error fetching users"))
		}

		resp := make([]dto.UserResponse, 0, len(list))
		for _, u := range list {
			resp = append(resp, toUserResponse(u))
		}
		return c.JSON(http.StatusOK,
			dto.NewResponse(http.StatusOK, "Users fetched successfully", resp))
	}
}
