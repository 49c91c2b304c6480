// File: internal/handler/users/update_user.go
package users

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/cache"
	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/dto"
	"rest-boilerplate/internal/service"
	"rest-boilerplate/internal/store"
)

// UpdateUserHandler 更新使用者資料，僅覆寫請求中出現的欄位
// @Summary     Update user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id      path int                   true "使用者 ID"
// @Param       request body dto.UpdateUserRequest true "更新資料"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /user/{id} [put]
func UpdateUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, "invalid user id"))
		}

		var req dto.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, "invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, err.Error()))
		}

		u, err := store.GetUserByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound,
					dto.NewResponse(http.StatusNotFound, "User not found"))
			}
			return c.JSON(http.StatusInternalServerError,
				dto.NewResponse(http.StatusInternalServerError, "Error fetching user"))
		}

		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.FirstName != nil {
			u.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			u.LastName = *req.LastName
		}
		if req.Password != nil {
			hash, err := service.HashPassword(*req.Password, 0)
			if err != nil {
				return c.JSON(http.StatusInternalServerError,
					dto.NewResponse(http.StatusInternalServerError, "failed to hash password"))
			}
			u.PasswordHash = hash
		}

		if err := store.UpdateUser(c.Request().Context(), db, u); err != nil {
			return c.JSON(http.StatusInternalServerError,
				dto.NewResponse(http.StatusInternalServerError, "Error updating user"))
		}

		dropCachedUser(c.Request().Context(), rdb, u.ID)

		return c.JSON(http.StatusOK,
			dto.NewResponse(http.StatusOK, "User updated successfully", toUserResponse(*u)))
	}
}
