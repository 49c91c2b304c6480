// File: internal/handler/users/delete_user.go
package users

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/cache"
	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/dto"
	"rest-boilerplate/internal/store"
)

// DeleteUserHandler 刪除使用者
// @Summary     Delete user
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /user/{id} [delete]
func DeleteUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, "invalid user id"))
		}

		if err := store.DeleteUser(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError,
				dto.NewResponse(http.StatusInternalServerError, "Error deleting user"))
		}

		dropCachedUser(c.Request().Context(), rdb, id)

		return c.JSON(http.StatusOK,
			dto.NewResponse(http.StatusOK, "User deleted successfully"))
	}
}
