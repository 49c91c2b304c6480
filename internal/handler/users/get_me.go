// File: internal/handler/users/get_me.go
package users

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/dto"
	"rest-boilerplate/internal/middleware"
	"rest-boilerplate/internal/service"
	"rest-boilerplate/internal/store"
)

// GetMyUserHandler 取得當前登入使用者的個人資料
// @Summary     Get current user
// @Tags        users
// @Produce     json
// @Success     200 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /user/me [get]
func GetMyUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextUserKey).(*service.Claims)
		if !ok {
			return c.JSON(http.StatusUnauthorized,
				dto.NewResponse(http.StatusUnauthorized, "missing token"))
		}

		u, err := store.GetUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound,
					dto.NewResponse(http.StatusNotFound, "User not found"))
			}
			return c.JSON(http.StatusInternalServerError,
				dto.NewResponse(http.StatusInternalServerError, "Error fetching user"))
		}

		return c.JSON(http.StatusOK,
			dto.NewResponse(http.StatusOK, "User fetched successfully", toUserResponse(*u)))
	}
}
