// File: internal/handler/users/get_user.go
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
	"rest-boilerplate/internal/model"
	"rest-boilerplate/internal/store"
)

func toUserResponse(u model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
	}
}

// GetUserHandler 取得單一使用者，結果會短暫快取
// @Summary     Get user by ID
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Security    ApiKeyAuth
// @Router      /user/{id} [get]
func GetUserHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, "invalid user id"))
		}

		ctx := c.Request().Context()
		if cached, ok := cachedUser(ctx, rdb, id); ok {
			return c.JSON(http.StatusOK,
				dto.NewResponse(http.StatusOK, "User fetched successfully", *cached))
		}

		u, err := store.GetUserByID(ctx, db, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound,
					dto.NewResponse(http.StatusNotFound, "User not found"))
			}
			return c.JSON(http.StatusInternalServerError,
				dto.NewResponse(http.StatusInternalServerError, "Error fetching user"))
		}

		resp := toUserResponse(*u)
		cacheUser(ctx, rdb, resp)
		return c.JSON(http.StatusOK,
			dto.NewResponse(http.StatusOK, "User fetched successfully", resp))
	}
}
