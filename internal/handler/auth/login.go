// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/config"
	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/dto"
	"rest-boilerplate/internal/handler"
	"rest-boilerplate/internal/service"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 使用 Email 與 Password 進行驗證，回傳存取令牌
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.LoginRequest true "登入資料"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.Response
// @Failure     404 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Router      /auth/login [post]
func LoginHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, "invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, err.Error()))
		}

		token, err := service.Login(c.Request().Context(), db, cfg, req.Email, req.Password)
		if err != nil {
			code, msg := handler.StatusOf(err)
			return c.JSON(code, dto.NewResponse(code, msg))
		}

		return c.JSON(http.StatusOK,
			dto.NewResponse(http.StatusOK, "Login Successfully", token))
	}
}
