// File: internal/handler/auth/signup.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/config"
	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/dto"
	"rest-boilerplate/internal/handler"
	"rest-boilerplate/internal/logging"
	"rest-boilerplate/internal/service"
)

// SignupHandler 建立新帳號
// @Summary     註冊使用者
// @Description 以 Email、Password、姓名建立新帳號 (Email 區分大小寫，以註冊時輸入為準)
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body dto.SignupRequest true "註冊資料"
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.Response
// @Failure     409 {object} dto.Response
// @Failure     500 {object} dto.Response
// @Router      /auth/signup [post]
func SignupHandler(db database.DB, cfg *config.Config, log logging.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, "invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, err.Error()))
		}

		if err := service.Signup(c.Request().Context(), db, cfg, log, req); err != nil {
			code, msg := handler.StatusOf(err)
			if code == http.StatusInternalServerError {
				msg = "Error creating new user"
			}
			return c.JSON(code, dto.NewResponse(code, msg))
		}

		return c.JSON(http.StatusOK,
			dto.NewResponse(http.StatusOK, "Account has been created successfully"))
	}
}
