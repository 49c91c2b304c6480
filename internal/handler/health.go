// File: internal/handler/health.go
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/dto"
)

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 對資料庫執行一次簡單查詢確認連線正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.Response
// @Failure     400 {object} dto.Response
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, err := db.Exec(c.Request().Context(), `SELECT 1`); err != nil {
			return c.JSON(http.StatusBadRequest,
				dto.NewResponse(http.StatusBadRequest, "Health Check - DataBase Connection Failed"))
		}
		return c.JSON(http.StatusOK,
			dto.NewResponse(http.StatusOK, "Health Check - Success"))
	}
}
