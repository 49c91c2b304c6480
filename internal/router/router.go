// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/cache"
	"rest-boilerplate/internal/config"
	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/handler"
	"rest-boilerplate/internal/handler/auth"
	"rest-boilerplate/internal/handler/users"
	"rest-boilerplate/internal/logging"
	"rest-boilerplate/internal/middleware"
)

// Setup 註冊所有路由與中介層
// rdb 可為 nil，此時使用者查詢不經過快取
func Setup(e *echo.Echo, db database.DB, cfg *config.Config, log logging.Logger, rdb cache.Cache) {
	api := e.Group("/api")

	// 健康檢查
	api.GET("/health", handler.HealthHandler(db))

	// 使用者註冊與登入
	api.POST("/auth/login", auth.LoginHandler(db, cfg))
	api.POST("/auth/signup", auth.SignupHandler(db, cfg, log))

	// 使用者 CRUD（需登入）
	apiUsers := api.Group("/user", middleware.RequireAuth(cfg))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/me", users.GetMyUserHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db, rdb))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db, rdb))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db, rdb))
}
