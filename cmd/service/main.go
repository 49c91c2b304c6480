// File: cmd/service/main.go
// @title        REST Boilerplate API
// @version      1.0
// @description  REST backend boilerplate 的 API 文件
// @host         localhost:8000
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"log"
)

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
