// File: cmd/service/main.go
// @title        Gym Admin API
// @version      1.0
// @description  健身房會員管理後台 API
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式為 "Bearer {token}"
package main

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	_ "gym-admin/docs" // 引入 swag 產出的 docs
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("service stopped", "error", err)
		exitFunc(1)
	}
}
