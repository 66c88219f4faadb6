// File: internal/handler/gyminfo/gym_info.go
package gyminfo

import (
	"errors"
	"net/http"

	"gym-admin/internal/api"
	"gym-admin/internal/database"
	"gym-admin/internal/handler"
	"gym-admin/internal/model"
	"gym-admin/internal/store"

	"github.com/labstack/echo/v4"
)

// 以下變數供測試替換
var (
	getGymInfo    = store.GetGymInfo
	createGymInfo = store.CreateGymInfo
	updateGymInfo = store.UpdateGymInfo
)

const msgGymInfoNotFound = "gym info not found"

// GetHandler 取得健身房資料
// @Summary  取得健身房資料
// @Tags     gym-info
// @Produce  json
// @Success  200 {object} model.GymInfo
// @Failure  404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /gym-info [get]
func GetHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		g, err := getGymInfo(c.Request().Context(), db)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgGymInfoNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, g)
	}
}

// CreateHandler 只有在尚未建立時可以新增
// @Summary  建立健身房資料
// @Tags     gym-info
// @Accept   json
// @Produce  json
// @Param    body body     api.GymInfoRequest true "健身房資料"
// @Success  201  {object} model.GymInfo
// @Failure  400  {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /gym-info [post]
func CreateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.GymInfoRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		_, err := getGymInfo(ctx, db)
		switch {
		case err == nil:
			return handler.BadRequest(c, "gym info already exists")
		case !errors.Is(err, store.ErrNotFound):
			return handler.InternalError(c, err)
		}

		g, err := createGymInfo(ctx, db, &model.GymInfo{Name: req.Name, LogoURL: req.LogoURL})
		if err != nil {
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "gym info created")
		return c.JSON(http.StatusCreated, g)
	}
}

// UpdateHandler 只更新有帶的欄位
// @Summary  更新健身房資料
// @Tags     gym-info
// @Accept   json
// @Produce  json
// @Param    body body     api.UpdateGymInfoRequest true "欲更新欄位"
// @Success  200  {object} model.GymInfo
// @Failure  404  {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /gym-info [put]
func UpdateHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateGymInfoRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		g, err := getGymInfo(ctx, db)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgGymInfoNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		if req.Name != nil {
			g.Name = *req.Name
		}
		if req.LogoURL != nil {
			g.LogoURL = req.LogoURL
		}

		err = updateGymInfo(ctx, db, g)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgGymInfoNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "gym info updated")
		return c.JSON(http.StatusOK, g)
	}
}
