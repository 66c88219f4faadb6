// File: internal/handler/plans/plan.go
package plans

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
	listPlans  = store.ListPlans
	getPlan    = store.GetPlan
	createPlan = store.CreatePlan
	updatePlan = store.UpdatePlan
	deletePlan = store.DeletePlan
)

const (
	msgPlanNotFound = "plan not found"
	msgPlanExists   = "plan name already exists"
)

// ListPlansHandler 依名稱排序列出方案
// @Summary  列出方案
// @Tags     plans
// @Produce  json
// @Success  200 {array} model.Plan
// @Security BearerAuth
// @Router   /plans [get]
func ListPlansHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ps, err := listPlans(c.Request().Context(), db)
		if err != nil {
			return handler.InternalError(c, err)
		}
		if ps == nil {
			ps = []model.Plan{}
		}
		return c.JSON(http.StatusOK, ps)
	}
}

// CreatePlanHandler 新增方案，名稱不可重複
// @Summary  新增方案
// @Tags     plans
// @Accept   json
// @Produce  json
// @Param    body body     api.PlanRequest true "方案資料"
// @Success  201  {object} model.Plan
// @Failure  400  {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /plans [post]
func CreatePlanHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PlanRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}
		p, err := createPlan(c.Request().Context(), db, &model.Plan{
			Name:        req.Name,
			Price:       req.Price,
			Duration:    req.Duration,
			Description: req.Description,
		})
		if errors.Is(err, store.ErrConflict) {
			return handler.BadRequest(c, msgPlanExists)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "plan created", "plan_id", p.ID)
		return c.JSON(http.StatusCreated, p)
	}
}

// UpdatePlanHandler 只更新有帶的欄位
// @Summary  更新方案
// @Tags     plans
// @Accept   json
// @Produce  json
// @Param    id   path     int                   true "方案 ID"
// @Param    body body     api.UpdatePlanRequest true "欲更新欄位"
// @Success  200  {object} model.Plan
// @Failure  400  {object} api.ErrorResponse
// @Failure  404  {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /plans/{id} [put]
func UpdatePlanHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		var req api.UpdatePlanRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		p, err := getPlan(ctx, db, id)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgPlanNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}

		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Price != nil {
			p.Price = *req.Price
		}
		if req.Duration != nil {
			p.Duration = *req.Duration
		}
		if req.Description != nil {
			p.Description = req.Description
		}

		switch err := updatePlan(ctx, db, p); {
		case errors.Is(err, store.ErrNotFound):
			return handler.NotFound(c, msgPlanNotFound)
		case errors.Is(err, store.ErrConflict):
			return handler.BadRequest(c, msgPlanExists)
		case err != nil:
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "plan updated", "plan_id", p.ID)
		return c.JSON(http.StatusOK, p)
	}
}

// DeletePlanHandler 刪除方案
// @Summary  刪除方案
// @Tags     plans
// @Produce  json
// @Param    id  path     int true "方案 ID"
// @Success  200 {object} api.MessageResponse
// @Failure  404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /plans/{id} [delete]
func DeletePlanHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		err = deletePlan(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgPlanNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "plan deleted", "plan_id", id)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Plan deleted"})
	}
}
