// File: internal/handler/members/member.go
package members

import (
	"errors"
	"net/http"
	"time"

	"gym-admin/internal/api"
	"gym-admin/internal/database"
	"gym-admin/internal/handler"
	"gym-admin/internal/model"
	"gym-admin/internal/store"

	"github.com/labstack/echo/v4"
)

// 以下變數供測試替換
var (
	listMembers      = store.ListMembers
	getMember        = store.GetMember
	createMember     = store.CreateMember
	updateMember     = store.UpdateMember
	deleteMember     = store.DeleteMember
	getLatestFee     = store.GetLatestFee
	timeNow          = time.Now
)

const msgMemberNotFound = "member not found"

func validWindow(start, end time.Time) bool {
	return !end.Before(start)
}

// ListMembersHandler 列出所有會員
// @Summary  列出會員
// @Tags     members
// @Produce  json
// @Success  200 {array}  api.MemberResponse
// @Failure  401 {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /members [get]
func ListMembersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ms, err := listMembers(c.Request().Context(), db)
		if err != nil {
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewMemberResponses(ms))
	}
}

// GetMemberHandler 取得單一會員
// @Summary  取得會員
// @Tags     members
// @Produce  json
// @Param    id  path     int true "會員 ID"
// @Success  200 {object} api.MemberResponse
// @Failure  404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /members/{id} [get]
func GetMemberHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		m, err := getMember(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgMemberNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, api.NewMemberResponse(*m))
	}
}

// CreateMemberHandler 新增會員，end_date 不可早於 start_date
// @Summary  新增會員
// @Tags     members
// @Accept   json
// @Produce  json
// @Param    body body     api.CreateMemberRequest true "會員資料"
// @Success  201  {object} api.MemberResponse
// @Failure  400  {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /members [post]
func CreateMemberHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateMemberRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}
		start, err := handler.ParseDate(req.StartDate)
		if err != nil {
			return handler.BadRequest(c, "invalid start_date")
		}
		end, err := handler.ParseDate(req.EndDate)
		if err != nil {
			return handler.BadRequest(c, "invalid end_date")
		}
		if !validWindow(start, end) {
			return handler.BadRequest(c, "end_date must not be before start_date")
		}

		m, err := createMember(c.Request().Context(), db, &model.Member{
			Name:      req.Name,
			Phone:     req.Phone,
			Email:     req.Email,
			PlanType:  req.PlanType,
			StartDate: start,
			EndDate:   end,
			Notes:     req.Notes,
		})
		if err != nil {
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "member created", "member_id", m.ID)
		return c.JSON(http.StatusCreated, api.NewMemberResponse(*m))
	}
}

// UpdateMemberHandler 只更新有帶的欄位，合併後再檢查日期
// @Summary  更新會員
// @Tags     members
// @Accept   json
// @Produce  json
// @Param    id   path     int                     true "會員 ID"
// @Param    body body     api.UpdateMemberRequest true "欲更新欄位"
// @Success  200  {object} api.MemberResponse
// @Failure  400  {object} api.ErrorResponse
// @Failure  404  {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /members/{id} [put]
func UpdateMemberHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		var req api.UpdateMemberRequest
		if err := handler.BindRequest(c, &req); err != nil {
			return handler.BadRequest(c, err.Error())
		}

		ctx := c.Request().Context()
		m, err := getMember(ctx, db, id)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgMemberNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}

		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Phone != nil {
			m.Phone = *req.Phone
		}
		if req.Email != nil {
			m.Email = req.Email
		}
		if req.PlanType != nil {
			m.PlanType = *req.PlanType
		}
		if req.Notes != nil {
			m.Notes = req.Notes
		}
		if req.StartDate != nil {
			if m.StartDate, err = handler.ParseDate(*req.StartDate); err != nil {
				return handler.BadRequest(c, "invalid start_date")
			}
		}
		if req.EndDate != nil {
			if m.EndDate, err = handler.ParseDate(*req.EndDate); err != nil {
				return handler.BadRequest(c, "invalid end_date")
			}
		}
		if !validWindow(m.StartDate, m.EndDate) {
			return handler.BadRequest(c, "end_date must not be before start_date")
		}

		err = updateMember(ctx, db, m)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgMemberNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "member updated", "member_id", m.ID)
		return c.JSON(http.StatusOK, api.NewMemberResponse(*m))
	}
}

// DeleteMemberHandler 刪除會員 (連帶刪除費用與付款紀錄)
// @Summary  刪除會員
// @Tags     members
// @Produce  json
// @Param    id  path     int true "會員 ID"
// @Success  200 {object} api.MessageResponse
// @Failure  404 {object} api.ErrorResponse
// @Security BearerAuth
// @Router   /members/{id} [delete]
func DeleteMemberHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParamID(c, "id")
		if err != nil {
			return handler.BadRequest(c, err.Error())
		}
		err = deleteMember(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrNotFound) {
			return handler.NotFound(c, msgMemberNotFound)
		}
		if err != nil {
			return handler.InternalError(c, err)
		}
		handler.Audit(c, "member deleted", "member_id", id)
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Member deleted"})
	}
}
