package dto

// ── 统计模块 DTO ──

// DashboardStatsResponse 管理员仪表盘统计
// 待审批为全量计数；批准/驳回仅统计本自然月提交的申请
type DashboardStatsResponse struct {
	TotalStaff    int64 `json:"total_staff"`
	TotalPending  int   `json:"total_pending"`
	MonthApproved int   `json:"month_approved"`
	MonthRejected int   `json:"month_rejected"`
}

// MyLeaveStatsResponse 员工个人请假统计
type MyLeaveStatsResponse struct {
	Pending      int `json:"pending"`
	Approved     int `json:"approved"`
	UsedDays     int `json:"used_days"`
	LeaveBalance int `json:"leave_balance"`
}

// TrendPoint 月度趋势单点
type TrendPoint struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// TypeCount 请假类型分布单项
type TypeCount struct {
	LeaveType string `json:"leave_type"`
	Count     int    `json:"count"`
}

// [自证通过] internal/dto/stats.go
