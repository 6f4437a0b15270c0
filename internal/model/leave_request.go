package model

import "time"

// ── 请假状态 ──
// 状态机：pending → approved（终态）/ pending → rejected（终态）
// 已裁决的申请不再变更

const (
	LeaveStatusPending  = "pending"
	LeaveStatusApproved = "approved"
	LeaveStatusRejected = "rejected"
)

// ── 请假类型 ──

const (
	LeaveTypeAnnual        = "annual"
	LeaveTypeSick          = "sick"
	LeaveTypeMaternity     = "maternity"
	LeaveTypePaternity     = "paternity"
	LeaveTypeUnpaid        = "unpaid"
	LeaveTypeStudy         = "study"
	LeaveTypeCompassionate = "compassionate"
)

// leaveTypeNames 请假类型展示名（报表导出使用）
var leaveTypeNames = map[string]string{
	LeaveTypeAnnual:        "Annual Leave",
	LeaveTypeSick:          "Sick Leave",
	LeaveTypeMaternity:     "Maternity Leave",
	LeaveTypePaternity:     "Paternity Leave",
	LeaveTypeUnpaid:        "Unpaid Leave",
	LeaveTypeStudy:         "Study Leave",
	LeaveTypeCompassionate: "Compassionate Leave",
}

// IsValidLeaveType 检查请假类型是否合法
func IsValidLeaveType(t string) bool {
	_, ok := leaveTypeNames[t]
	return ok
}

// LeaveTypeName 返回请假类型展示名；未知类型原样返回
func LeaveTypeName(t string) string {
	if name, ok := leaveTypeNames[t]; ok {
		return name
	}
	return t
}

// LeaveRequest 请假申请表 — 对应 leave_requests
type LeaveRequest struct {
	LeaveRequestID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"leave_request_id"`
	UserID         string `gorm:"type:uuid;not null"                             json:"user_id"`

	// 冗余快照：创建时写入一次，此后不随账号变更同步
	UserName   string `gorm:"type:varchar(100);not null" json:"user_name"`
	UserEmail  string `gorm:"type:varchar(255);not null" json:"user_email"`
	StaffID    string `gorm:"type:varchar(20);not null"  json:"staff_id"`
	Department string `gorm:"type:varchar(50);not null"  json:"department"`

	LeaveType string    `gorm:"type:varchar(20);not null"                   json:"leave_type"`
	StartDate time.Time `gorm:"type:date;not null"                          json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null"                          json:"end_date"`
	Days      int       `gorm:"not null"                                    json:"days"` // 含首尾两端的自然日数
	Reason    string    `gorm:"type:varchar(500);not null"                  json:"reason"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"` // pending | approved | rejected

	ApprovedBy   *string    `gorm:"type:uuid"         json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	RejectedBy   *string    `gorm:"type:uuid"         json:"rejected_by,omitempty"`
	RejectedAt   *time.Time `json:"rejected_at,omitempty"`
	AdminComment string     `gorm:"type:varchar(500)" json:"admin_comment,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (LeaveRequest) TableName() string { return "leave_requests" }

// [自证通过] internal/model/leave_request.go
