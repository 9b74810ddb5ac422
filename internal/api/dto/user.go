package dto

// UserDTO 用户
type UserDTO struct {
	UserID    uint64   `json:"user_id"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Nickname  string   `json:"nickname"`
	AvatarURL string   `json:"avatar_url"`
	Bio       string   `json:"bio"`
	Roles     []string `json:"roles"`
}

// RegisterDTO 注册（仅管理员可创建编辑账号）
type RegisterDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=20"`
	Email    string `json:"email" binding:"required" validate:"email,max=128"`
	Password string `json:"password" binding:"required" validate:"min=6,max=20"`
	Nickname string `json:"nickname" validate:"max=64"`
	Role     string `json:"role" validate:"omitempty,oneof=ADMIN EDITOR"`
}

// CredentialDTO 登录凭证
type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResultDTO 登录结果
type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

// ChangePasswordDTO 修改密码
type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required" validate:"min=6,max=20"`
	NewPassword string `json:"new_password" binding:"required" validate:"min=6,max=20"`
}
