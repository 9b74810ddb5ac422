package model

type Role struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(32);not null;uniqueIndex:idx_role_name" json:"name"` // ADMIN / EDITOR
}

func (Role) TableName() string {
	return "roles"
}

type UserRole struct {
	UserID uint64 `gorm:"primaryKey"`
	RoleID uint64 `gorm:"primaryKey"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
