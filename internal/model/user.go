package model

import (
	"time"
)

type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Username  string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_username" json:"username"`
	Email     string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_email" json:"email"`
	Password  string    `gorm:"type:varchar(128);not null" json:"-"`
	Nickname  string    `gorm:"type:varchar(64)" json:"nickname"`
	AvatarURL string    `gorm:"type:varchar(512)" json:"avatar_url"`
	Bio       string    `gorm:"type:varchar(255)" json:"bio"`
	IsBanned  bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_banned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Roles []Role `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
}

func (User) TableName() string {
	return "users"
}
