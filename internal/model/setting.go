package model

import (
	"time"
)

// Setting 站点级键值配置（站名、页脚、社交链接等）
type Setting struct {
	ID        uint64    `gorm:"primaryKey"`
	Key       string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_setting_key;column:setting_key" json:"key"`
	Value     string    `gorm:"type:varchar(2000);not null;column:setting_value" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
