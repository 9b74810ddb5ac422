package dto

// SettingDTO 站点配置项
type SettingDTO struct {
	Key   string `json:"key" binding:"required" validate:"min=1,max=64"`
	Value string `json:"value" binding:"required" validate:"max=2000"`
}
