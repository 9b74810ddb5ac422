package dto

// CategoryDTO 分类
type CategoryDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryBaseDTO 分类 - 新增或修改
type CategoryBaseDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name" binding:"required" validate:"min=1,max=64"`
	Description string `json:"description" validate:"max=255"`
}
