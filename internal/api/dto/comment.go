package dto

// CommentDTO 评论
type CommentDTO struct {
	ID        uint64 `json:"id"`
	ArticleID uint64 `json:"article_id"`
	Name      string `json:"name"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// CommentBaseDTO 评论 - 新增
type CommentBaseDTO struct {
	ArticleID uint64 `json:"article_id" binding:"required"`
	Name      string `json:"name" binding:"required" validate:"min=1,max=64"`
	Email     string `json:"email" binding:"required" validate:"email,max=128"`
	Content   string `json:"content" binding:"required" validate:"min=1,max=1000"`
}
