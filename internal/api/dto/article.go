package dto

// ArticleDTO 文章（列表与详情）
type ArticleDTO struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	Category    string `json:"category"`
	Country     string `json:"country"`
	CoverURL    string `json:"cover_url"`
	IsFeatured  bool   `json:"is_featured"`
	ViewsCount  int64  `json:"views_count"`
	PublishedAt string `json:"published_at"`

	// Author
	AuthorID   uint64 `json:"author_id"`
	AuthorName string `json:"author_name"`
}

// ArticleBaseDTO 文章 - 新增或修改
type ArticleBaseDTO struct {
	ID         uint64 `json:"id"`
	Title      string `json:"title" binding:"required" validate:"min=1,max=255"`
	Content    string `json:"content" binding:"required" validate:"min=1"`
	CategoryID uint64 `json:"category_id" binding:"required"`
	Country    string `json:"country" validate:"max=64"`
	CoverURL   string `json:"cover_url" validate:"max=512"`
	IsFeatured bool   `json:"is_featured"`
	Status     int8   `json:"status" validate:"min=0,max=2"`
}

// ArticleQueryDTO 公共文章列表查询
type ArticleQueryDTO struct {
	Category string `form:"category"`
	Country  string `form:"country"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=10"`
}
