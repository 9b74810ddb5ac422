package handler

import (
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/response"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaSvc service.MediaService
}

func NewMediaHandler(mediaSvc service.MediaService) *MediaHandler {
	return &MediaHandler{
		mediaSvc: mediaSvc,
	}
}

// UploadCover 上传封面图，表单字段名 file
func (s *MediaHandler) UploadCover(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	result, err := s.mediaSvc.UploadCover(c.Request.Context(), fileHeader)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
