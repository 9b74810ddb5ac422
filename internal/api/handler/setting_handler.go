package handler

import (
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/response"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/util"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	settingSvc service.SettingService
}

func NewSettingHandler(settingSvc service.SettingService) *SettingHandler {
	return &SettingHandler{
		settingSvc: settingSvc,
	}
}

func (s *SettingHandler) ListSettings(c *gin.Context) {
	settings, err := s.settingSvc.ListSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, settings)
}

func (s *SettingHandler) GetSetting(c *gin.Context) {
	setting, err := s.settingSvc.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, setting)
}

func (s *SettingHandler) SaveSetting(c *gin.Context) {
	var req dto.SettingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.settingSvc.SaveSetting(c.Request.Context(), &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
