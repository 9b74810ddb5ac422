package handler

import (
	"strconv"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/response"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/util"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

type ViewHandler struct {
	viewStatsSvc service.ViewStatsService
}

func NewViewHandler(viewStatsSvc service.ViewStatsService) *ViewHandler {
	return &ViewHandler{
		viewStatsSvc: viewStatsSvc,
	}
}

// RecordView 前台阅读上报
func (s *ViewHandler) RecordView(c *gin.Context) {
	var req dto.RecordViewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	count, err := s.viewStatsSvc.RecordView(c.Request.Context(), req.ArticleID, req.VisitorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.RecordViewResultDTO{ViewCount: count})
}

// GetItemStats 单篇文章的阅读统计
func (s *ViewHandler) GetItemStats(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("article_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	period := c.DefaultQuery("period", consts.PeriodAll)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	stats, err := s.viewStatsSvc.GetStatsForItem(c.Request.Context(), articleID, period, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}

// GetGlobalStats 全站阅读聚合
func (s *ViewHandler) GetGlobalStats(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	stats, err := s.viewStatsSvc.GetGlobalStats(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
