package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeViewStatsService struct {
	recordErr error
	statsErr  error

	lastArticleID uint64
	lastVisitorID string
	lastPeriod    string
	lastLimit     int
	viewCount     int64
}

func (f *fakeViewStatsService) RecordView(_ context.Context, articleID uint64, visitorID string) (int64, error) {
	if f.recordErr != nil {
		return 0, f.recordErr
	}
	f.lastArticleID = articleID
	f.lastVisitorID = visitorID
	f.viewCount++
	return f.viewCount, nil
}

func (f *fakeViewStatsService) GetStatsForItem(_ context.Context, articleID uint64, period string, limit int) (*dto.ArticleStatsDTO, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	f.lastArticleID = articleID
	f.lastPeriod = period
	f.lastLimit = limit
	return &dto.ArticleStatsDTO{ArticleID: articleID, Period: period}, nil
}

func (f *fakeViewStatsService) GetGlobalStats(_ context.Context, limit int) (*dto.GlobalStatsDTO, error) {
	f.lastLimit = limit
	return &dto.GlobalStatsDTO{TotalViews: 42}, nil
}

func setupViewRouter(svc service.ViewStatsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewViewHandler(svc)
	r.POST("/api/views", h.RecordView)
	r.GET("/api/views/stats/global", h.GetGlobalStats)
	r.GET("/api/views/:article_id", h.GetItemStats)
	return r
}

func doRequest(r *gin.Engine, method, path string, body []byte) (*httptest.ResponseRecorder, *dto.Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp dto.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, &resp
}

func TestRecordViewEndpoint(t *testing.T) {
	svc := &fakeViewStatsService{}
	r := setupViewRouter(svc)

	body, _ := json.Marshal(dto.RecordViewDTO{ArticleID: 7, VisitorID: "visitor-a"})
	w, resp := doRequest(r, http.MethodPost, "/api/views", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, uint64(7), svc.lastArticleID)
	assert.Equal(t, "visitor-a", svc.lastVisitorID)
}

func TestRecordViewEndpointBadBody(t *testing.T) {
	r := setupViewRouter(&fakeViewStatsService{})

	// 缺少 article_id
	w, resp := doRequest(r, http.MethodPost, "/api/views", []byte(`{}`))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 400, resp.Code)
}

func TestRecordViewEndpointVisitorTooLong(t *testing.T) {
	r := setupViewRouter(&fakeViewStatsService{})

	// visitor_id 超过 128 字符，应按参数错误归成 400 而不是 500
	body, _ := json.Marshal(dto.RecordViewDTO{ArticleID: 7, VisitorID: strings.Repeat("v", 129)})
	w, resp := doRequest(r, http.MethodPost, "/api/views", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 400, resp.Code)
}

func TestRecordViewEndpointArticleMissing(t *testing.T) {
	svc := &fakeViewStatsService{recordErr: service.ErrArticleNotFound}
	r := setupViewRouter(svc)

	body, _ := json.Marshal(dto.RecordViewDTO{ArticleID: 99})
	_, resp := doRequest(r, http.MethodPost, "/api/views", body)

	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, service.ErrArticleNotFound.Error(), resp.Message)
}

func TestGetItemStatsEndpoint(t *testing.T) {
	svc := &fakeViewStatsService{}
	r := setupViewRouter(svc)

	w, resp := doRequest(r, http.MethodGet, "/api/views/7?period=daily&limit=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, uint64(7), svc.lastArticleID)
	assert.Equal(t, "daily", svc.lastPeriod)
	assert.Equal(t, 5, svc.lastLimit)
}

func TestGetItemStatsEndpointDefaults(t *testing.T) {
	svc := &fakeViewStatsService{}
	r := setupViewRouter(svc)

	_, resp := doRequest(r, http.MethodGet, "/api/views/7", nil)

	assert.Equal(t, 200, resp.Code)
	// 默认 period=all，limit 交给服务层取默认值
	assert.Equal(t, "all", svc.lastPeriod)
	assert.Equal(t, 0, svc.lastLimit)
}

func TestGetItemStatsEndpointBadID(t *testing.T) {
	r := setupViewRouter(&fakeViewStatsService{})

	_, resp := doRequest(r, http.MethodGet, "/api/views/not-a-number", nil)

	assert.Equal(t, 400, resp.Code)
}

func TestGetGlobalStatsEndpoint(t *testing.T) {
	svc := &fakeViewStatsService{}
	r := setupViewRouter(svc)

	w, resp := doRequest(r, http.MethodGet, "/api/views/stats/global?limit=3", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, 3, svc.lastLimit)
}
