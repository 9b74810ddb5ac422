package service

import (
	"context"
	log "log/slog"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/redis"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/repository"
)

type SettingService interface {
	SaveSetting(ctx context.Context, req *dto.SettingDTO) error
	GetSetting(ctx context.Context, key string) (*dto.SettingDTO, error)
	ListSettings(ctx context.Context) ([]*dto.SettingDTO, error)
}

type settingServiceImpl struct {
	settingRepo repository.SettingRepo
}

func NewSettingService(settingRepo repository.SettingRepo) SettingService {
	return &settingServiceImpl{settingRepo: settingRepo}
}

func (s *settingServiceImpl) SaveSetting(ctx context.Context, req *dto.SettingDTO) error {
	setting := &model.Setting{
		Key:   req.Key,
		Value: req.Value,
	}
	if err := s.settingRepo.SaveOrUpdateSetting(ctx, setting); err != nil {
		return wrapStorage(err)
	}

	if err := redis.DeleteKey(ctx, consts.SettingKey+req.Key); err != nil {
		log.WarnContext(ctx, "配置缓存清除失败", "key", req.Key, "error", err.Error())
	}
	return nil
}

// GetSetting 读走缓存，未命中回源并写回，次日零点过期
func (s *settingServiceImpl) GetSetting(ctx context.Context, key string) (*dto.SettingDTO, error) {
	if key == "" {
		return nil, ErrParamInvalid
	}

	cacheKey := consts.SettingKey + key
	if val, err := redis.GetValue(ctx, cacheKey); err == nil && val != "" {
		return &dto.SettingDTO{Key: key, Value: val}, nil
	}

	setting, err := s.settingRepo.GetSetting(ctx, key)
	if err != nil {
		return nil, wrapStorage(err)
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}

	if err = redis.SetWithMidnightExpiration(ctx, cacheKey, setting.Value); err != nil {
		log.WarnContext(ctx, "配置缓存写入失败", "key", key, "error", err.Error())
	}

	return &dto.SettingDTO{Key: setting.Key, Value: setting.Value}, nil
}

func (s *settingServiceImpl) ListSettings(ctx context.Context) ([]*dto.SettingDTO, error) {
	settings, err := s.settingRepo.ListSettings(ctx)
	if err != nil {
		return nil, wrapStorage(err)
	}

	res := make([]*dto.SettingDTO, 0, len(settings))
	for _, setting := range settings {
		res = append(res, &dto.SettingDTO{Key: setting.Key, Value: setting.Value})
	}
	return res, nil
}
