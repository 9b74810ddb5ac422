package repository

import (
	"context"
	"errors"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepo interface {
	SaveOrUpdateSetting(ctx context.Context, setting *model.Setting) error
	GetSetting(ctx context.Context, key string) (*model.Setting, error)
	ListSettings(ctx context.Context) ([]*model.Setting, error)
}

type settingRepoImpl struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepo {
	return &settingRepoImpl{db: db}
}

// SaveOrUpdateSetting 采用 Upsert 逻辑，setting_key 冲突时覆盖值
func (s *settingRepoImpl) SaveOrUpdateSetting(ctx context.Context, setting *model.Setting) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(setting).Error
}

func (s *settingRepoImpl) GetSetting(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	err := s.db.WithContext(ctx).Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (s *settingRepoImpl) ListSettings(ctx context.Context) ([]*model.Setting, error) {
	settings := make([]*model.Setting, 0)
	err := s.db.WithContext(ctx).Order("setting_key ASC").Find(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}
