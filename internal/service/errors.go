package service

import (
	"errors"
	"fmt"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrArticleNotFound         = errors.New("文章不存在")
	ErrStatsNotFound           = errors.New("暂无阅读统计")
	ErrCategoryNotFound        = errors.New("分类不存在")
	ErrCategoryExist           = errors.New("分类已存在")
	ErrCommentNotFound         = errors.New("评论不存在")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserExist               = errors.New("用户已存在")
	ErrUserBan                 = errors.New("用户已被封禁")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrNotificationNotFound    = errors.New("通知不存在")
	ErrSettingNotFound         = errors.New("配置项不存在")
	ErrFileNotSupported        = errors.New("不支持的文件类型")
	ErrStorage                 = errors.New("存储服务异常")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:         BadRequest,
	ErrArticleNotFound:      NotFound,
	ErrStatsNotFound:        NotFound,
	ErrCategoryNotFound:     NotFound,
	ErrCategoryExist:        BadRequest,
	ErrCommentNotFound:      NotFound,
	ErrUserNotFound:         NotFound,
	ErrUserExist:            BadRequest,
	ErrUserBan:              Unauthorized,
	ErrPasswordIncorrect:    Unauthorized,
	ErrNotificationNotFound: NotFound,
	ErrSettingNotFound:      NotFound,
	ErrFileNotSupported:     BadRequest,
	ErrStorage:              InternalServerError,
	UnauthorizedError:       Unauthorized,
	UnExpectedError:         InternalServerError,
}

// wrapStorage 保留底层错误信息的同时挂到 ErrStorage 语义上，
// 上层用 errors.Is(err, ErrStorage) 即可识别存储故障
func wrapStorage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
