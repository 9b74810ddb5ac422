package service

import (
	"context"
	log "log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/dto"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/consts"
	"github.com/Sani1189/the-daily-sunrise-sub000/internal/pkg/minio"
	"github.com/google/uuid"
)

type MediaService interface {
	// UploadCover 上传文章封面图，返回公共访问地址
	UploadCover(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.MediaUploadResultDTO, error)
}

type mediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &mediaServiceImpl{}
}

func (s *mediaServiceImpl) UploadCover(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.MediaUploadResultDTO, error) {
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, ErrParamInvalid
	}
	defer func() {
		_ = file.Close()
	}()

	objectName := "covers/" + uuid.NewString() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, err = minio.UploadFile(ctx, objectName, file, fileHeader.Size, contentType); err != nil {
		log.ErrorContext(ctx, "封面上传失败", "object", objectName, "error", err.Error())
		return nil, wrapStorage(err)
	}

	return &dto.MediaUploadResultDTO{
		URL:      minio.GetPublicURL(objectName),
		MimeType: contentType,
		Size:     fileHeader.Size,
	}, nil
}
