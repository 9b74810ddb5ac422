package minio

import (
	"context"
	"fmt"
	log "log/slog"

	"github.com/Sani1189/the-daily-sunrise-sub000/internal/api/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	// Client 全局 MinIO 客户端实例
	Client *minio.Client
	// BucketName 媒体文件存储桶
	BucketName string
)

// Init 初始化 MinIO 客户端并确保存储桶存在
func Init() error {
	cfg := config.Cfg.MinIO

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize minio client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return fmt.Errorf("failed to connect to minio server: %w", err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		log.Info("MinIO 存储桶已创建", "bucket", cfg.Bucket)
	}

	Client = client
	BucketName = cfg.Bucket
	log.Info("MinIO 客户端初始化成功", "endpoint", cfg.Endpoint, "bucket", cfg.Bucket)
	return nil
}
