package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo хранит изображения товаров в бакете MinIO.
type ImageRepo struct {
	mc  *minio.Client
	cfg *cfg.MinIOCfg
}

func NewImageRepo(mc *minio.Client, cfg *cfg.MinIOCfg) *ImageRepo {
	return &ImageRepo{
		mc:  mc,
		cfg: cfg,
	}
}

// Upload кладёт изображение в бакет и возвращает ключ объекта.
func (i *ImageRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	size := int64(len(image.Bytes))
	if image.Size != nil && *image.Size > 0 {
		size = *image.Size
	}

	opts := minio.PutObjectOptions{}
	if image.MimeType != nil {
		opts.ContentType = *image.MimeType
	}

	bucket := image.Bucket
	if bucket == "" {
		bucket = i.cfg.BucketName
	}

	info, err := i.mc.PutObject(ctx, bucket, image.ObjectKey, bytes.NewReader(image.Bytes), size, opts)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

// Delete удаляет объект по ключу. Отсутствующий объект ошибкой не считается.
func (i *ImageRepo) Delete(ctx context.Context, key string) error {
	if err := i.mc.RemoveObject(ctx, i.cfg.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
