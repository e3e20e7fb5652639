package infrastructure

import "github.com/DRSN-tech/storefront/pkg/e"

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// GetExtensionFromMIME возвращает расширение объекта в бакете для MIME-типа картинки товара.
func GetExtensionFromMIME(mime string) (string, error) {
	ext, ok := imageExtensions[mime]
	if !ok {
		return "", e.ErrUnsupportedMediaType
	}

	return ext, nil
}
