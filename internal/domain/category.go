package domain

import (
	"strings"
	"unicode"
)

// Category описывает категорию товаров
type Category struct {
	ID    int64
	Title string
	Slug  string // уникален среди категорий
}

func NewCategory(title string, slug string) *Category {
	return &Category{
		Title: title,
		Slug:  slug,
	}
}

// Slugify строит slug из заголовка: буквы и цифры в нижнем регистре,
// всё остальное схлопывается в одиночный дефис.
func Slugify(title string) string {
	var (
		b       strings.Builder
		pending bool
	)

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	return b.String()
}
