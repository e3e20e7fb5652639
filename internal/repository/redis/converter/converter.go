package converter

import "github.com/DRSN-tech/storefront/internal/domain"

type ProductConverter interface {
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	ToEntity(model *ProductRedisModel) *domain.Product
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
}

type ProductConverterImpl struct{}

func (ProductConverterImpl) ToRedisModel(entity *domain.Product) *ProductRedisModel {
	if entity == nil {
		return nil
	}
	return &ProductRedisModel{
		ID:          entity.ID,
		CategoryID:  entity.CategoryID,
		Title:       entity.Title,
		Slug:        entity.Slug,
		Description: entity.Description,
		Price:       entity.Price,
		ImageKey:    entity.ImageKey,
	}
}

func (ProductConverterImpl) ToEntity(model *ProductRedisModel) *domain.Product {
	if model == nil {
		return nil
	}
	return &domain.Product{
		ID:          model.ID,
		CategoryID:  model.CategoryID,
		Title:       model.Title,
		Slug:        model.Slug,
		Description: model.Description,
		Price:       model.Price,
		ImageKey:    model.ImageKey,
	}
}

func (c ProductConverterImpl) ToArrRedisModel(entities []domain.Product) []ProductRedisModel {
	result := make([]ProductRedisModel, 0, len(entities))
	for i := range entities {
		result = append(result, *c.ToRedisModel(&entities[i]))
	}
	return result
}
