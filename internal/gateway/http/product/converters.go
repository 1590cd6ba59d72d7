package product

import "service/internal/entities"

func toDomain(resp *productResponse) *entities.Product {
	if resp == nil {
		return nil
	}

	return &entities.Product{
		ID:    resp.ID,
		Name:  resp.Name,
		Price: resp.Price,
		Stock: resp.Stock,
	}
}
