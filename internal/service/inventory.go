package service

import (
	"context"

	"rentops-backend/internal/domain"
	"rentops-backend/internal/repository"
)

type inventoryService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewInventoryService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) InventoryService {
	return &inventoryService{productRepo: productRepo, orderRepo: orderRepo}
}

// Availability recomputes a product's rented quantity from the active order
// line items on every call. There is no stored rented counter to drift out
// of sync and no reconciliation to run.
func (s *inventoryService) Availability(ctx context.Context, productID string) (*domain.ProductAvailability, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	rented, err := s.orderRepo.RentedQuantity(ctx, productID)
	if err != nil {
		return nil, err
	}
	return &domain.ProductAvailability{
		ProductID:      productID,
		OwnedQuantity:  product.Quantity,
		RentedQuantity: rented,
		Available:      product.Quantity - rented,
	}, nil
}
