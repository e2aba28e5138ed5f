package services

import (
	"context"

	"go.uber.org/zap"

	"giftfinder/internal/models/request_models"
	"giftfinder/internal/models/response_models"
	"giftfinder/internal/repositories"
	"giftfinder/pkg/memcache"
	"giftfinder/pkg/utils"
)

// OrderServiceInterface submits the shipping form and keeps the resulting
// order details in flow state for the confirmation page.
type OrderServiceInterface interface {
	SubmitShipping(ctx context.Context, details request_models.ShippingRequest) (response_models.OrderDetails, error)
}

type OrderService struct {
	backendRepo repositories.BackendRepository
	session     SessionServiceInterface
	flow        memcache.FlowStore
	logger      *zap.Logger
}

func NewOrderService(
	backendRepo repositories.BackendRepository,
	session SessionServiceInterface,
	flow memcache.FlowStore,
	logger *zap.Logger,
) OrderServiceInterface {
	return &OrderService{
		backendRepo: backendRepo,
		session:     session,
		flow:        flow,
		logger:      logger,
	}
}

func (s *OrderService) SubmitShipping(ctx context.Context, details request_models.ShippingRequest) (response_models.OrderDetails, error) {
	if _, ok := s.flow.SelectedGift(); !ok {
		return response_models.OrderDetails{}, utils.ErrNoGiftSelected
	}

	token := s.session.Token()
	if token == "" {
		return response_models.OrderDetails{}, utils.ErrNotAuthenticated
	}

	order, err := s.backendRepo.SubmitShipping(ctx, token, details)
	if err != nil {
		s.logger.Warn("shipping submission failed", zap.Error(err))
		return response_models.OrderDetails{}, err
	}

	s.flow.SetOrderDetails(*order)
	s.logger.Info("order placed", zap.String("shipping_id", order.ShippingID))
	return *order, nil
}
