package memcache

import (
	"sync"

	"giftfinder/internal/models/response_models"
)

// FlowStore holds the scratch state threaded between flow steps: the gift
// picked on the recommendations page and the order details returned by the
// shipping submission. In-memory only; it must not be persisted, so a
// restart clears it the way a full page reload would.
type FlowStore interface {
	SetSelectedGift(gift response_models.Gift)
	SelectedGift() (response_models.Gift, bool)
	SetOrderDetails(order response_models.OrderDetails)
	OrderDetails() (response_models.OrderDetails, bool)
}

type FlowState struct {
	mu    sync.RWMutex
	gift  *response_models.Gift
	order *response_models.OrderDetails
}

func NewFlowState() *FlowState {
	return &FlowState{}
}

func (s *FlowState) SetSelectedGift(gift response_models.Gift) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gift = &gift
}

func (s *FlowState) SelectedGift() (response_models.Gift, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.gift == nil {
		return response_models.Gift{}, false
	}
	return *s.gift, true
}

func (s *FlowState) SetOrderDetails(order response_models.OrderDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = &order
}

func (s *FlowState) OrderDetails() (response_models.OrderDetails, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.order == nil {
		return response_models.OrderDetails{}, false
	}
	return *s.order, true
}
