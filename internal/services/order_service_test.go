package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"giftfinder/internal/models/request_models"
	"giftfinder/internal/models/response_models"
	"giftfinder/pkg/memcache"
	"giftfinder/pkg/utils"
)

func shippingDetails() request_models.ShippingRequest {
	return request_models.ShippingRequest{
		FullName:     "Ada Lovelace",
		AddressLine1: "1 Analytical Way",
		City:         "London",
		State:        "LDN",
		ZipCode:      "12345",
	}
}

func TestSubmitShippingRequiresSelectedGift(t *testing.T) {
	flow := memcache.NewFlowState()
	order := NewOrderService(&fakeBackend{}, loggedInSession(t), flow, zap.NewNop())

	_, err := order.SubmitShipping(context.Background(), shippingDetails())
	if !errors.Is(err, utils.ErrNoGiftSelected) {
		t.Errorf("err = %v, want ErrNoGiftSelected", err)
	}
}

func TestSubmitShippingStoresOrderDetails(t *testing.T) {
	backend := &fakeBackend{
		shippingOrder: &response_models.OrderDetails{
			Message:           "Order placed",
			ShippingID:        "SHIP-9",
			EstimatedDelivery: "2026-09-05",
		},
	}
	flow := memcache.NewFlowState()
	flow.SetSelectedGift(response_models.Gift{ID: "1", Name: "Puzzle"})
	order := NewOrderService(backend, loggedInSession(t), flow, zap.NewNop())

	got, err := order.SubmitShipping(context.Background(), shippingDetails())
	if err != nil {
		t.Fatalf("SubmitShipping: %v", err)
	}
	if got.ShippingID != "SHIP-9" {
		t.Errorf("order = %+v", got)
	}
	if backend.shippingToken != "tok-1" {
		t.Errorf("submitted with token %q", backend.shippingToken)
	}
	if backend.shippingDetails != shippingDetails() {
		t.Errorf("backend saw %+v", backend.shippingDetails)
	}

	stored, ok := flow.OrderDetails()
	if !ok || stored.ShippingID != "SHIP-9" {
		t.Errorf("flow order = %+v ok=%v", stored, ok)
	}
}

func TestSubmitShippingBackendFailure(t *testing.T) {
	backend := &fakeBackend{shippingErr: utils.ErrBackendUnavailable}
	flow := memcache.NewFlowState()
	flow.SetSelectedGift(response_models.Gift{ID: "1", Name: "Puzzle"})
	order := NewOrderService(backend, loggedInSession(t), flow, zap.NewNop())

	_, err := order.SubmitShipping(context.Background(), shippingDetails())
	if !errors.Is(err, utils.ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}
	if _, ok := flow.OrderDetails(); ok {
		t.Error("failed submit must not store order details")
	}
}

func TestSubmitShippingWithoutSession(t *testing.T) {
	flow := memcache.NewFlowState()
	flow.SetSelectedGift(response_models.Gift{ID: "1", Name: "Puzzle"})
	session, _ := newTestSession(t)
	order := NewOrderService(&fakeBackend{}, session, flow, zap.NewNop())

	_, err := order.SubmitShipping(context.Background(), shippingDetails())
	if !errors.Is(err, utils.ErrNotAuthenticated) {
		t.Errorf("err = %v, want ErrNotAuthenticated", err)
	}
}
