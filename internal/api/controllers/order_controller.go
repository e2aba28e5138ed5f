package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"giftfinder/internal/models/request_models"
	"giftfinder/internal/services"
	"giftfinder/pkg/memcache"
)

const shippingSubmitError = "An error occurred while processing your order. Please try again."

type OrderController struct {
	orders services.OrderServiceInterface
	flow   memcache.FlowStore
	logger *zap.Logger
}

func NewOrderController(
	orders services.OrderServiceInterface,
	flow memcache.FlowStore,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		orders: orders,
		flow:   flow,
		logger: logger,
	}
}

func (o *OrderController) ShowShipping(c *gin.Context) {
	gift, _ := o.flow.SelectedGift()
	c.HTML(http.StatusOK, "shipping.html", gin.H{
		"Authenticated": true,
		"Gift":          gift,
		"Form":          request_models.ShippingRequest{},
	})
}

// SubmitShipping posts the form to the backend. A failure re-renders the
// form with the entered values kept so the user can retry.
func (o *OrderController) SubmitShipping(c *gin.Context) {
	gift, _ := o.flow.SelectedGift()

	var req request_models.ShippingRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "shipping.html", gin.H{
			"Authenticated": true,
			"Gift":          gift,
			"Form":          req,
			"Error":         "All fields are required",
		})
		return
	}

	if _, err := o.orders.SubmitShipping(c.Request.Context(), req); err != nil {
		c.HTML(http.StatusOK, "shipping.html", gin.H{
			"Authenticated": true,
			"Gift":          gift,
			"Form":          req,
			"Error":         shippingSubmitError,
		})
		return
	}

	c.Redirect(http.StatusFound, "/confirmation")
}

// ShowConfirmation is a pure read of the selected gift and stored order;
// it performs no network calls.
func (o *OrderController) ShowConfirmation(c *gin.Context) {
	gift, _ := o.flow.SelectedGift()
	order, _ := o.flow.OrderDetails()
	c.HTML(http.StatusOK, "confirmation.html", gin.H{
		"Authenticated": true,
		"Gift":          gift,
		"Order":         order,
	})
}
