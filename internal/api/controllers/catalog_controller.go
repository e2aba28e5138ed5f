package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"giftfinder/internal/models/request_models"
	"giftfinder/internal/services"
	"giftfinder/pkg/utils"
)

type CatalogController struct {
	catalog services.CatalogServiceInterface
	chat    services.ChatServiceInterface
	logger  *zap.Logger
}

func NewCatalogController(
	catalog services.CatalogServiceInterface,
	chat services.ChatServiceInterface,
	logger *zap.Logger,
) *CatalogController {
	return &CatalogController{
		catalog: catalog,
		chat:    chat,
		logger:  logger,
	}
}

func (r *CatalogController) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "recommendations.html", gin.H{
		"Authenticated": true,
		"Groups":        r.catalog.Grouped(),
		"HasGifts":      r.catalog.HasGifts(),
		"Messages":      r.chat.Messages(),
	})
}

func (r *CatalogController) Toggle(c *gin.Context) {
	if category := c.PostForm("category"); category != "" {
		r.catalog.Toggle(category)
	}
	c.Redirect(http.StatusFound, "/recommendations")
}

// Select stores the chosen gift and moves the flow on to shipping.
func (r *CatalogController) Select(c *gin.Context) {
	giftID := c.PostForm("gift_id")
	if _, err := r.catalog.Select(giftID); err != nil {
		if errors.Is(err, utils.ErrGiftNotFound) {
			r.logger.Warn("select of unknown gift", zap.String("gift_id", giftID))
		}
		c.Redirect(http.StatusFound, "/recommendations")
		return
	}
	c.Redirect(http.StatusFound, "/shipping")
}

// ChatMessage is the JSON endpoint behind the assistant widget.
func (r *CatalogController) ChatMessage(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	reply, err := r.chat.Send(c.Request.Context(), req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Message processed")
}
