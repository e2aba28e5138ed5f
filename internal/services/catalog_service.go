package services

import (
	"sync"

	"go.uber.org/zap"

	"giftfinder/internal/models/response_models"
	"giftfinder/pkg/memcache"
	"giftfinder/pkg/utils"
)

// CatalogServiceInterface owns the displayed recommendation set: the union
// of the last survey result and every successfully extracted chat gift,
// deduplicated by name, grouped by category in first-seen order.
type CatalogServiceInterface interface {
	SetInitial(gifts []response_models.Gift)
	Grouped() []response_models.CategoryGroup
	Toggle(category string)
	Merge(gifts []response_models.Gift) int
	Select(giftID string) (response_models.Gift, error)
	HasGifts() bool
}

type CatalogService struct {
	flow   memcache.FlowStore
	logger *zap.Logger

	mu       sync.RWMutex
	gifts    []response_models.Gift
	expanded []string
}

func NewCatalogService(flow memcache.FlowStore, logger *zap.Logger) CatalogServiceInterface {
	return &CatalogService{
		flow:   flow,
		logger: logger,
	}
}

// SetInitial replaces the whole set with a fresh survey result and expands
// the first gift's category so the page opens with something visible.
func (c *CatalogService) SetInitial(gifts []response_models.Gift) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gifts = append([]response_models.Gift(nil), gifts...)
	c.expanded = nil
	if len(gifts) > 0 && gifts[0].Category != "" {
		c.expanded = []string{gifts[0].Category}
	}
}

func (c *CatalogService) Grouped() []response_models.CategoryGroup {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var order []string
	byCategory := make(map[string][]response_models.Gift)
	for _, g := range c.gifts {
		category := g.Category
		if category == "" {
			category = "Other"
		}
		if _, seen := byCategory[category]; !seen {
			order = append(order, category)
		}
		byCategory[category] = append(byCategory[category], g)
	}

	groups := make([]response_models.CategoryGroup, 0, len(order))
	for _, category := range order {
		groups = append(groups, response_models.CategoryGroup{
			Category: category,
			Gifts:    byCategory[category],
			Expanded: contains(c.expanded, category),
		})
	}
	return groups
}

func (c *CatalogService) Toggle(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, cat := range c.expanded {
		if cat == category {
			c.expanded = append(c.expanded[:i], c.expanded[i+1:]...)
			return
		}
	}
	c.expanded = append(c.expanded, category)
}

// Merge appends extracted gifts whose name is not already displayed,
// preserving their relative order, and expands the category of each
// survivor. Returns how many gifts were actually added.
func (c *CatalogService) Merge(gifts []response_models.Gift) int {
	if len(gifts) == 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	existing := make(map[string]struct{}, len(c.gifts))
	for _, g := range c.gifts {
		existing[g.Name] = struct{}{}
	}

	added := 0
	for _, g := range gifts {
		if _, dup := existing[g.Name]; dup {
			continue
		}
		existing[g.Name] = struct{}{}
		c.gifts = append(c.gifts, g)
		added++
		if g.Category != "" && !contains(c.expanded, g.Category) {
			c.expanded = append(c.expanded, g.Category)
		}
	}

	if added > 0 {
		c.logger.Info("merged chat recommendations", zap.Int("added", added))
	}
	return added
}

// Select stores the picked gift as the flow's selected gift.
func (c *CatalogService) Select(giftID string) (response_models.Gift, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, g := range c.gifts {
		if g.ID == giftID {
			c.flow.SetSelectedGift(g)
			return g, nil
		}
	}
	return response_models.Gift{}, utils.ErrGiftNotFound
}

func (c *CatalogService) HasGifts() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.gifts) > 0
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
