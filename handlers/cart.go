package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	MenuItemID uint     `json:"menuitem_id" binding:"required"`
	UnitPrice  *float64 `json:"unit_price" binding:"required,gte=0"`
	Quantity   *int     `json:"quantity" binding:"required,gt=0"`
}

// GetCart lists the calling user's cart lines. The filter on the
// authenticated user id is unconditional, so one user can never read
// another's lines.
func GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var items []models.CartItem
	config.DB.Preload("MenuItem.Category").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&items)

	var total float64
	for _, it := range items {
		total += it.Price
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "total": total, "cart": items})
}

// AddToCart appends a cart line for the calling user. The line price is
// always quantity × unit_price computed here; any client-supplied price is
// ignored. Repeated adds of the same menu item create separate lines.
func AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menuItem models.MenuItem
	if err := config.DB.First(&menuItem, req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item does not exist"})
		return
	}

	item := models.CartItem{
		UserID:     userID,
		MenuItemID: req.MenuItemID,
		UnitPrice:  *req.UnitPrice,
		Quantity:   *req.Quantity,
		Price:      float64(*req.Quantity) * *req.UnitPrice,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	config.DB.Preload("MenuItem.Category").First(&item, item.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart", "cart_item": item})
}

// ClearCart deletes every cart line belonging to the calling user. This is
// an all-or-nothing reset, not a per-line delete.
func ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	config.DB.Where("user_id = ?", userID).Delete(&models.CartItem{})
	c.Status(http.StatusNoContent)
}
