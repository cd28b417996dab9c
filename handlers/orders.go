package handlers

import (
	"net/http"
	"time"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/policy"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListOrders returns orders scoped by role: managers see every order,
// delivery crew see orders assigned to them, everyone else sees their own.
func ListOrders(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	query := config.DB.Preload("Items.MenuItem").Preload("DeliveryCrew")
	switch {
	case policy.IsManager(user):
		// no filter
	case policy.IsDeliveryCrew(user):
		query = query.Where("delivery_crew_id = ?", user.ID)
	default:
		query = query.Where("user_id = ?", user.ID)
	}

	var orders []models.Order
	query.Order("date desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// Checkout converts the caller's cart into an order with immutable item
// snapshots, then empties the cart. The whole sequence runs in one
// transaction: either the order, all its items and the cart deletion commit
// together, or nothing changes. Success is reported only after commit.
//
// Two concurrent checkouts by the same user may still each produce an order
// from the same cart; that race is a documented limitation of this layer.
func Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var cart []models.CartItem
	config.DB.Where("user_id = ?", userID).Find(&cart)
	if len(cart) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No items in cart"})
		return
	}

	var total float64
	for _, line := range cart {
		total += line.Price
	}

	order := models.Order{
		UserID: userID,
		Total:  total,
		Date:   time.Now(),
	}
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, line := range cart {
			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				Price:      line.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	config.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "order": order})
}

// GetOrder returns one order, owner only. Missing ids get 404; an existing
// order requested by anyone but its owner gets 401 — managers included, so
// the single-object policy stays owner-only across all roles.
func GetOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var order models.Order
	if err := config.DB.Preload("Items.MenuItem").Preload("DeliveryCrew").
		First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This order does not belong to you"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type AssignOrderRequest struct {
	DeliveryCrewID uint  `json:"delivery_crew_id" binding:"required"`
	Status         *bool `json:"status"`
}

// AssignOrder lets a manager assign a delivery crew member to an order and
// optionally flip its status. The assignee must belong to the delivery-crew
// group.
func AssignOrder(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}
	if !policy.IsManager(user) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Only managers can assign delivery crew"})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	crew, err := policy.LoadUser(config.DB, req.DeliveryCrewID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if !policy.IsDeliveryCrew(crew) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User is not in the delivery-crew group"})
		return
	}

	update := map[string]interface{}{"delivery_crew_id": crew.ID}
	if req.Status != nil {
		update["status"] = *req.Status
	}
	config.DB.Model(&order).Updates(update)

	c.JSON(http.StatusAccepted, gin.H{
		"message":  "Delivery crew assigned",
		"order_id": order.ID,
	})
}

// DeleteOrder removes an order (permission-gated)
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	config.DB.Where("order_id = ?", order.ID).Delete(&models.OrderItem{})
	config.DB.Delete(&order)
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
