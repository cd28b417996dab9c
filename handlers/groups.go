package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type GroupMemberRequest struct {
	Username string `json:"username" binding:"required"`
}

// ListGroupUsers returns the members of the named group (permission-gated)
func ListGroupUsers(c *gin.Context) {
	var group models.Group
	if err := config.DB.Where("name = ?", c.Param("name")).First(&group).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}

	var users []models.User
	config.DB.Preload("Groups").
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Where("user_groups.group_id = ?", group.ID).
		Find(&users)

	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// AddGroupUser attaches the user named in the body to the named group
// (permission-gated)
func AddGroupUser(c *gin.Context) {
	user, group, ok := resolveMember(c)
	if !ok {
		return
	}
	if err := config.DB.Model(user).Association("Groups").Append(group); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update group membership"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User added to group successfully"})
}

// RemoveGroupUser detaches the user named in the body from the named group
// (permission-gated)
func RemoveGroupUser(c *gin.Context) {
	user, group, ok := resolveMember(c)
	if !ok {
		return
	}
	if err := config.DB.Model(user).Association("Groups").Delete(group); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update group membership"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User removed from group successfully"})
}

// resolveMember looks up the body username and the path group, writing the
// 400/404 response itself when either is missing.
func resolveMember(c *gin.Context) (*models.User, *models.Group, bool) {
	var req GroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}

	var user models.User
	if err := config.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return nil, nil, false
	}
	var group models.Group
	if err := config.DB.Where("name = ?", c.Param("name")).First(&group).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return nil, nil, false
	}
	return &user, &group, true
}
