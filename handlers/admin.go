package handlers

import (
	"net/http"

	"akplaw/models"
	"akplaw/services/user"
	"akplaw/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the back-office account management endpoints.
type AdminHandler struct {
	UserService user.UserService
}

// ListUsersHandler handles GET /api/admin/users, optionally filtered by
// ?role=.
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	var (
		users []models.User
		err   error
	)
	if role := c.Query("role"); role != "" {
		users, err = h.UserService.GetUsersByRole(role)
	} else {
		users, err = h.UserService.GetAllUsers()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserHandler handles GET /api/admin/users/:id.
func (h *AdminHandler) GetUserHandler(c *gin.Context) {
	usr, err := h.UserService.GetUserByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ChangeRoleHandler handles PUT /api/admin/users/:id/role. Downgrading a
// premier client also clears their assigned advocate.
func (h *AdminHandler) ChangeRoleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.UserService.ChangeRole(c.Param("id"), req.Role)
	if err != nil {
		logger.Error("Role change failed", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// AssignAdvocateHandler handles PUT /api/admin/users/:id/advocate.
func (h *AdminHandler) AssignAdvocateHandler(c *gin.Context) {
	var adv models.AssignedAdvocate
	if err := c.ShouldBindJSON(&adv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.UserService.AssignAdvocate(c.Param("id"), adv)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// ClearAdvocateHandler handles DELETE /api/admin/users/:id/advocate.
func (h *AdminHandler) ClearAdvocateHandler(c *gin.Context) {
	usr, err := h.UserService.ClearAdvocate(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.UserService.DeleteUser(id); err != nil {
		logger.Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
