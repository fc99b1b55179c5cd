package handler

import (
	"net/http"

	"github.com/GhaziTrueAlpha/Surveys/internal/logic"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserHandler 账号管理接口，仅管理员可用
type UserHandler struct {
	userLogic *logic.UserLogic
}

// NewUserHandler 创建账号管理接口
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{
		userLogic: logic.NewUserLogic(db),
	}
}

// GetUsers 按角色和审批状态筛选账号列表
func (h *UserHandler) GetUsers(c *gin.Context) {
	role := c.Query("role")
	flag := c.Query("flag")

	users, err := h.userLogic.GetUsers(role, flag)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// UpdateUser 更新账号（审批、分配类目和客户编码）
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userLogic.UpdateUser(id, logic.UserUpdate{
		Flag:     req.Flag,
		Category: req.Category,
		UniqueID: req.UniqueID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
