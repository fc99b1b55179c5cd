package handler

import (
	"net/http"

	"github.com/GhaziTrueAlpha/Surveys/internal/config"
	"github.com/GhaziTrueAlpha/Surveys/internal/logic"
	"github.com/GhaziTrueAlpha/Surveys/internal/middleware"
	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"github.com/gin-gonic/gin"
)

// AuthHandler 认证接口
type AuthHandler struct {
	authLogic *logic.AuthLogic
	session   config.SessionConfig
}

// NewAuthHandler 创建认证接口
func NewAuthHandler(authLogic *logic.AuthLogic, sessionCfg config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authLogic: authLogic,
		session:   sessionCfg,
	}
}

// Signup 注册，新账号等待管理员审批
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authLogic.Signup(logic.SignupInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Role:          model.Role(req.Role),
		CompanyName:   req.CompanyName,
		AccountEmail:  req.AccountEmail,
		GST:           req.GST,
		City:          req.City,
		Website:       req.Website,
		ContactNumber: req.ContactNumber,
		HSNSAC:        req.HSNSAC,
		Country:       req.Country,
		Region:        req.Region,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully. Awaiting admin approval.",
		"userId":  user.ID,
	})
}

// Signin 登录，校验凭证并下发会话cookie
func (h *AuthHandler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authLogic.VerifyCredentials(req.Email, req.Password)
	if err != nil {
		HandleError(c, err)
		return
	}

	token, err := h.authLogic.CreateSession(user.ID)
	if err != nil {
		HandleError(c, err)
		return
	}

	maxAge := int(h.authLogic.SessionTTL().Seconds())
	c.SetCookie(h.session.CookieName, token, maxAge, "/", "", h.session.Secure, true)

	c.JSON(http.StatusOK, UserProjection{
		ID:       user.ID,
		Email:    user.Email,
		Role:     user.Role,
		Name:     user.Name,
		Category: user.Category,
	})
}

// Signout 注销，删除会话并清除cookie
func (h *AuthHandler) Signout(c *gin.Context) {
	token, err := c.Cookie(h.session.CookieName)
	if err == nil && token != "" {
		h.authLogic.DeleteSession(token)
	}
	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.session.Secure, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me 获取当前登录用户
func (h *AuthHandler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, UserProjection{
		ID:       user.ID,
		Email:    user.Email,
		Role:     user.Role,
		Name:     user.Name,
		Category: user.Category,
		Flag:     user.Flag,
	})
}
