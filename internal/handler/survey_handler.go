package handler

import (
	"net/http"

	"github.com/GhaziTrueAlpha/Surveys/internal/logic"
	"github.com/GhaziTrueAlpha/Surveys/internal/middleware"
	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SurveyHandler 问卷接口
type SurveyHandler struct {
	surveyLogic *logic.SurveyLogic
}

// NewSurveyHandler 创建问卷接口
func NewSurveyHandler(db *gorm.DB, origin string) *SurveyHandler {
	return &SurveyHandler{
		surveyLogic: logic.NewSurveyLogic(db, origin),
	}
}

// CreateSurvey 创建问卷，仅管理员和客户可操作
func (h *SurveyHandler) CreateSurvey(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user.Role != model.RoleAdmin && user.Role != model.RoleClient {
		ErrorResponse(c, http.StatusForbidden, logic.ErrForbidden.Error())
		return
	}

	var req CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	survey := req.ToModel()
	if err := h.surveyLogic.CreateSurvey(user, survey); err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, survey)
}

// GetSurveys 按角色范围获取问卷列表
func (h *SurveyHandler) GetSurveys(c *gin.Context) {
	user := middleware.CurrentUser(c)
	category := c.Query("category")

	surveys, err := h.surveyLogic.GetSurveysFor(user, category)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, surveys)
}

// GetSurvey 获取单个问卷
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	survey, err := h.surveyLogic.GetSurvey(c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, survey)
}

// GetSurveyByUniqueID 按问卷编号获取问卷，验证流程使用
func (h *SurveyHandler) GetSurveyByUniqueID(c *gin.Context) {
	survey, err := h.surveyLogic.GetSurveyByUniqueID(c.Param("uid"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, survey)
}

// UpdateSurvey 更新问卷，仅管理员或原创建者可操作
func (h *SurveyHandler) UpdateSurvey(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req UpdateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	survey, err := h.surveyLogic.UpdateSurvey(c.Param("id"), user, req.ToUpdate())
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, survey)
}

// DeleteSurvey 删除问卷，仅管理员或原创建者可操作
func (h *SurveyHandler) DeleteSurvey(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.surveyLogic.DeleteSurvey(c.Param("id"), user); err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Survey deleted successfully"})
}

// Marketplace 供应商市场视图：可接问卷+搜索+排序
func (h *SurveyHandler) Marketplace(c *gin.Context) {
	user := middleware.CurrentUser(c)
	search := c.Query("search")
	sortOption := c.DefaultQuery("sort", logic.SortNewest)

	surveys, err := h.surveyLogic.Marketplace(user, search, sortOption)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, surveys)
}
