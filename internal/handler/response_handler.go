package handler

import (
	"net/http"

	"github.com/GhaziTrueAlpha/Surveys/internal/logic"
	"github.com/GhaziTrueAlpha/Surveys/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResponseHandler 问卷完成记录接口
type ResponseHandler struct {
	responseLogic *logic.ResponseLogic
}

// NewResponseHandler 创建问卷完成记录接口
func NewResponseHandler(db *gorm.DB) *ResponseHandler {
	return &ResponseHandler{
		responseLogic: logic.NewResponseLogic(db),
	}
}

// CreateResponse 供应商提交问卷完成记录
func (h *ResponseHandler) CreateResponse(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.responseLogic.CreateResponse(user, req.SurveyID, req.RewardEarned)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetVendorResponses 供应商查看自己的完成记录
func (h *ResponseHandler) GetVendorResponses(c *gin.Context) {
	user := middleware.CurrentUser(c)

	responses, err := h.responseLogic.GetResponsesByVendor(user.ID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// GetSurveyResponses 查看某问卷的完成记录，仅管理员或问卷创建者
func (h *ResponseHandler) GetSurveyResponses(c *gin.Context) {
	user := middleware.CurrentUser(c)

	responses, err := h.responseLogic.GetResponsesBySurvey(c.Param("id"), user)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses)
}
