package handler

import (
	"net/http"
	"net/url"

	"github.com/GhaziTrueAlpha/Surveys/internal/logic"
	"github.com/GhaziTrueAlpha/Surveys/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// 平台级安全违规页，类目不匹配时跳转到这里而非问卷自带的security_redirect
const securityPage = "/survey/security"

// VerifyHandler market link验证跳转接口
type VerifyHandler struct {
	surveyLogic *logic.SurveyLogic
}

// NewVerifyHandler 创建验证跳转接口
func NewVerifyHandler(db *gorm.DB, origin string) *VerifyHandler {
	return &VerifyHandler{
		surveyLogic: logic.NewSurveyLogic(db, origin),
	}
}

// Verify 供应商访问market link：
// 问卷存在 → 已登录 → 是供应商 → 类目匹配 → 问卷激活，全部通过则302到问卷外链。
// 未登录时302到登录页并携带next参数，登录成功后由前端跳回。
func (h *VerifyHandler) Verify(c *gin.Context) {
	uniqueID := c.Param("uid")
	user := middleware.CurrentUser(c)

	outcome, survey, err := h.surveyLogic.Verify(uniqueID, user)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch outcome {
	case logic.VerifySigninRequired:
		next := url.QueryEscape("/survey/verify/" + uniqueID)
		c.Redirect(http.StatusFound, "/signin?next="+next)
	case logic.VerifySecurityViolation:
		c.Redirect(http.StatusFound, securityPage)
	default:
		c.Redirect(http.StatusFound, survey.SurveyLink)
	}
}
