package router

import (
	"time"

	"github.com/GhaziTrueAlpha/Surveys/internal/config"
	"github.com/GhaziTrueAlpha/Surveys/internal/handler"
	"github.com/GhaziTrueAlpha/Surveys/internal/logic"
	"github.com/GhaziTrueAlpha/Surveys/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	authLogic := logic.NewAuthLogic(db, time.Duration(cfg.Session.TTLHours)*time.Hour)
	authMiddleware := middleware.NewAuth(authLogic, cfg.Session.CookieName)
	r.Use(authMiddleware.Identify())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "survey-marketplace",
		})
	})

	// market link验证跳转
	verifyHandler := handler.NewVerifyHandler(db, cfg.Server.Origin)
	r.GET("/survey/verify/:uid", verifyHandler.Verify)

	api := r.Group("/api")
	{
		// 认证相关路由
		authHandler := handler.NewAuthHandler(authLogic, cfg.Session)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/signin", authHandler.Signin)
			auth.POST("/signout", authHandler.Signout)
			auth.GET("/me", authHandler.Me)
		}

		// 账号管理路由，仅管理员
		userHandler := handler.NewUserHandler(db)
		users := api.Group("/users", middleware.RequireAdmin())
		{
			users.GET("", userHandler.GetUsers)
			users.PATCH("/:id", userHandler.UpdateUser)
		}

		// 问卷相关路由
		surveyHandler := handler.NewSurveyHandler(db, cfg.Server.Origin)
		surveys := api.Group("/surveys", middleware.RequireUser())
		{
			surveys.POST("", surveyHandler.CreateSurvey)
			surveys.GET("", surveyHandler.GetSurveys)
			surveys.GET("/marketplace", middleware.RequireVendor(), surveyHandler.Marketplace)
			surveys.GET("/unique/:uid", surveyHandler.GetSurveyByUniqueID)
			surveys.GET("/:id", surveyHandler.GetSurvey)
			surveys.PATCH("/:id", surveyHandler.UpdateSurvey)
			surveys.DELETE("/:id", surveyHandler.DeleteSurvey)
		}

		// 问卷完成记录路由
		responseHandler := handler.NewResponseHandler(db)
		responses := api.Group("/survey-responses")
		{
			responses.POST("", middleware.RequireVendor(), responseHandler.CreateResponse)
			responses.GET("/vendor", middleware.RequireVendor(), responseHandler.GetVendorResponses)
			responses.GET("/survey/:id", middleware.RequireUser(), responseHandler.GetSurveyResponses)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
