// file: routes/router.go
package routes

import (
	"net/http"

	"github.com/Julius10-hub/UEB/config"
	"github.com/Julius10-hub/UEB/controllers"
	"github.com/Julius10-hub/UEB/middlewares"
	"github.com/Julius10-hub/UEB/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     config.C.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	// 浏览器不接受通配符来源搭配凭证，通配符配置下改走纯 Bearer 认证
	for _, origin := range corsConfig.AllowOrigins {
		if origin == "*" {
			corsConfig.AllowCredentials = false
			break
		}
	}
	r.Use(cors.New(corsConfig))

	// 所有路由统一先解析身份，具体接口再按角色设卡
	r.Use(middlewares.ResolveIdentity())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", controllers.Register)
			authRoutes.POST("/login", controllers.Login)
			authRoutes.POST("/logout", controllers.Logout)
			authRoutes.GET("/me", controllers.GetMe)
			authRoutes.GET("/profile", middlewares.LoginRequired(), controllers.GetProfile)
			authRoutes.PUT("/profile", middlewares.LoginRequired(), controllers.UpdateProfile)
		}

		schoolRoutes := api.Group("/schools")
		{
			schoolRoutes.GET("", controllers.GetSchools)
			schoolRoutes.GET("/categories", controllers.GetSchoolCategories)
			schoolRoutes.GET("/:id", controllers.GetSchoolDetail)
			schoolRoutes.POST("/:id/rate", middlewares.LoginRequired(), controllers.RateSchool)
			schoolRoutes.POST("", middlewares.AdminRequired(), controllers.CreateSchool)
			schoolRoutes.PUT("/:id", middlewares.AdminRequired(), controllers.UpdateSchool)
			schoolRoutes.DELETE("/:id", middlewares.AdminRequired(), controllers.DeleteSchool)
		}

		eventRoutes := api.Group("/events")
		{
			eventRoutes.GET("", controllers.GetEvents)
			eventRoutes.GET("/:id", controllers.GetEventDetail)
			eventRoutes.POST("", middlewares.AdminRequired(), controllers.CreateEvent)
			eventRoutes.PUT("/:id", middlewares.AdminRequired(), controllers.UpdateEvent)
			eventRoutes.DELETE("/:id", middlewares.AdminRequired(), controllers.DeleteEvent)
		}

		jobRoutes := api.Group("/jobs")
		{
			jobRoutes.GET("", controllers.GetJobs)
			jobRoutes.GET("/:id", controllers.GetJobDetail)
			jobRoutes.POST("", middlewares.AdminRequired(), controllers.CreateJob)
			jobRoutes.PUT("/:id", middlewares.AdminRequired(), controllers.UpdateJob)
			jobRoutes.DELETE("/:id", middlewares.AdminRequired(), controllers.DeleteJob)
		}

		bursaryRoutes := api.Group("/bursaries")
		{
			bursaryRoutes.GET("", controllers.GetBursaries)
			bursaryRoutes.GET("/:id", controllers.GetBursaryDetail)
			bursaryRoutes.POST("", middlewares.AdminRequired(), controllers.CreateBursary)
			bursaryRoutes.PUT("/:id", middlewares.AdminRequired(), controllers.UpdateBursary)
			bursaryRoutes.DELETE("/:id", middlewares.AdminRequired(), controllers.DeleteBursary)
		}

		agentRoutes := api.Group("/agents")
		{
			agentRoutes.GET("", controllers.GetAgents)
			agentRoutes.GET("/promo/:code", controllers.GetAgentByPromo)
			agentRoutes.GET("/:id", controllers.GetAgentDetail)
			agentRoutes.POST("", middlewares.AdminRequired(), controllers.CreateAgent)
			agentRoutes.PUT("/:id", middlewares.AdminRequired(), controllers.UpdateAgent)
			agentRoutes.DELETE("/:id", middlewares.AdminRequired(), controllers.DeleteAgent)
			// 外部报名系统回写转介结果
			agentRoutes.POST("/:id/referral", middlewares.SystemsRequired(), controllers.RecordAgentReferral)
		}

		paperRoutes := api.Group("/past-papers")
		{
			paperRoutes.GET("", controllers.GetPastPapers)
			paperRoutes.GET("/subjects", controllers.GetPastPaperSubjects)
			paperRoutes.GET("/:id", controllers.GetPastPaperDetail)
			paperRoutes.POST("/:id/download", middlewares.LoginRequired(), controllers.DownloadPastPaper)
			paperRoutes.POST("/:id/rate", middlewares.LoginRequired(), controllers.RatePastPaper)
			paperRoutes.POST("", middlewares.AdminRequired(), controllers.CreatePastPaper)
			paperRoutes.PUT("/:id", middlewares.AdminRequired(), controllers.UpdatePastPaper)
			paperRoutes.DELETE("/:id", middlewares.AdminRequired(), controllers.DeletePastPaper)
		}

		suggestionRoutes := api.Group("/suggestions")
		{
			suggestionRoutes.POST("", controllers.CreateSuggestion)
			suggestionRoutes.GET("", middlewares.RoleRequired(models.RoleAdmin, models.RoleSystems), controllers.GetSuggestions)
			suggestionRoutes.GET("/:id", middlewares.RoleRequired(models.RoleAdmin, models.RoleSystems), controllers.GetSuggestionDetail)
			suggestionRoutes.PUT("/:id", middlewares.AdminRequired(), controllers.UpdateSuggestion)
			suggestionRoutes.DELETE("/:id", middlewares.AdminRequired(), controllers.DeleteSuggestion)
		}

		statsRoutes := api.Group("/stats")
		{
			statsRoutes.GET("", controllers.GetPlatformStats)
			statsRoutes.GET("/categories", controllers.GetCategoryStats)
		}
	}

	return r
}
