package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ledger/api"
	"ledger/config"
	_ "ledger/docs"
	"ledger/middleware"
	"ledger/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// 认证相关路由（无需登录）
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		// 需要 JWT 认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			// 五类账本记录。查看对所有登录用户开放，
			// 新增需要 manager/admin，修改与删除仅 admin。
			incomeHandler := api.NewIncomeHandler()
			incomes := authorized.Group("/incomes")
			{
				incomes.GET("", incomeHandler.List)
				incomes.POST("", middleware.RequireMutate(service.ActionCreate), incomeHandler.Create)
				incomes.PUT("/:id", middleware.RequireMutate(service.ActionUpdate), incomeHandler.Update)
				incomes.DELETE("/:id", middleware.RequireMutate(service.ActionDelete), incomeHandler.Delete)
			}

			expenseHandler := api.NewExpenseHandler()
			expenses := authorized.Group("/expenses")
			{
				expenses.GET("", expenseHandler.List)
				expenses.POST("", middleware.RequireMutate(service.ActionCreate), expenseHandler.Create)
				expenses.PUT("/:id", middleware.RequireMutate(service.ActionUpdate), expenseHandler.Update)
				expenses.DELETE("/:id", middleware.RequireMutate(service.ActionDelete), expenseHandler.Delete)
			}

			toGiveHandler := api.NewToGiveHandler()
			toGive := authorized.Group("/to-give")
			{
				toGive.GET("", toGiveHandler.List)
				toGive.POST("", middleware.RequireMutate(service.ActionCreate), toGiveHandler.Create)
				toGive.PUT("/:id", middleware.RequireMutate(service.ActionUpdate), toGiveHandler.Update)
				toGive.DELETE("/:id", middleware.RequireMutate(service.ActionDelete), toGiveHandler.Delete)
			}

			debtHandler := api.NewDebtHandler()
			debts := authorized.Group("/debts")
			{
				debts.GET("", debtHandler.List)
				debts.POST("", middleware.RequireMutate(service.ActionCreate), debtHandler.Create)
				debts.PUT("/:id", middleware.RequireMutate(service.ActionUpdate), debtHandler.Update)
				debts.DELETE("/:id", middleware.RequireMutate(service.ActionDelete), debtHandler.Delete)
			}

			stockHandler := api.NewStockHandler()
			stock := authorized.Group("/stock")
			{
				stock.GET("", stockHandler.List)
				stock.POST("", middleware.RequireMutate(service.ActionCreate), stockHandler.Create)
				stock.PUT("/:id", middleware.RequireMutate(service.ActionUpdate), stockHandler.Update)
				stock.DELETE("/:id", middleware.RequireMutate(service.ActionDelete), stockHandler.Delete)
			}

			// 看板与报表
			summaryHandler := api.NewSummaryHandler()
			authorized.GET("/dashboard", summaryHandler.Dashboard)
			authorized.GET("/report", summaryHandler.Report)

			// 导出
			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}

			// 用户管理（仅 admin）
			userHandler := api.NewUserHandler()
			users := authorized.Group("/users")
			users.Use(middleware.RequireAdmin())
			{
				users.GET("", userHandler.ListUsers)
				users.PUT("/:id/role", userHandler.UpdateUserRole)
				users.PUT("/:id/status", userHandler.UpdateUserStatus)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
