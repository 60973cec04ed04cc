package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"staffhub/backend/config"
	"staffhub/backend/internal/api/handler"
	"staffhub/backend/internal/api/middleware"
	"staffhub/backend/internal/model"
	"staffhub/backend/pkg/jwt"
	"staffhub/backend/pkg/redis"
	"staffhub/backend/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
// 路径即对外契约，前端按原样拼接，不带版本前缀
func Setup(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	db *gorm.DB,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查：确认数据库可达 ──
	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			response.InternalError(c)
			return
		}
		if err := sqlDB.PingContext(c.Request.Context()); err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, gin.H{"status": "ok"})
	})

	// ── 认证模块（无需认证） ──
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
		auth.POST("/register", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Register)
	}

	// ── 需要认证的路由 ──
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		authorized.POST("/auth/logout", h.Auth.Logout)
		authorized.GET("/auth/me", h.User.GetCurrentUser)

		// 员工名单（仅经理）
		authorized.GET("/employees", middleware.RoleAuth(model.RoleManager), h.User.ListEmployees)

		// 任务模块
		tasks := authorized.Group("/tasks")
		{
			tasks.GET("", h.Task.List)
			tasks.PATCH("", h.Task.UpdateStatus)
			tasks.POST("/assign", middleware.RoleAuth(model.RoleManager), h.Task.Assign)
		}

		// 请假模块
		leave := authorized.Group("/leave-requests")
		{
			leave.GET("", middleware.RoleAuth(model.RoleEmployee), h.Leave.ListOwn)
			leave.POST("", h.Leave.Submit)
			leave.GET("/manage", middleware.RoleAuth(model.RoleManager), h.Leave.ListDepartment)
			leave.PATCH("/manage", middleware.RoleAuth(model.RoleManager), h.Leave.Review)
			leave.GET("/calendar", middleware.RoleAuth(model.RoleManager), h.Leave.Calendar)
		}

		// 负载预测（仅经理，随机占位实现）
		authorized.GET("/workload/predict", middleware.RoleAuth(model.RoleManager), h.Workload.Predict)

		// 导出模块（仅经理）
		authorized.GET("/export/tasks", middleware.RoleAuth(model.RoleManager), h.Export.ExportTasks)
	}

	return r
}
