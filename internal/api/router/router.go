package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kgex/bigbbe/config"
	"github.com/kgex/bigbbe/internal/api/handler"
	"github.com/kgex/bigbbe/internal/api/middleware"
	"github.com/kgex/bigbbe/pkg/jwt"
	"github.com/kgex/bigbbe/pkg/redis"
)

const maxBodyBytes = 32 << 20 // multipart photo uploads included

// New assembles the gin engine. Route paths match what the existing
// frontend, reader devices and Discord bot already call.
func New(
	cfg *config.Config,
	h *handler.Handler,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	metrics := middleware.NewMetrics(promReg)

	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(&cfg.Server.CORS),
		middleware.BodyLimit(maxBodyBytes),
		metrics.Handler(),
	)

	authed := middleware.JWTAuth(jwtMgr, rdb)
	admin := middleware.AdminOnly()

	// ── operational ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})))

	// ── auth, public ──
	otpLimited := middleware.RateLimit(rdb, logger, 5, time.Minute)
	r.POST("/users/", h.Auth.Register)
	r.POST("/verify", otpLimited, h.Auth.Verify)
	r.POST("/token", middleware.RateLimit(rdb, logger, 10, time.Minute), h.Auth.Login)
	r.POST("/forgotpass", otpLimited, h.Auth.ForgotPassword)
	r.POST("/enterotp", otpLimited, h.Auth.EnterOTP)
	r.POST("/resetpassword", otpLimited, h.Auth.ResetPassword)

	// ── auth, token required ──
	r.POST("/logout", authed, h.Auth.Logout)
	r.POST("/changepassword", authed, h.Auth.ChangePassword)

	// ── users ──
	users := r.Group("/users", authed)
	{
		users.GET("/", admin, h.User.List)
		users.GET("/me", h.User.Me)
		users.GET("/search", admin, h.User.Search)
		users.PATCH("/discord", h.User.UpdateDiscord)
		users.GET("/:id", h.User.Get)
		users.DELETE("/:id", admin, h.User.Delete)

		users.POST("/:id/reports", h.Report.Create)
		users.GET("/:id/reports", h.Report.ListByUser)
		users.GET("/:id/reports/date", h.Report.ListByUserAndDate)

		users.POST("/:id/items", h.User.CreateItem)
		users.POST("/:id/grievance", h.User.CreateGrievance)
		users.GET("/:id/grievance", h.User.ListGrievances)
	}
	r.GET("/items/", authed, h.User.ListItems)
	r.PATCH("/updaterfid", authed, admin, h.User.UpdateRFID)

	// ── RFID attendance; clock endpoints are called by the reader device ──
	deviceLimited := middleware.RateLimit(rdb, logger, 60, time.Minute)
	r.POST("/attendance_in", deviceLimited, h.Attendance.ClockIn)
	r.PATCH("/attendance_out", deviceLimited, h.Attendance.ClockOut)
	r.GET("/attendance", authed, h.Attendance.ListAll)
	r.GET("/get_today_attendance", authed, h.Attendance.Today)
	r.GET("/get_previous_month_attendance", authed, h.Attendance.CurrentMonth)
	r.GET("/attendance/export", authed, admin, h.Attendance.Export)

	// ── QR attendance ──
	qr := r.Group("/qr_attendance", authed)
	{
		qr.POST("", h.QRAttendance.Post)
		qr.GET("", admin, h.QRAttendance.ListAll)
		qr.GET("/user", h.QRAttendance.ListMine)
		qr.DELETE("", admin, h.QRAttendance.DeleteAll)
	}

	// ── reports ──
	reports := r.Group("/reports", authed)
	{
		reports.GET("", admin, h.Report.ListAll)
		reports.GET("/:id", h.Report.Get)
		reports.PATCH("/:id", h.Report.Update)
	}

	// ── Discord bot paths; the bot authenticates with a service token ──
	discord := r.Group("/discord", authed)
	{
		discord.GET("/:username/reports", h.Report.ListByDiscord)
		discord.POST("/:username/reports", h.Report.CreateByDiscord)
	}

	// ── clients & projects ──
	clients := r.Group("/clients", authed)
	{
		clients.POST("", h.Client.Create)
		clients.GET("", h.Client.List)
		clients.GET("/:id", h.Client.Get)
		clients.DELETE("/:id", admin, h.Client.Delete)
		clients.POST("/:id/projects", h.Client.CreateProject)
		clients.GET("/:id/projects", h.Client.ListProjects)
	}
	projects := r.Group("/projects", authed)
	{
		projects.GET("", h.Client.ListAllProjects)
		projects.GET("/:id", h.Client.GetProject)
		projects.DELETE("/:id", admin, h.Client.DeleteProject)
	}

	// ── inventory, admin only ──
	inventory := r.Group("/inventory", authed, admin)
	{
		inventory.POST("", h.Inventory.Create)
		inventory.GET("", h.Inventory.List)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PATCH("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}

	return r
}
