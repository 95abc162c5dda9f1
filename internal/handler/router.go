package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/handler/api"
	"booking-engine/internal/handler/middleware"
	"booking-engine/internal/infra/telemetry"
	"booking-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers mounted by NewRouter.
type Handlers struct {
	fx.In

	Auth       *api.AuthHandler
	Room       *api.RoomHandler
	DiningRoom *api.DiningRoomHandler
	Restaurant *api.RestaurantHandler
	Health     *api.HealthHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter, metrics *telemetry.Metrics) {
	setupMiddleware(engine, cfg, logger, metrics)
	setupRoutes(engine, h, authMiddleware, limiter, metrics)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.TracingMiddleware())
	engine.Use(middleware.MetricsMiddleware(metrics))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter, metrics *telemetry.Metrics) {
	engine.GET("/health", h.Health.Check)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}
	requireAuth := []gin.HandlerFunc{authMiddleware.RequireAuth()}
	// unauthenticated callers continue as guests
	guestBooking := []gin.HandlerFunc{limiter.Middleware(), authMiddleware.OptionalAuth()}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/verification-codes", Handler: h.Auth.SendVerificationCode, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/verification-codes/verify", Handler: h.Auth.VerifyCode, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "/types", Handler: h.Room.ListRoomTypes},
			{Method: http.MethodGet, Path: "/types/:id", Handler: h.Room.GetRoomType},
			{Method: http.MethodGet, Path: "", Handler: h.Room.ListRooms},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Room.SearchAvailability},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Room.CheckAvailability},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Room.CreateBooking, Mw: guestBooking},
			{Method: http.MethodGet, Path: "/bookings/my", Handler: h.Room.MyBookings, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Room.ListBookings, Mw: requireAdmin},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Room.GetBooking, Mw: requireAuth},
			{Method: http.MethodPut, Path: "/bookings/:id/status", Handler: h.Room.UpdateStatus, Mw: requireAuth},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Room.DeleteBooking, Mw: requireAdmin},
		})

		diningRooms := apiGroup.Group("/dining-rooms")
		addRoutes(diningRooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.DiningRoom.List},
			{Method: http.MethodGet, Path: "/availability", Handler: h.DiningRoom.Availability},
			{Method: http.MethodGet, Path: "/:id", Handler: h.DiningRoom.Get},
			{Method: http.MethodGet, Path: "/:id/statistics", Handler: h.DiningRoom.Statistics, Mw: requireAdmin},
		})

		restaurant := apiGroup.Group("/restaurant")
		addRoutes(restaurant, []route{
			{Method: http.MethodGet, Path: "/time-slots", Handler: h.Restaurant.ListTimeSlots},
			{Method: http.MethodGet, Path: "/cuisines", Handler: h.Restaurant.ListCuisines},
			{Method: http.MethodGet, Path: "/cuisines/:id", Handler: h.Restaurant.GetCuisine},
			{Method: http.MethodGet, Path: "/packages", Handler: h.Restaurant.ListPackages},
			{Method: http.MethodGet, Path: "/packages/:id", Handler: h.Restaurant.GetPackage},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Restaurant.Availability},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Restaurant.CreateBooking, Mw: guestBooking},
			{Method: http.MethodGet, Path: "/bookings", Handler: h.Restaurant.ListBookings, Mw: requireAuth},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Restaurant.GetBooking, Mw: requireAuth},
			{Method: http.MethodPut, Path: "/bookings/:id", Handler: h.Restaurant.UpdateBooking, Mw: requireAuth},
			{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Restaurant.DeleteBooking, Mw: requireAdmin},
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
