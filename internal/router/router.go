package router

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"gatepass/docs"
	"gatepass/internal/auth"
	"gatepass/internal/config"
	"gatepass/internal/handler"
	"gatepass/internal/model"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Vehicle *handler.VehicleHandler
	Pass    *handler.PassHandler
	Log     *handler.LogHandler
	Gate    *handler.GateHandler
	Stream  *handler.StreamHandler
}

// Deps are the cross-cutting collaborators of the router.
type Deps struct {
	JWT    *auth.JWTService
	Tokens auth.TokenStoreInterface
	Logger *slog.Logger
	// Gatherer backs /metrics. Nil means the default registry.
	Gatherer prometheus.Gatherer
}

// Register wires routes and middleware.
func Register(e *echo.Echo, cfg *config.Config, deps Deps, h Handlers) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	bearer := JWTAuth(deps.JWT, deps.Tokens, "header:"+echo.HeaderAuthorization+":Bearer ")
	// Browsers cannot set headers on a WebSocket handshake.
	bearerOrQuery := JWTAuth(deps.JWT, deps.Tokens, "header:"+echo.HeaderAuthorization+":Bearer ,query:token")
	admin := RequireRole(model.RoleAdmin)
	resident := RequireRole(model.RoleResident)

	e.GET("/ws", h.Stream.Stream, bearerOrQuery, admin)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)

	// Edge device routes
	edge := api.Group("", EdgeRateLimit(cfg.EdgeRateLimit, cfg.EdgeRateBurst), DeviceKey(cfg.DeviceAPIKey))
	edge.POST("/gate/verify", h.Gate.Verify)
	edge.POST("/logs/create", h.Log.Create)

	// Secured routes (require JWT authentication)
	secured := api.Group("", bearer)
	secured.POST("/auth/logout", h.Auth.Logout)
	secured.GET("/user", h.User.Me)

	secured.GET("/vehicles/my", h.Vehicle.ListMine, resident)
	secured.POST("/vehicles/add", h.Vehicle.Create, resident)
	secured.GET("/vehicles/all", h.Vehicle.ListAll, admin)
	secured.PATCH("/vehicles/:id/status", h.Vehicle.UpdateStatus, admin)

	secured.GET("/passes/my", h.Pass.ListMine, resident)
	secured.POST("/passes/create", h.Pass.Create, resident)
	secured.GET("/passes/all", h.Pass.ListAll, admin)

	secured.GET("/logs/my", h.Log.ListMine, resident)
	secured.GET("/logs/all", h.Log.ListAll, admin)

	adminGroup := secured.Group("/admin", admin)
	adminGroup.GET("/users", h.User.ListUsers)
	adminGroup.GET("/users/:id", h.User.GetUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
