// Package http_server
package http_server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/half-nothing/airport-booking/internal/http_server/controller"
	mid "github.com/half-nothing/airport-booking/internal/http_server/middleware"
	impl "github.com/half-nothing/airport-booking/internal/http_server/service"
	"github.com/half-nothing/airport-booking/internal/http_server/service/store"
	. "github.com/half-nothing/airport-booking/internal/interfaces"
	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

func newStoreService(applicationContent *ApplicationContent, storeConfig *c.HttpServerStore) service.StoreServiceInterface {
	logger := applicationContent.Logger()
	var storeService service.StoreServiceInterface
	storeService = store.NewLocalStoreService(logger, storeConfig)
	switch storeConfig.StoreType {
	case c.ALiYunOssStore:
		storeService = store.NewALiYunOssStoreService(logger, storeConfig, storeService)
	case c.TencentCosStore:
		storeService = store.NewTencentCosStoreService(logger, storeConfig, storeService)
	}
	return storeService
}

func applyMiddleware(e *echo.Echo, applicationContent *ApplicationContent, httpConfig *c.HttpServerConfig) {
	logger := applicationContent.Logger()

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.Pre(middleware.RemoveTrailingSlash())
	if httpConfig.SSL.ForceSSL {
		e.Pre(middleware.HTTPSRedirect())
	}

	if httpConfig.RequestDuration > 0 {
		e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: httpConfig.RequestDuration}))
	}
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	ipPathLimiter := mid.NewKeyedRateLimiter(httpConfig.Limits.RateLimitDuration, httpConfig.Limits.RateLimit)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	ipPathLimiter.StartCleanup(cleanupCtx, cleanupInterval)
	applicationContent.Cleaner().Add(global.CallableFunc(func(context.Context) error {
		stopCleanup()
		return nil
	}))
	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))
}

// NewHttpServer builds the echo instance with every route registered, sweeper backs the
// maintenance endpoint
func NewHttpServer(applicationContent *ApplicationContent, sweeper service.FlightSweeperInterface) *echo.Echo {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	httpConfig := config.Server.HttpServer

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	e.HideBanner = true
	e.HidePort = true

	applyMiddleware(e, applicationContent, httpConfig)

	limits := httpConfig.Limits
	flightCache := applicationContent.FlightCache()
	publisher := applicationContent.Publisher()
	operations := applicationContent.Operations()
	auditLogOperation := operations.AuditLogOperation()

	emailService := impl.NewEmailService(logger, httpConfig.Email)
	storeService := newStoreService(applicationContent, httpConfig.Store)

	userService := impl.NewUserService(logger, httpConfig.JWT, config.Server.General, limits, operations.UserOperation())
	countryService := impl.NewCountryService(logger, limits, operations.CountryOperation(), auditLogOperation, flightCache)
	cityService := impl.NewCityService(logger, limits, operations.CityOperation(), auditLogOperation, flightCache)
	airportService := impl.NewAirportService(logger, limits, operations.AirportOperation(), auditLogOperation, flightCache)
	routeService := impl.NewRouteService(logger, limits, operations.RouteOperation(), auditLogOperation, flightCache)
	airplaneTypeService := impl.NewAirplaneTypeService(logger, limits, operations.AirplaneTypeOperation(), auditLogOperation, flightCache)
	airplaneService := impl.NewAirplaneService(logger, limits, storeService, operations.AirplaneOperation(), auditLogOperation, flightCache)
	crewService := impl.NewCrewService(logger, limits, operations.CrewOperation(), auditLogOperation, flightCache)
	flightService := impl.NewFlightService(logger, limits, operations.FlightOperation(), auditLogOperation, flightCache, publisher)
	orderService := impl.NewOrderService(logger, limits, operations.OrderOperation(), operations.UserOperation(),
		auditLogOperation, emailService, flightCache, publisher)
	maintenanceService := impl.NewMaintenanceService(logger, sweeper, auditLogOperation)
	auditLogService := impl.NewAuditService(logger, limits, auditLogOperation)

	userController := controller.NewUserController(logger, userService)
	countryController := controller.NewCountryController(logger, countryService)
	cityController := controller.NewCityController(logger, cityService)
	airportController := controller.NewAirportController(logger, airportService)
	routeController := controller.NewRouteController(logger, routeService)
	airplaneTypeController := controller.NewAirplaneTypeController(logger, airplaneTypeService)
	airplaneController := controller.NewAirplaneController(logger, airplaneService)
	crewController := controller.NewCrewController(logger, crewService)
	flightController := controller.NewFlightController(logger, flightService)
	orderController := controller.NewOrderController(logger, orderService)
	maintenanceController := controller.NewMaintenanceController(maintenanceService)
	auditLogController := controller.NewAuditLogController(logger, auditLogService)

	apiGroup := e.Group("/api", mid.OptionalJWT(httpConfig.JWT))

	userGroup := apiGroup.Group("/user")
	userGroup.POST("/register", userController.UserRegister)
	userGroup.POST("/token", userController.UserLogin)
	userGroup.POST("/token/refresh", userController.RefreshToken)
	userGroup.POST("/token/verify", userController.VerifyToken)
	userGroup.GET("/me", userController.GetCurrentUser)
	userGroup.PUT("/me", userController.EditCurrentUser)
	userGroup.PATCH("/me", userController.EditCurrentUser)

	countryGroup := apiGroup.Group("/countries")
	countryGroup.GET("", countryController.GetCountries)
	countryGroup.POST("", countryController.AddCountry)
	countryGroup.GET("/:id", countryController.GetCountry)
	countryGroup.PUT("/:id", countryController.EditCountry)
	countryGroup.PATCH("/:id", countryController.EditCountry)
	countryGroup.DELETE("/:id", countryController.DeleteCountry)

	cityGroup := apiGroup.Group("/cities")
	cityGroup.GET("", cityController.GetCities)
	cityGroup.POST("", cityController.AddCity)
	cityGroup.GET("/:id", cityController.GetCity)
	cityGroup.PUT("/:id", cityController.EditCity)
	cityGroup.PATCH("/:id", cityController.EditCity)
	cityGroup.DELETE("/:id", cityController.DeleteCity)

	airportGroup := apiGroup.Group("/airports")
	airportGroup.GET("", airportController.GetAirports)
	airportGroup.POST("", airportController.AddAirport)
	airportGroup.GET("/:id", airportController.GetAirport)
	airportGroup.PUT("/:id", airportController.EditAirport)
	airportGroup.PATCH("/:id", airportController.EditAirport)
	airportGroup.DELETE("/:id", airportController.DeleteAirport)

	routeGroup := apiGroup.Group("/routes")
	routeGroup.GET("", routeController.GetRoutes)
	routeGroup.POST("", routeController.AddRoute)
	routeGroup.GET("/:id", routeController.GetRoute)
	routeGroup.PUT("/:id", routeController.EditRoute)
	routeGroup.PATCH("/:id", routeController.EditRoute)
	routeGroup.DELETE("/:id", routeController.DeleteRoute)

	airplaneTypeGroup := apiGroup.Group("/airplanes-type")
	airplaneTypeGroup.GET("", airplaneTypeController.GetAirplaneTypes)
	airplaneTypeGroup.POST("", airplaneTypeController.AddAirplaneType)
	airplaneTypeGroup.GET("/:id", airplaneTypeController.GetAirplaneType)
	airplaneTypeGroup.PUT("/:id", airplaneTypeController.EditAirplaneType)
	airplaneTypeGroup.PATCH("/:id", airplaneTypeController.EditAirplaneType)
	airplaneTypeGroup.DELETE("/:id", airplaneTypeController.DeleteAirplaneType)

	airplaneGroup := apiGroup.Group("/airplanes")
	airplaneGroup.GET("", airplaneController.GetAirplanes)
	airplaneGroup.POST("", airplaneController.AddAirplane)
	airplaneGroup.GET("/:id", airplaneController.GetAirplane)
	airplaneGroup.PUT("/:id", airplaneController.EditAirplane)
	airplaneGroup.PATCH("/:id", airplaneController.EditAirplane)
	airplaneGroup.DELETE("/:id", airplaneController.DeleteAirplane)
	airplaneGroup.POST("/:id/upload-image", airplaneController.UploadImage)

	crewGroup := apiGroup.Group("/crew")
	crewGroup.GET("", crewController.GetCrews)
	crewGroup.POST("", crewController.AddCrew)
	crewGroup.GET("/:id", crewController.GetCrew)
	crewGroup.PUT("/:id", crewController.EditCrew)
	crewGroup.PATCH("/:id", crewController.EditCrew)
	crewGroup.DELETE("/:id", crewController.DeleteCrew)

	flightGroup := apiGroup.Group("/flights")
	flightGroup.GET("", flightController.GetFlights)
	flightGroup.POST("", flightController.AddFlight)
	flightGroup.GET("/:id", flightController.GetFlight)
	flightGroup.PUT("/:id", flightController.EditFlight)
	flightGroup.PATCH("/:id", flightController.EditFlight)
	flightGroup.DELETE("/:id", flightController.DeleteFlight)

	orderGroup := apiGroup.Group("/orders")
	orderGroup.GET("", orderController.GetOrders)
	orderGroup.POST("", orderController.CreateOrder)
	orderGroup.GET("/:id", orderController.GetOrder)
	orderGroup.DELETE("/:id", orderController.DeleteOrder)

	apiGroup.POST("/maintenance/deactivate-flights", maintenanceController.DeactivateFlights)
	apiGroup.GET("/audits", auditLogController.GetAuditLogs)

	e.Static(global.MediaUrlPrefix, httpConfig.Store.LocalStorePath)

	return e
}

func StartHttpServer(applicationContent *ApplicationContent, sweeper service.FlightSweeperInterface) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	httpConfig := config.Server.HttpServer

	e := NewHttpServer(applicationContent, sweeper)
	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
