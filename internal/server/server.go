package server

import (
	"context"

	"wholesale-portal/internal/auth"
	"wholesale-portal/internal/handler"
	"wholesale-portal/internal/middleware"
	"wholesale-portal/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	echo           *echo.Echo
	tokens         *auth.TokenService
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
}

type echoValidator struct {
	validate *validator.Validate
}

func (v *echoValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(
	log *zap.Logger,
	tokens *auth.TokenService,
	authService service.AuthService,
	userService service.UserService,
	productService service.ProductService,
	orderService service.OrderService,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &echoValidator{validate: validator.New()}

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
			)
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:           e,
		tokens:         tokens,
		authHandler:    handler.NewAuthHandler(authService),
		userHandler:    handler.NewUserHandler(userService),
		productHandler: handler.NewProductHandler(productService),
		orderHandler:   handler.NewOrderHandler(orderService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- auth --------
	authGroup := api.Group("/auth")
	authGroup.POST("/login", s.authHandler.Login)
	authGroup.POST("/register", s.authHandler.Register)

	// -------- authenticated --------
	authed := api.Group("", middleware.AuthMiddleware(s.tokens))

	authed.GET("/orders", s.orderHandler.GetOrders)
	authed.GET("/products", s.productHandler.GetProducts)
	authed.GET("/products/:sku", s.productHandler.GetProductBySKU)

	user := authed.Group("/user")
	user.GET("/profile", s.userHandler.GetProfile)
	user.PUT("/profile", s.userHandler.UpdateProfile)
	user.PUT("/password", s.userHandler.ChangePassword)

	// -------- admin only --------
	admin := user.Group("", middleware.AdminOnly())
	admin.GET("/all", s.userHandler.ListUsers)
	admin.POST("/create", s.userHandler.CreateUser)
	admin.DELETE("/:id", s.userHandler.DeleteUser)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
