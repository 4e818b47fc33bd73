package routes

import (
	"time"

	"autocatalog/api/handler"
	"autocatalog/api/middleware"
	"autocatalog/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Auth           *handler.AuthHandler
	Cars           *handler.CarHandler
	Uploads        *handler.UploadHandler
	AuthMiddleware middleware.AuthMiddleware
	RegisterRate   *middleware.RateLimiter
	LoginRate      *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	carHandler *handler.CarHandler,
	uploadHandler *handler.UploadHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Auth:           authHandler,
		Cars:           carHandler,
		Uploads:        uploadHandler,
		AuthMiddleware: authMiddleware,
		RegisterRate:   middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo

	e.POST("/auth/register", r.Auth.Register, r.RegisterRate.Middleware())
	e.POST("/auth/login", r.Auth.Login, r.LoginRate.Middleware())

	e.GET("/me", r.Auth.Me, r.AuthMiddleware.RequireAuth)

	e.GET("/cars", r.Cars.List)
	e.GET("/cars/:id", r.Cars.Get)
	e.POST("/cars", r.Cars.Create, r.AuthMiddleware.RequireAuth)
	e.PUT("/cars/:id", r.Cars.Update, r.AuthMiddleware.RequireAuth)

	e.POST("/uploads", r.Uploads.Upload, r.AuthMiddleware.RequireAuth)

	e.GET("/admin/users", r.Auth.AdminListUsers, r.AuthMiddleware.RequireAuth, middleware.RequireRole(entity.RoleAdmin))
}
