package main

import (
	"net/http"
	"os"
	"time"

	"autocatalog/api/handler"
	apiMiddleware "autocatalog/api/middleware"
	"autocatalog/api/routes"
	"autocatalog/config"
	"autocatalog/internal/repository"
	"autocatalog/internal/service"
	"autocatalog/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	db := config.ConnectionDb()
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		logger.Fatal("JWT_SECRET is required")
	}

	jwtManager := utils.JWTManager{
		Secret:   secret,
		Issuer:   os.Getenv("JWT_ISSUER"),
		TokenTTL: 24 * time.Hour,
	}
	tokenIssuer := service.JWTTokenIssuer{Manager: &jwtManager}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	sellerRepo := repository.NewSellerRepository(db)
	carRepo := repository.NewCarRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	registrationTx := repository.NewRegistrationTx(db)

	passwordHasher := service.BcryptPasswordHasher{}

	var emailSender service.EmailSender
	if sender := service.NewResendEmailSender(os.Getenv("RESEND_API_KEY"), os.Getenv("EMAIL_FROM")); sender.Configured() {
		emailSender = sender
	}

	var blobStore service.BlobStore
	if cloudinaryURL := os.Getenv("CLOUDINARY_URL"); cloudinaryURL != "" {
		store, err := service.NewCloudinaryBlobStore(cloudinaryURL, os.Getenv("CLOUDINARY_FOLDER"))
		if err != nil {
			logger.WithError(err).Fatal("cloudinary configuration invalid")
		}
		blobStore = store
	}

	authService := service.NewAuthService(userRepo, auditRepo, passwordHasher, tokenIssuer, logger)
	registrationService := service.NewRegistrationService(
		userRepo,
		profileRepo,
		registrationTx,
		auditRepo,
		passwordHasher,
		emailSender,
		logger,
	)
	authzService := service.NewAuthorizationService(sellerRepo, storeRepo)
	carService := service.NewCarService(carRepo, sellerRepo, storeRepo, authzService, validate, service.RealClock{})

	authHandler := handler.NewAuthHandler(authService, registrationService, validate)
	carHandler := handler.NewCarHandler(carService)
	uploadHandler := handler.NewUploadHandler(blobStore)

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{JWT: &jwtManager}
	router := routes.NewRouter(app, authHandler, carHandler, uploadHandler, authMiddleware)
	router.RegisterRoutes()

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", addr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
