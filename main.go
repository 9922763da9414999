package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"parkex/app/bid"
	"parkex/app/feedback"
	"parkex/app/garage"
	"parkex/app/profile"
	"parkex/infra/postgres"
	"parkex/infra/rabbitmq"
	"parkex/internal/middleware"
	"parkex/pkg/aws"
	"parkex/pkg/config"
	"parkex/pkg/events"
	"parkex/pkg/httperror"
	"parkex/pkg/metrics"
)

type Request any
type Response any

type HandlerInterface[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (*Res, error)
}

func handle[R Request, Res Response](handler HandlerInterface[R, Res]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return writeError(c, httperror.BadRequest(
				"request.invalid_body",
				"Invalid body",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.ParamsParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_path_params",
				"Invalid path params",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.QueryParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_query_params",
				"Invalid query params",
				fiber.Map{"error": err.Error()},
			))
		}

		if err := c.ReqHeaderParser(&req); err != nil {
			return writeError(c, httperror.BadRequest(
				"request.invalid_headers",
				"Invalid headers",
				fiber.Map{"error": err.Error()},
			))
		}

		ctx := c.UserContext()
		if ctx == nil {
			ctx = context.Background()
		}
		// Multipart handlers read the file straight off the fiber context.
		ctx = context.WithValue(ctx, "fiber", c)

		res, err := handler.Handle(ctx, &req)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(res)
	}
}

func main() {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, _ := zapConfig.Build()
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	appConfig := config.Read()
	zap.L().Info("ParkEx API starting...")
	zap.L().Info("app config", zap.Any("appConfig", appConfig))

	app := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Concurrency:  256 * 1024,
	})

	pgRepository := postgres.NewPgRepository(
		appConfig.PostgresHost,
		appConfig.PostgresDatabase,
		appConfig.PostgresUsername,
		appConfig.PostgresPassword,
		appConfig.PostgresPort,
	)
	defer pgRepository.Close()

	var eventPublisher events.Publisher
	if appConfig.RabbitMQURL != "" {
		publisher, err := rabbitmq.NewRabbitMQPublisher(appConfig.RabbitMQURL, appConfig.ServiceName)
		if err != nil {
			zap.L().Fatal("Failed to create RabbitMQ publisher", zap.Error(err))
		}
		defer publisher.Close()
		eventPublisher = publisher
	} else {
		zap.L().Warn("RABBITMQ_URL not set, events will not be published")
	}

	bucket := aws.NewS3Bucket(appConfig)
	prom := metrics.NewProm()

	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		prom.IncRequest(c.Route().Path, c.Response().StatusCode())
		return err
	})

	createGarageHandler := garage.NewCreateGarageHandler(pgRepository, eventPublisher)
	getGaragesHandler := garage.NewGetGaragesHandler(pgRepository)
	getGarageHandler := garage.NewGetGarageHandler(pgRepository)
	getFeaturedGaragesHandler := garage.NewGetFeaturedGaragesHandler(pgRepository)
	getSellerGaragesHandler := garage.NewGetSellerGaragesHandler(pgRepository)
	uploadGarageImageHandler := garage.NewUploadGarageImageHandler(pgRepository, bucket, appConfig, eventPublisher)

	placeBidHandler := bid.NewPlaceBidHandler(pgRepository, eventPublisher, prom)
	getGarageBidsHandler := bid.NewGetGarageBidsHandler(pgRepository)
	getMyBidsHandler := bid.NewGetMyBidsHandler(pgRepository)

	getProfileHandler := profile.NewGetProfileHandler(pgRepository)
	updateProfileHandler := profile.NewUpdateProfileHandler(pgRepository)

	createFeedbackHandler := feedback.NewCreateFeedbackHandler(pgRepository)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))

	publicRoutes := app.Group("/api/v1")
	publicRoutes.Get("/garages", handle[garage.GetGaragesRequest, garage.GetGaragesResponse](getGaragesHandler))
	publicRoutes.Get("/garages/featured", handle[garage.GetFeaturedGaragesRequest, garage.GetFeaturedGaragesResponse](getFeaturedGaragesHandler))
	publicRoutes.Get("/garages/:id", handle[garage.GetGarageRequest, garage.GetGarageResponse](getGarageHandler))
	publicRoutes.Get("/garages/:id/bids", handle[bid.GetGarageBidsRequest, bid.GetGarageBidsResponse](getGarageBidsHandler))
	publicRoutes.Post("/feedback",
		middleware.NewOptionalIdentityMiddleware(),
		handle[feedback.CreateFeedbackRequest, feedback.CreateFeedbackResponse](createFeedbackHandler))

	protectedRoutes := app.Group("/api/v1", middleware.NewIdentityMiddleware())
	protectedRoutes.Post("/garages", handle[garage.CreateGarageRequest, garage.CreateGarageResponse](createGarageHandler))
	protectedRoutes.Post("/garages/:id/images", handle[garage.UploadGarageImageRequest, garage.UploadGarageImageResponse](uploadGarageImageHandler))
	protectedRoutes.Post("/bids", handle[bid.PlaceBidRequest, bid.PlaceBidResponse](placeBidHandler))
	protectedRoutes.Get("/my/garages", handle[garage.GetSellerGaragesRequest, garage.GetSellerGaragesResponse](getSellerGaragesHandler))
	protectedRoutes.Get("/my/bids", handle[bid.GetMyBidsRequest, bid.GetMyBidsResponse](getMyBidsHandler))
	protectedRoutes.Get("/profile", handle[profile.GetProfileRequest, profile.GetProfileResponse](getProfileHandler))
	protectedRoutes.Put("/profile", handle[profile.UpdateProfileRequest, profile.UpdateProfileResponse](updateProfileHandler))

	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", appConfig.Port))

	gracefulShutdown(app)
}

func gracefulShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	zap.L().Info("Server gracefully stopped")
}

func writeError(c *fiber.Ctx, err error) error {
	var httpErr *httperror.Error
	if errors.As(err, &httpErr) {
		payload := fiber.Map{
			"code":    httpErr.Code,
			"message": httpErr.Message,
		}

		if httpErr.Details != nil {
			payload["details"] = httpErr.Details
		}

		if httpErr.Status >= fiber.StatusInternalServerError {
			zap.L().Error("Handler returned server error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		} else {
			zap.L().Warn("Handler returned client error", zap.String("code", httpErr.Code), zap.Error(httpErr))
		}

		return c.Status(httpErr.Status).JSON(payload)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		zap.L().Warn("Fiber validation error", zap.String("message", fiberErr.Message), zap.Error(err))
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"code":    "request.invalid",
			"message": fiberErr.Message,
		})
	}

	zap.L().Error("Unhandled error", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"code":    "internal_server_error",
		"message": "Internal server error.",
	})
}
