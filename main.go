package main

import (
	"catalog/app/item"
	"catalog/infra/memory"
	"catalog/infra/rabbitmq"
	"catalog/internal/middleware"
	"catalog/pkg/config"
	"catalog/pkg/events"
	"catalog/pkg/httperror"
	"catalog/pkg/response"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Request any

// Response shapes a handler result into the API envelope.
type Response interface {
	Status() int
	Message() string
	Data() any
}

type HandlerInterface[R Request, Res Response] interface {
	Handle(ctx context.Context, req *R) (*Res, error)
}

// handle adapts a typed handler to a fiber route. Body and path parameters
// are bound onto the request type before the handler runs; whatever comes
// back is wrapped in the response envelope.
func handle[R Request, Res Response](handler HandlerInterface[R, Res]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if err := c.BodyParser(&req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
			return writeError(c, err)
		}

		if err := c.ParamsParser(&req); err != nil {
			return writeError(c, err)
		}

		res, err := handler.Handle(c.UserContext(), &req)
		if err != nil {
			return writeError(c, err)
		}

		return writeSuccess(c, *res)
	}
}

func writeSuccess(c *fiber.Ctx, res Response) error {
	return c.Status(res.Status()).JSON(response.Success(res.Message(), res.Data()))
}

// writeError classifies err and writes the failure envelope. Anything that
// is neither an httperror nor a router error counts as unexpected and maps
// to a 500.
func writeError(c *fiber.Ctx, err error) error {
	var httpErr *httperror.Error
	if !errors.As(err, &httpErr) {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			httpErr = httperror.New(fiberErr.Code, fiberErr.Message, nil)
		} else {
			httpErr = httperror.InternalServerError("An unexpected error occurred", []string{err.Error()})
		}
	}

	if httpErr.Status >= fiber.StatusInternalServerError {
		zap.L().Error("Request failed", zap.Int("status", httpErr.Status), zap.Error(err))
	} else {
		zap.L().Warn("Request rejected", zap.Int("status", httpErr.Status), zap.Error(err))
	}

	return c.Status(httpErr.Status).JSON(response.Failure(httpErr.Message, httpErr.Errors))
}

func main() {
	logger := newLogger()
	defer logger.Sync()

	appConfig := config.Read()

	var publisher events.Publisher
	if appConfig.RabbitMQURL != "" {
		rabbitPublisher, err := rabbitmq.NewPublisher(appConfig.RabbitMQURL, events.ItemExchange, appConfig.ServiceName)
		if err != nil {
			zap.L().Fatal("Failed to connect event publisher", zap.Error(err))
		}
		publisher = rabbitPublisher
		defer rabbitPublisher.Close()
	} else {
		zap.L().Warn("RABBITMQ_URL not set, item events will not be published")
	}

	store := memory.NewStore()
	service := item.NewService(store)

	app := newApp(service, publisher)

	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Catalog API started", zap.String("port", appConfig.Port))

	gracefulShutdown(app)
}

// newApp assembles the fiber app: middleware, handlers, and the routes that
// expose them.
func newApp(service *item.Service, publisher events.Publisher) *fiber.App {
	app := fiber.New(fiber.Config{
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		Concurrency:  256 * 1024,
		ErrorHandler: writeError,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.NewTraceContextMiddleware())
	app.Use(middleware.NewRequestLoggerMiddleware())

	validation := item.NewValidation()
	createItemHandler := item.NewCreateItemHandler(service, validation, publisher)
	getItemHandler := item.NewGetItemHandler(service)
	getItemsHandler := item.NewGetItemsHandler(service)

	publicRoutes := app.Group("/api")

	publicRoutes.Post("/items", handle[item.CreateItemRequest, item.CreateItemResponse](createItemHandler))
	publicRoutes.Get("/items", handle[item.GetItemsRequest, item.GetItemsResponse](getItemsHandler))
	publicRoutes.Get("/items/:id", handle[item.GetItemRequest, item.GetItemResponse](getItemHandler))

	return app
}

func newLogger() *zap.Logger {
	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, _ := zapConfig.Build()
	zap.ReplaceGlobals(logger)
	return logger
}

func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	zap.L().Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exited")
}
