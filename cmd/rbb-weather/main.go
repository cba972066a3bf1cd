package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"rbb-weather/configs"
	"rbb-weather/docs"
	"rbb-weather/internal/application/controller"
	"rbb-weather/internal/application/middleware"
	"rbb-weather/internal/application/processor"
	"rbb-weather/internal/application/schedule"
	"rbb-weather/internal/domain/entity"
	"rbb-weather/internal/domain/gateway/api"
	"rbb-weather/internal/domain/gateway/notify"
	"rbb-weather/internal/domain/gateway/queue"
	"rbb-weather/internal/domain/usecase/forecast"
	"rbb-weather/internal/domain/usecase/health"
	"rbb-weather/internal/infra/aws"
	infraredis "rbb-weather/internal/infra/redis"
	rbbhttp "rbb-weather/pkg/http"
	"rbb-weather/pkg/log"
	"rbb-weather/pkg/msg"
	"rbb-weather/pkg/redis"
	"rbb-weather/pkg/resource"
	"rbb-weather/pkg/sqs"
)

func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init infra
	e := echo.New()
	e.HideBanner = true

	contextPath := resource.GetStringOrDefault("app.server.context-path", configs.Env.ContextPath)
	middleware.SetupRequestLogger(e, contextPath)
	apiGroup := e.Group(contextPath)
	docs.SwaggerInfo.BasePath = contextPath
	apiGroup.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Gateways
	forecastGateway := api.NewForecastGateway(resource.GetString("app.rbb.base-url"), rbbhttp.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.rbb.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.rbb.read-timeout"),
		RateLimit:         resource.GetFloat64("app.rbb.rate-limit"),
		RateBurst:         resource.GetInt("app.rbb.rate-burst"),
	})

	var publishers []notify.Publisher
	indicators := map[string]health.Indicator{}
	var workers sync.WaitGroup

	// The processor is bound to the use case once it exists; transports are wired before it
	var loadDataProcessor *processor.LoadDataProcessor
	var redisClient *redis.Client
	var redisSubscriber *redis.Subscriber

	if resource.GetBool("app.redis.enabled") {
		client, err := infraredis.NewClient()
		if err != nil {
			log.Fatal("Failed to create Redis client", zap.Error(err))
		}
		redisClient = client

		pubSubConfig := infraredis.NewPubSubConfig()
		publishers = append(publishers, notify.NewChannelPublisher(
			redis.NewPublisher(redisClient, pubSubConfig),
			resource.GetStringOrDefault("app.redis.data-loaded-channel", notify.DataLoaded)))

		redisSubscriber, err = redis.NewSubscriber(redisClient,
			redis.HandlerFunc(func(ctx context.Context, channel string, message string) error {
				return loadDataProcessor.HandleNotification(ctx, channel, message)
			}),
			pubSubConfig,
			resource.GetStringOrDefault("app.redis.load-channel", processor.LoadData))
		if err != nil {
			log.Fatal("Failed to create Redis subscriber", zap.Error(err))
		}

		indicators["redis"] = infraredis.NewHealthIndicator(map[string]infraredis.RedisHealth{
			"connection": redis.NewHealthChecker(redisClient),
			"subscriber": redisSubscriber,
		})
	}

	var sqsWorker *sqs.Worker
	if resource.GetBool("app.aws.enabled") {
		awsConfig, err := aws.LoadConfig(ctx)
		if err != nil {
			log.Fatal("Failed to load AWS config", zap.Error(err))
		}
		sqsClient := aws.NewSqsClient(awsConfig)

		publishers = append(publishers, notify.NewQueuePublisher(
			aws.NewSQSSenderAdapter(sqsClient),
			resource.GetString("app.aws.sqs.data-loaded-queue")))

		loadQueue := resource.GetString("app.aws.sqs.load-queue")
		sqsWorker, err = sqs.NewWorker(ctx, sqsClient, loadQueue,
			sqs.HandlerFunc(func(message *sqstypes.Message) error {
				return loadDataProcessor.HandleMessage(message)
			}),
			&sqs.WorkerConfig{PoolSize: resource.GetIntOrDefault("app.aws.sqs.pool-size", 1)})
		if err != nil {
			log.Fatal("Failed to create SQS worker", zap.String("queue", loadQueue), zap.Error(err))
		}

		queueHealthGateway := queue.NewQueueHealthGateway()
		queueHealthGateway.RegisterWorker(loadQueue, sqsWorker)
		indicators["queue"] = queueHealthGateway
	}

	// Init UseCase
	defaultConfig := entity.LoadConfig{
		LocationID: resource.GetStringOrDefault("app.forecast.id", "18228265"),
		Days:       resource.GetIntOrDefault("app.forecast.days", 4),
	}.Normalize()
	cycleTimeout := resource.GetDurationOrDefault("app.forecast.cycle-timeout", 30*time.Second)

	forecastUseCase := forecast.NewForecastUseCase(forecastGateway, notify.NewMultiPublisher(publishers...))
	indicators["forecast"] = forecastUseCase
	healthUseCase := health.NewHealthUseCase(indicators)
	loadDataProcessor = processor.NewLoadDataProcessor(forecastUseCase, defaultConfig.Days, cycleTimeout)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	forecastController := controller.NewForecastController(apiGroup, forecastUseCase,
		defaultConfig.LocationID, defaultConfig.Days, cycleTimeout)

	// Init Routes
	healthController.InitHealthRoutes()
	forecastController.InitForecastRoutes()

	// Init Consumers
	if redisSubscriber != nil {
		workers.Add(1)
		go func() {
			defer workers.Done()
			redisSubscriber.Start(ctx)
		}()
	}
	if sqsWorker != nil {
		workers.Add(1)
		go func() {
			defer workers.Done()
			sqsWorker.Start(ctx)
		}()
	}

	// Init Schedule
	forecastScheduler := schedule.NewForecastScheduler(forecastUseCase, schedule.ForecastSchedulerConfig{
		CronExpression: resource.GetStringOrDefault("app.forecast.cron", "@every 10m"),
		LoadConfig:     defaultConfig,
		CycleTimeout:   cycleTimeout,
		RunOnStart:     resource.GetBool("app.forecast.run-on-start"),
	})
	if err := forecastScheduler.InitForecastScheduleTasks(); err != nil {
		log.Fatal("Failed to start forecast scheduler", zap.Error(err))
	}

	// Start Routes
	port := resource.GetStringOrDefault("app.server.port", "8080")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping"))

	forecastScheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		resource.GetDurationOrDefault("app.server.shutdown-timeout", 10*time.Second))
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", zap.Error(err))
	}

	workers.Wait()
	if redisClient != nil {
		_ = redisClient.Close()
	}

	log.Info(msg.GetMessage("app.stopped"))
}
