package bootstrap

import (
	"context"
	"log"

	"interview-platform-be/internal/config"
	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/controller"
	"interview-platform-be/internal/handler"
	"interview-platform-be/internal/pkg/logger"
	"interview-platform-be/internal/pkg/mailer"
	"interview-platform-be/internal/repository/memory"
	"interview-platform-be/internal/repository/unitofwork"
	"interview-platform-be/internal/service"
	"interview-platform-be/internal/websocket"

	pktNats "interview-platform-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	InterviewController    controller.IInterviewController
	DeliberationController controller.IDeliberationController
	LevelController        controller.ILevelController
	SessionController      controller.ISessionController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	RoomHandler  *handler.RoomHandler
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.App.ClientURL,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// In-memory resume store
	resumeRepo := memory.NewResumeRepository()

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub (dedicated log file keeps room traffic out of app logs)
	roomLogger := logger.NewIsolatedLogger(cfg.App.RoomLogFilePath)
	wsHub := websocket.NewHub(rdb, roomLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(constant.FinalizationReportTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		constant.FinalizationReportTopic,
		uowFactory,
		emailService,
		natsPub,
	)

	authService := service.NewAuthService(uowFactory)
	roomService := service.NewRoomService(uowFactory, wsHub, resumeRepo, natsPub, sysLogger)
	levelService := service.NewLevelService(uowFactory)

	finalizeLocker := service.NewRedisFinalizeLocker(rdb, uuid.NewString())
	deliberationService := service.NewDeliberationService(
		uowFactory,
		finalizeLocker,
		publisherService,
		natsPub,
		sysLogger,
	)

	// Room traffic flows back into the domain through the hub's listeners.
	wsHub.SetPresenceListener(roomService)
	wsHub.SetInboundListener(roomService)

	// Durable event-bus worker: digests committed deliberation rounds to
	// administrators. Degraded no-worker mode when NATS is unreachable.
	notificationService := service.NewNotificationService(uowFactory, natsSub, emailService, sysLogger)
	go func() {
		if err := notificationService.Start(); err != nil {
			log.Printf("[WARN] Notification worker not started: %v", err)
		}
	}()

	// 4. Handlers & Controllers
	roomHandler := handler.NewRoomHandler(roomService, wsHub, roomLogger)

	return &Container{
		AuthController:         controller.NewAuthController(authService),
		InterviewController:    controller.NewInterviewController(roomService),
		DeliberationController: controller.NewDeliberationController(deliberationService),
		LevelController:        controller.NewLevelController(levelService),
		SessionController:      controller.NewSessionController(roomService),
		ConsumerService:        consumerService,
		RoomHandler:            roomHandler,
		WebSocketHub:           wsHub,
	}
}
