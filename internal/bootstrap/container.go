package bootstrap

import (
	"context"
	"log"

	"ecotrack-be/internal/config"
	"ecotrack-be/internal/controller"
	"ecotrack-be/internal/handler"
	"ecotrack-be/internal/pkg/logger"
	"ecotrack-be/internal/pkg/mailer"
	"ecotrack-be/internal/repository/implementation"
	"ecotrack-be/internal/repository/unitofwork"
	"ecotrack-be/internal/service"
	"ecotrack-be/internal/websocket"
	"ecotrack-be/pkg/chatbot"
	"ecotrack-be/pkg/geo"

	pktNats "ecotrack-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	UserController      controller.IUserController
	WasteController     controller.IWasteController
	GoalController      controller.IGoalController
	RecyclingController controller.IRecyclingController
	ChatController      controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Notification
	NotificationHandler *handler.NotificationHandler
	ChatHandler         *handler.ChatHandler
	WebSocketHub        *websocket.Hub
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
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

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

	// WebSocket Hub. The chat domain logs to its own file so one noisy
	// channel does not drown the application log.
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)
	wsHub := websocket.NewHub(rdb, chatLogger)
	go wsHub.Run()

	// 3. Services
	geocoder := geo.NewGeocoder(cfg.Keys.GoogleMaps)
	locationService := service.NewLocationService(geocoder, sysLogger)

	authService := service.NewAuthService(uowFactory, emailService, locationService, cfg.App.DefaultCity)
	userService := service.NewUserService(uowFactory, locationService)
	wasteService := service.NewWasteService(uowFactory, pubSub, sysLogger)
	goalService := service.NewGoalService(uowFactory)
	recyclingService := service.NewRecyclingService(uowFactory)
	scheduleService := service.NewScheduleService(uowFactory)

	responder := chatbot.NewResponder()
	chatService := service.NewChatService(uowFactory, responder, chatLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		service.TopicWasteEntryRecorded,
		uowFactory,
		natsPub,
		sysLogger,
	)

	// 3.5 Notification Domain
	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, natsSub, wsHub, chatLogger) // Hub implements NotificationDelivery

	// Start Service (Worker)
	if natsSub != nil {
		go notifService.Start()
	}

	// Handlers
	notifHandler := handler.NewNotificationHandler(notifService, chatLogger)
	chatHandler := handler.NewChatHandler(chatService, userService, wsHub, chatLogger)

	// 4. Controllers
	return &Container{
		AuthController:      controller.NewAuthController(authService),
		UserController:      controller.NewUserController(userService),
		WasteController:     controller.NewWasteController(wasteService),
		GoalController:      controller.NewGoalController(goalService),
		RecyclingController: controller.NewRecyclingController(recyclingService, scheduleService, userService),
		ChatController:      controller.NewChatController(chatService),

		ConsumerService: consumerService,

		NotificationHandler: notifHandler,
		ChatHandler:         chatHandler,
		WebSocketHub:        wsHub,
	}
}
