package bootstrap

import (
	"context"
	"log"
	"os"
	"time"

	"townmate-be/internal/config"
	"townmate-be/internal/controller"
	"townmate-be/internal/handler"
	"townmate-be/internal/pkg/logger"
	"townmate-be/internal/repository/implementation"
	"townmate-be/internal/repository/memory"
	"townmate-be/internal/service"
	"townmate-be/internal/websocket"
	"townmate-be/pkg/calling"
	"townmate-be/pkg/engine"

	pktNats "townmate-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController   controller.IAssistantController
	PlaceController       controller.IPlaceController
	PreferenceController  controller.IPreferenceController
	ReservationController controller.IReservationController
	LocationController    controller.ILocationController

	// Background services (exposed for main.go to run)
	OutcomeService service.IOutcomeService

	// WebSockets & notification
	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus (in-process; reservation outcomes flow through it)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
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

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 4. Repositories
	placeRepo := implementation.NewPlaceRepository(db)
	prefRepo := implementation.NewPreferenceRepository(db)
	locationRepo := implementation.NewSavedLocationRepository(db)
	statusRepo := implementation.NewReservationStatusRepository(db)
	chatSessionRepo := implementation.NewChatSessionRepository(db)
	chatMessageRepo := implementation.NewChatMessageRepository(db)
	liveSessions := memory.NewSessionRepository()

	// 5. Engine + calling service
	eng := engine.New(log.New(os.Stdout, "", log.LstdFlags))
	callClient := calling.NewClient(cfg.Calling.BaseURL)
	statusService := service.NewReservationStatusService(statusRepo, rdb, sysLogger)
	poller := calling.NewPoller(
		callClient,
		statusService,
		pubSub,
		time.Duration(cfg.Calling.PollIntervalSeconds)*time.Second,
		log.New(os.Stdout, "", log.LstdFlags),
	)

	// 6. Services
	assistantService := service.NewAssistantService(
		chatSessionRepo,
		chatMessageRepo,
		prefRepo,
		locationRepo,
		placeRepo,
		liveSessions,
		eng,
		callClient,
		poller,
		sysLogger,
	)
	placeService := service.NewPlaceService(placeRepo)
	prefService := service.NewPreferenceService(prefRepo)
	locationService := service.NewLocationService(locationRepo)

	outcomeService := service.NewOutcomeService(
		pubSub,
		chatMessageRepo,
		wsHub,
		natsPub,
		sysLogger,
	)

	// 7. Handlers
	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	return &Container{
		AssistantController:   controller.NewAssistantController(assistantService),
		PlaceController:       controller.NewPlaceController(placeService),
		PreferenceController:  controller.NewPreferenceController(prefService),
		ReservationController: controller.NewReservationController(statusService),
		LocationController:    controller.NewLocationController(locationService),

		OutcomeService: outcomeService,

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,
	}
}
