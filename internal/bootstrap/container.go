package bootstrap

import (
	"grafica-order-bot/internal/config"
	"grafica-order-bot/internal/controller"
	"grafica-order-bot/internal/pkg/logger"
	"grafica-order-bot/internal/repository/memory"
	"grafica-order-bot/internal/repository/unitofwork"
	"grafica-order-bot/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	WebhookController controller.IWebhookController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// In-process event bus for order bookkeeping.
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	sessionRepo := memory.NewSessionRepository()

	publisherService := service.NewPublisherService(pubSub)
	authService := service.NewAuthService(uowFactory, cfg.Bot.EnrollSecret)
	deadlineService := service.NewDeadlineService(cfg.Bot.LeadTimeDays)
	dialogueService := service.NewDialogueService(
		sessionRepo,
		authService,
		deadlineService,
		uowFactory,
		publisherService,
		sysLogger,
	)
	consumerService := service.NewConsumerService(pubSub, sysLogger)

	webhookController := controller.NewWebhookController(dialogueService)

	return &Container{
		WebhookController: webhookController,
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
