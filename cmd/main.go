package main

import (
	"context"
	"log"

	"travel-service/config"
	bookinghandler "travel-service/internal/module/booking/handler"
	bookingrepo "travel-service/internal/module/booking/repositories"
	bookingusecases "travel-service/internal/module/booking/usecases"
	listinghandler "travel-service/internal/module/listing/handler"
	listingrepo "travel-service/internal/module/listing/repositories"
	listingusecases "travel-service/internal/module/listing/usecases"
	notificationhandler "travel-service/internal/module/notification/handler"
	notificationrepo "travel-service/internal/module/notification/repositories"
	notificationusecases "travel-service/internal/module/notification/usecases"
	paymenthandler "travel-service/internal/module/payment/handler"
	paymentrepo "travel-service/internal/module/payment/repositories"
	paymentusecases "travel-service/internal/module/payment/usecases"
	userhandler "travel-service/internal/module/user/handler"
	userrepo "travel-service/internal/module/user/repositories"
	userusecases "travel-service/internal/module/user/usecases"
	"travel-service/internal/pkg/database"
	"travel-service/internal/pkg/http"
	"travel-service/internal/pkg/httpclient"
	log_internal "travel-service/internal/pkg/log"
	"travel-service/internal/pkg/mailer"
	"travel-service/internal/pkg/messagestream"
	"travel-service/internal/pkg/middleware"
	"travel-service/internal/pkg/redis"
	"travel-service/internal/pkg/scheduler"
	router "travel-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {
	ctx := context.Background()

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	// init logger
	logger := log_internal.Setup()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create subscriber: " + err.Error())
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create publisher: " + err.Error())
	}

	// init scheduler
	sched := scheduler.Scheduler{Log: logger}
	schedulerClient := sched.InitClient(&cfg.Redis)
	inspector := sched.InitInspector(&cfg.Redis)

	validate := validator.New()

	// user module
	userRepo := userrepo.New(db, logger)
	userUsecase := userusecases.New(userRepo, logger, &cfg.JWT)
	userHandler := userhandler.UserHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   userUsecase,
	}

	// listing module
	listingRepo := listingrepo.New(db, logger, redisClient)
	listingUsecase := listingusecases.New(listingRepo, logger)
	listingHandler := listinghandler.ListingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   listingUsecase,
	}

	// booking module
	bookingRepo := bookingrepo.New(db, logger)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher)
	bookingHandler := bookinghandler.BookingHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   bookingUsecase,
	}

	// payment module
	paymentRepo := paymentrepo.New(db, logger, httpClient, &cfg.Chapa, schedulerClient, inspector)
	paymentUsecase := paymentusecases.New(paymentRepo, logger, publisher, cfg.Chapa.TxRefPrefix, cfg.Chapa.CallbackBaseURL)
	paymentHandler := paymenthandler.PaymentHandler{
		Log:           logger,
		Validator:     validate,
		Usecase:       paymentUsecase,
		WebhookSecret: cfg.Chapa.WebhookSecret,
	}

	// notification module
	notificationRepo := notificationrepo.New(mailer.New(&cfg.Mail), logger)
	notificationUsecase := notificationusecases.New(notificationRepo, logger)
	notificationHandler := notificationhandler.NotificationHandler{
		Log:       logger,
		Validator: validate,
		Usecase:   notificationUsecase,
	}

	mid := middleware.Middleware{
		Log: logger,
		Cfg: &cfg.JWT,
	}

	var messageRouters []*message.Router

	consumeBookingRouter, err := messagestream.NewRouter(publisher, "notification_poisoned", "booking_notification_handler", bookingusecases.TopicBookingNotification, subscriber, notificationHandler.ConsumeBookingNotificationQueue)
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create booking_notification router: " + err.Error())
	}
	messageRouters = append(messageRouters, consumeBookingRouter)

	consumePaymentRouter, err := messagestream.NewRouter(publisher, "notification_poisoned", "payment_notification_handler", paymentusecases.TopicPaymentNotification, subscriber, notificationHandler.ConsumePaymentNotificationQueue)
	if err != nil {
		logger.Ctx(ctx).Fatal("failed to create payment_notification router: " + err.Error())
	}
	messageRouters = append(messageRouters, consumePaymentRouter)

	startScheduler(&sched, cfg, &paymentHandler)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &userHandler, &listingHandler, &bookingHandler, &paymentHandler, &mid)

	return r, messageRouters
}

func startScheduler(sched *scheduler.Scheduler, cfg *config.Config, paymentHandler *paymenthandler.PaymentHandler) {
	taskTypes := []string{scheduler.TypeCheckPaymentStatus}
	handlerFuncs := []func(ctx context.Context, t *asynq.Task) error{paymentHandler.CheckPaymentStatus}

	go sched.StartHandler(&cfg.Redis, taskTypes, handlerFuncs)
	go sched.StartMonitoring(&cfg.Redis)
}
