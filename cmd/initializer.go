package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"shinaBack/internal/catalog"
	"shinaBack/internal/config"
	"shinaBack/internal/events"
	"shinaBack/internal/handlers"
	"shinaBack/internal/repositories"
	"shinaBack/internal/services"
	"shinaBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	bus      *events.Bus
	tokens   *utils.TokenManager
	userRepo *repositories.UserRepository

	searchHandler      *handlers.SearchHandler
	tireHandler        *handlers.TireHandler
	wheelHandler       *handlers.WheelHandler
	fitmentHandler     *handlers.FitmentHandler
	cartHandler        *handlers.CartHandler
	favoritesHandler   *handlers.FavoritesHandler
	vehicleHandler     *handlers.VehicleHandler
	userHandler        *handlers.UserHandler
	cityHandler        *handlers.CityHandler
	orderHandler       *handlers.OrderHandler
	appointmentHandler *handlers.AppointmentHandler
	newsHandler        *handlers.NewsHandler
	pushHandler        *handlers.PushHandler
}

func initializeApp(cfg config.Config, db *sql.DB, rdb *redis.Client, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) (*application, error) {
	tokens, err := utils.NewTokenManager(cfg.JWT.SigningKey)
	if err != nil {
		return nil, err
	}

	uploader, err := utils.NewUploader(cfg.Storage.Endpoint, cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.AccessKey, cfg.Storage.SecretKey)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()

	httpClient := &http.Client{Timeout: 15 * time.Second}
	directus := catalog.NewDirectusClient(httpClient, cfg.Catalog.DirectusURL, cfg.Catalog.DirectusToken)
	tirebase := catalog.NewTirebaseClient(httpClient, cfg.Catalog.TirebaseURL, cfg.Catalog.TirebaseToken)

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	cityRepo := repositories.CityRepository{DB: db}
	orderRepo := repositories.OrderRepository{DB: db}
	appointmentRepo := repositories.AppointmentRepository{DB: db}
	newsRepo := repositories.NewsRepository{DB: db}
	cartRepo := repositories.CartRepository{RDB: rdb}
	favoritesRepo := repositories.FavoritesRepository{RDB: rdb}
	vehicleRepo := repositories.VehicleRepository{RDB: rdb}
	profileRepo := repositories.ProfileRepository{RDB: rdb}
	orderDraftRepo := repositories.OrderDraftRepository{RDB: rdb}
	verificationRepo := repositories.VerificationRepository{RDB: rdb}

	// Push delivery doubles as the appointment notifier.
	pushHandler := handlers.NewPushHandler(fcmClient, db)

	// Services
	searchService := &services.SearchService{Catalog: tirebase}
	tireService := &services.TireService{Catalog: directus}
	wheelService := &services.WheelService{Catalog: tirebase}
	fitmentService := &services.FitmentService{Catalog: tirebase}
	cartService := &services.CartService{Store: &cartRepo, Bus: bus}
	favoritesService := &services.FavoritesService{Store: &favoritesRepo, Bus: bus}
	vehicleService := &services.VehicleService{Store: &vehicleRepo, Bus: bus}
	userService := &services.UserService{
		UserRepo: &userRepo,
		Profiles: &profileRepo,
		Codes:    &verificationRepo,
		Tokens:   tokens,
		Bus:      bus,
	}
	cityService := &services.CityService{Cities: &cityRepo, Selected: &profileRepo, Bus: bus}
	orderService := &services.OrderService{
		Orders: &orderRepo,
		Drafts: &orderDraftRepo,
		Cart:   cartService,
		Users:  userService,
	}
	var notifier services.Notifier
	if fcmClient != nil {
		notifier = pushHandler
	}
	appointmentService := &services.AppointmentService{Store: &appointmentRepo, Notifier: notifier}
	newsService := &services.NewsService{Store: &newsRepo}

	app := &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		bus:      bus,
		tokens:   tokens,
		userRepo: &userRepo,

		searchHandler:      &handlers.SearchHandler{Service: searchService},
		tireHandler:        &handlers.TireHandler{Service: tireService},
		wheelHandler:       &handlers.WheelHandler{Service: wheelService},
		fitmentHandler:     &handlers.FitmentHandler{Service: fitmentService},
		cartHandler:        &handlers.CartHandler{Service: cartService},
		favoritesHandler:   &handlers.FavoritesHandler{Service: favoritesService},
		vehicleHandler:     &handlers.VehicleHandler{Service: vehicleService},
		userHandler:        &handlers.UserHandler{Service: userService},
		cityHandler:        &handlers.CityHandler{Service: cityService},
		orderHandler:       &handlers.OrderHandler{Service: orderService},
		appointmentHandler: &handlers.AppointmentHandler{Service: appointmentService},
		newsHandler:        &handlers.NewsHandler{Service: newsService, Uploader: uploader},
		pushHandler:        pushHandler,
	}
	return app, nil
}
