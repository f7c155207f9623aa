package main

import (
	"database/sql"
	"log"
	"net/http"

	"firebase.google.com/go/messaging"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"traveleon/internal/config"
	"traveleon/internal/handlers"
	"traveleon/internal/repositories"
	"traveleon/internal/services"
	"traveleon/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	signingKey string

	userRepo     *repositories.UserRepository
	chatRoomRepo *repositories.ChatRoomRepository
	presence     *services.PresenceService
	hub          *Hub

	userHandler          *handlers.UserHandler
	locationHandler      *handlers.LocationHandler
	accommodationHandler *handlers.AccommodationHandler
	vehicleHandler       *handlers.VehicleHandler
	tourGuideHandler     *handlers.TourGuideHandler
	restaurantHandler    *handlers.RestaurantHandler
	adventureHandler     *handlers.AdventureHandler
	emergencyHandler     *handlers.EmergencyHandler
	chatRoomHandler      *handlers.ChatRoomHandler
	messageHandler       *handlers.MessageHandler
	pushHandler          *handlers.PushHandler

	messageService *services.MessageService
}

func initializeApp(db *sql.DB, cfg config.Config, fcmClient *messaging.Client, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	locationRepo := repositories.LocationRepository{DB: db}
	accommodationRepo := repositories.AccommodationRepository{DB: db}
	vehicleRepo := repositories.VehicleRepository{DB: db}
	tourGuideRepo := repositories.TourGuideRepository{DB: db}
	restaurantRepo := repositories.RestaurantRepository{DB: db}
	adventureRepo := repositories.AdventureRepository{DB: db}
	emergencyRepo := repositories.EmergencyRepository{DB: db}
	chatRoomRepo := repositories.ChatRoomRepository{Db: db}
	messageRepo := repositories.MessageRepository{Db: db}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	presence := services.NewPresenceService(rdb)

	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey)
	if err != nil {
		errorLog.Fatal(err)
	}

	storage, err := utils.NewStorage(
		cfg.Storage.AccessKey,
		cfg.Storage.SecretKey,
		cfg.Storage.Bucket,
		cfg.Storage.Region,
		cfg.Storage.Endpoint,
	)
	if err != nil {
		infoLog.Printf("File storage disabled: %v", err)
		storage = nil
	}

	// Services
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
		SigningKey:   cfg.JWT.SigningKey,
	}
	locationService := &services.LocationService{LocationRepo: &locationRepo}
	accommodationService := &services.AccommodationService{AccommodationRepo: &accommodationRepo}
	vehicleService := &services.VehicleService{VehicleRepo: &vehicleRepo}
	tourGuideService := &services.TourGuideService{TourGuideRepo: &tourGuideRepo}
	restaurantService := &services.RestaurantService{RestaurantRepo: &restaurantRepo}
	adventureService := &services.AdventureService{AdventureRepo: &adventureRepo}
	emergencyService := &services.EmergencyServiceService{EmergencyRepo: &emergencyRepo}
	chatRoomService := &services.ChatRoomService{
		Rooms:    &chatRoomRepo,
		Messages: &messageRepo,
		Users:    &userRepo,
		Presence: presence,
	}
	messageService := &services.MessageService{
		MessageRepo: &messageRepo,
		RoomRepo:    &chatRoomRepo,
		UserRepo:    &userRepo,
	}

	// Handlers
	pushHandler := &handlers.PushHandler{
		Client:   fcmClient,
		Users:    &userRepo,
		Rooms:    &chatRoomRepo,
		Presence: presence,
	}
	userHandler := &handlers.UserHandler{Service: userService, Storage: storage}
	locationHandler := &handlers.LocationHandler{Service: locationService}
	accommodationHandler := &handlers.AccommodationHandler{Service: accommodationService}
	vehicleHandler := &handlers.VehicleHandler{Service: vehicleService}
	tourGuideHandler := &handlers.TourGuideHandler{Service: tourGuideService}
	restaurantHandler := &handlers.RestaurantHandler{Service: restaurantService}
	adventureHandler := &handlers.AdventureHandler{Service: adventureService}
	emergencyHandler := &handlers.EmergencyHandler{Service: emergencyService}
	chatRoomHandler := &handlers.ChatRoomHandler{Service: chatRoomService}
	messageHandler := &handlers.MessageHandler{
		Service:     messageService,
		RoomService: chatRoomService,
	}

	hub := NewHub()

	app := &application{
		errorLog:             errorLog,
		infoLog:              infoLog,
		db:                   db,
		signingKey:           cfg.JWT.SigningKey,
		userRepo:             &userRepo,
		chatRoomRepo:         &chatRoomRepo,
		presence:             presence,
		hub:                  hub,
		userHandler:          userHandler,
		locationHandler:      locationHandler,
		accommodationHandler: accommodationHandler,
		vehicleHandler:       vehicleHandler,
		tourGuideHandler:     tourGuideHandler,
		restaurantHandler:    restaurantHandler,
		adventureHandler:     adventureHandler,
		emergencyHandler:     emergencyHandler,
		chatRoomHandler:      chatRoomHandler,
		messageHandler:       messageHandler,
		pushHandler:          pushHandler,
		messageService:       messageService,
	}

	// HTTP sends fan out through the same path as websocket sends
	messageHandler.Deliver = app.deliverChatMessage

	return app
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
