package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mebelstore/internal/app/admin/config"
	"mebelstore/internal/app/admin/entity"
	"mebelstore/internal/app/admin/handler"
	"mebelstore/internal/app/admin/processor"
	"mebelstore/internal/app/admin/repository"
	"mebelstore/internal/app/admin/service"
	"mebelstore/internal/app/admin/util"
	"mebelstore/pkg/logger"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	// .env удобен для локальной разработки, в контейнерах его нет
	_ = godotenv.Load()

	logger.Init("admin", os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// === POSTGRESQL ===
	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	logger.Info().Msg("connected to PostgreSQL")

	if err := migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	// === REDIS ===
	redisClient, err := util.NewRedisClient(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	logger.Info().Msg("connected to Redis")

	// === KAFKA ===
	kafkaProducer := util.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer kafkaProducer.Close()
	logger.Info().Strs("brokers", cfg.Kafka.Brokers).Msg("kafka producer initialized")

	// === MONGODB (журнал действий) ===
	var auditRepo repository.AuditRepository
	if cfg.Mongo.Enabled {
		auditRepo, err = connectAudit(cfg.Mongo)
		if err != nil {
			// журнал не критичен для работы, стартуем без него
			logger.Warn().Err(err).Msg("audit log disabled: mongodb unavailable")
		} else {
			logger.Info().Msg("connected to MongoDB")
		}
	}

	// === ФАЙЛОВОЕ ХРАНИЛИЩЕ И ВНЕШНИЕ КЛИЕНТЫ ===
	fileStore, err := util.NewFileStore(cfg.Upload.Dir, cfg.Upload.MaxFileSize)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init file store")
	}

	telegramClient := util.NewTelegramClient(cfg.Telegram.BotToken, cfg.Telegram.BaseURL)
	jwtManager := util.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	// === РЕПОЗИТОРИИ ===
	productRepo := repository.NewProductRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	manufacturerRepo := repository.NewManufacturerRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	// === СЕРВИСЫ ===
	productService := service.NewProductService(
		productRepo,
		groupRepo,
		fileStore,
		telegramClient,
		kafkaProducer,
		cfg.Server.PublicURL,
	)
	taxonomyService := service.NewTaxonomyService(catalogRepo, categoryRepo, manufacturerRepo, redisClient)
	storeService := service.NewStoreService(storeRepo, cfg.Server.PublicURL)
	authService := service.NewAuthService(adminRepo, jwtManager, cfg.Auth.SuperAdminPassword)
	groupService := service.NewGroupService(groupRepo)

	// === ХЕНДЛЕРЫ И РОУТЕР ===
	handlers := handler.Handlers{
		Product:  handler.NewProductHandler(productService, fileStore, cfg.Upload.MaxFiles),
		Taxonomy: handler.NewTaxonomyHandler(taxonomyService),
		Store:    handler.NewStoreHandler(storeService, fileStore, cfg.Upload.MaxFiles),
		Auth:     handler.NewAuthHandler(authService),
		Group:    handler.NewGroupHandler(groupService),
		Image:    handler.NewImageHandler(cfg.Upload.Dir),
	}
	authMiddleware := handler.NewAuthMiddleware(jwtManager)
	router := handler.SetupRoutes(handlers, authMiddleware, auditRepo, cfg.CORS.AllowOrigins)

	// === ПЛАНИРОВЩИК ОЧИСТКИ ===
	cleanup := processor.NewCleanupScheduler(productRepo, storeRepo, fileStore, cfg.Cleanup.MinAge)
	if err := cleanup.Start(context.Background(), cfg.Cleanup.Schedule); err != nil {
		logger.Fatal().Err(err).Msg("failed to start cleanup scheduler")
	}
	defer cleanup.Stop()

	// === HTTP СЕРВЕР ===
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Server.Address()).Msg("starting admin backend")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// === GRACEFUL SHUTDOWN ===
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("stopped gracefully")
}

// connectDB подключается к PostgreSQL через GORM с повторными попытками.
// При запуске в Docker база может быть еще не готова.
func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
			TranslateError: true,
		})
		if err == nil {
			break
		}
		logger.Warn().Err(err).Int("attempt", i+1).Msg("database connection failed, retrying")
		time.Sleep(3 * time.Second)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// migrate создает недостающие таблицы и индексы
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Catalog{},
		&entity.Category{},
		&entity.Manufacturer{},
		&entity.Product{},
		&entity.Dimension{},
		&entity.Image{},
		&entity.Color{},
		&entity.Admin{},
		&entity.Store{},
		&entity.StoreAddress{},
		&entity.StorePhone{},
		&entity.StoreEmail{},
		&entity.StoreImage{},
		&entity.TelegramGroup{},
	)
}

// connectAudit подключается к MongoDB и заводит репозиторий журнала
func connectAudit(cfg config.MongoConfig) (repository.AuditRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return repository.NewAuditRepository(client.Database(cfg.Database))
}
