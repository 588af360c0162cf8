package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ODILJON-QOBILOV/e-commerce-1.0/config"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/models"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/pkg/logging"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/repository"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/routes"
	"github.com/ODILJON-QOBILOV/e-commerce-1.0/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db := initDatabase(cfg, logger)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.SubCategory{},
		&models.Product{},
		&models.ProductImage{},
		&models.Comment{},
		&models.CartLine{},
		&models.Order{},
	); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	users := repository.NewUserRepository(db, logger)
	products := repository.NewProductRepository(db, logger)
	carts := repository.NewCartRepository(db, logger)
	orders := repository.NewOrderRepository(db, logger)
	comments := repository.NewCommentRepository(db, logger)

	routes.SetupRoutes(r, routes.Deps{
		JWTSecret: cfg.JWTSecret,
		Auth:      services.NewAuthService(users, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL, logger),
		Catalog:   services.NewCatalogService(products, comments, logger),
		Cart:      services.NewCartService(products, carts, logger),
		Orders:    services.NewOrderService(orders, logger),
	})

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection.
func initDatabase(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	return db
}
