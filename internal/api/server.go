package api

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"serviapp/internal/app/config"
	"serviapp/internal/app/dsn"
	"serviapp/internal/app/handler"
	"serviapp/internal/app/middleware"
	"serviapp/internal/app/redis"
	"serviapp/internal/app/repository"
	"serviapp/internal/app/storage"
	"serviapp/internal/pkg"
)

// @title ServiApp API
// @version 1.0
// @description API del marketplace de servicios: catálogo, contrataciones, pagos y calificaciones

// @host localhost:8080
// @schemes http
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// StartServer arma todas las dependencias y levanta el servidor
func StartServer() {
	logrus.Info("Starting application")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("Error de configuración: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("Error inicializando el repositorio: ", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatal("Error conectando a Redis: ", err)
	}

	minioClient, err := storage.NewMinIOClient(
		cfg.Minio.Endpoint,
		cfg.Minio.AccessKey,
		cfg.Minio.SecretKey,
		cfg.Minio.Bucket,
		cfg.Minio.UseSSL,
	)
	if err != nil {
		logrus.Fatal("Error conectando a MinIO: ", err)
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app := pkg.NewApp(cfg, router, apiHandler, authMiddleware)
	app.RunApp()
}
