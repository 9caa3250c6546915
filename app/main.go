package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/blog-article-api/internal/repository"
	mysqlRepo "github.com/Guyuepp/blog-article-api/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/blog-article-api/internal/repository/redis"
	"github.com/Guyuepp/blog-article-api/internal/rest"
	"github.com/Guyuepp/blog-article-api/internal/rest/middleware"
	"github.com/Guyuepp/blog-article-api/internal/usecase/article"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file loaded, reading configuration from the environment")
	}
}

func main() {
	cfg := loadConfig(os.Getenv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare database
	db, err := openDatabase(cfg.Database.DSN())
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := mysqlRepo.AutoMigrate(ctx, db); err != nil {
			logrus.Fatal("failed to migrate database: ", err)
		}
		if err := mysqlRepo.Seed(ctx, db); err != nil {
			logrus.Fatal("failed to seed database: ", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// Prepare Repository
	dbc := mysqlRepo.NewDBContext(db)
	userRepo := mysqlRepo.NewUserRepository(dbc)
	feedbackRepo := mysqlRepo.NewFeedbackRepository(dbc)

	articleDBRepo := mysqlRepo.NewArticleDBRepository(dbc)
	articleCache := myRedisCache.NewArticleCache(client)
	bloomRepo := myRedisCache.NewRedisBloomRepo(client, cfg.BloomBitSize)
	articleRepo := repository.NewArticleRepository(articleDBRepo, articleCache, bloomRepo, dbc)

	// Build service Layer
	articleSvc := article.NewService(articleRepo, feedbackRepo, userRepo, articleCache, bloomRepo, dbc)
	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		logrus.Fatal("failed to init bloom filter: ", err)
	}

	// prepare gin
	route := gin.Default()
	route.Use(
		middleware.RequestID(),
		middleware.Metrics(),
		middleware.CORS(),
		middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		middleware.SetRequestContextWithTimeout(cfg.ContextTimeout),
	)
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := route.Group("/", middleware.CurrentUser(cfg.DefaultUserID))
	rest.NewArticleHandler(articleSvc).RegisterRoutes(api)

	// Start Server
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           route,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}
	logrus.Info("Server exiting")
}

// openDatabase retries until the database answers a ping
func openDatabase(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if err = sqlDB.Ping(); err == nil {
					return db, nil
				}
				_ = sqlDB.Close()
			} else {
				err = dbErr
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}
