package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgresRepo "github.com/postline/postline/internal/repository/postgres"
	"github.com/postline/postline/internal/repository/postgres/model"
	redisCache "github.com/postline/postline/internal/repository/redis"
	"github.com/postline/postline/internal/workers"

	"github.com/postline/postline/internal/rest"
	"github.com/postline/postline/internal/rest/middleware"
	"github.com/postline/postline/internal/usecase/bookmark"
	"github.com/postline/postline/internal/usecase/comment"
	"github.com/postline/postline/internal/usecase/notification"
	"github.com/postline/postline/internal/usecase/post"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	defaultCacheDB     = 0
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	var (
		db  *gorm.DB
		err error
	)

	for i := 0; i < dbMaxRetry; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			var sqlDB *sql.DB
			// keep failures in the outer err so the guard below fires
			// when every attempt is exhausted
			sqlDB, err = db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	if err := db.AutoMigrate(
		&model.Post{},
		&model.Comment{},
		&model.CommentLike{},
		&model.Notification{},
		&model.Bookmark{},
	); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	_, err = client.Ping(context.Background()).Result()
	if err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.RequestID())
	route.Use(middleware.Identity())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	postRepo := postgresRepo.NewPostRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	notificationRepo := postgresRepo.NewNotificationRepository(db)
	bookmarkRepo := postgresRepo.NewBookmarkRepository(db)
	threadCache := redisCache.NewThreadCache(client)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fanout := workers.NewFanoutWorker(notificationRepo)
	go fanout.Start(ctx)

	// Build service Layer
	postSvc := post.NewService(postRepo, threadCache)
	commentSvc := comment.NewService(commentRepo, postRepo, threadCache, fanout)
	notificationSvc := notification.NewService(notificationRepo)
	bookmarkSvc := bookmark.NewService(bookmarkRepo, postRepo)

	postHandler := rest.NewPostHandler(postSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	notificationHandler := rest.NewNotificationHandler(notificationSvc)
	bookmarkHandler := rest.NewBookmarkHandler(bookmarkSvc)

	// Register routes
	route.GET("/posts", postHandler.Fetch)
	route.GET("/posts/search", postHandler.Search)
	route.GET("/posts/:id", postHandler.GetByID)
	route.GET("/posts/:id/comments", commentHandler.FetchThread)
	route.GET("/posts/:id/comments/all", commentHandler.FetchFullThread)

	authorized := route.Group("/")
	authorized.Use(middleware.RequireIdentity())
	{
		authorized.POST("/posts", postHandler.Store)
		authorized.DELETE("/posts/:id", postHandler.Delete)
		authorized.POST("/posts/:id/like", postHandler.Like)
		authorized.POST("/posts/:id/comments", commentHandler.Create)
		authorized.POST("/posts/:id/bookmark", bookmarkHandler.Toggle)
		authorized.DELETE("/comments/:id", commentHandler.Delete)
		authorized.POST("/comments/:id/like", commentHandler.Like)
		authorized.GET("/bookmarks", bookmarkHandler.Fetch)
		authorized.GET("/notifications", notificationHandler.Fetch)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
