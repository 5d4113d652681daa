package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/Zhi-Yan1103/NZ-Discovery/internal/repository/mysql"
	redisRepo "github.com/Zhi-Yan1103/NZ-Discovery/internal/repository/redis"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/rest"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/rest/middleware"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/usecase/article"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/usecase/comment"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/usecase/notification"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/usecase/user"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/workers"
)

const (
	defaultTimeout          = 30
	defaultAddress          = ":9090"
	defaultCacheDB          = 0
	defaultBloomBitSize     = 10000000
	defaultReconcileMinutes = 10
	dbMaxRetry              = 10
	dbRetryIntervalSec      = 2
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
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "Pacific/Auckland")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
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
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	followRepo := mysqlRepo.NewFollowRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	articleRepo := mysqlRepo.NewArticleRepository(db)
	notificationRepo := mysqlRepo.NewNotificationRepository(db)

	articleCache := redisRepo.NewArticleCache(client)
	countCache := redisRepo.NewNotificationCountCache(client)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := redisRepo.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reconcileMinutesStr := os.Getenv("LIKES_RECONCILE_MINUTES")
	reconcileMinutes, err := strconv.Atoi(reconcileMinutesStr)
	if err != nil {
		reconcileMinutes = defaultReconcileMinutes
	}
	likesReconciler := workers.NewReconcileLikesWorker(articleRepo, time.Duration(reconcileMinutes)*time.Minute)
	go likesReconciler.Start(ctx)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}
	notificationSvc := notification.NewService(notificationRepo, followRepo, countCache)
	articleSvc := article.NewService(articleRepo, articleCache, bloomRepo, notificationSvc)
	userSvc := user.NewService(userRepo, followRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)
	commentSvc := comment.NewService(commentRepo, articleRepo, userRepo, bloomRepo)

	articleHandler := rest.NewArticleHandler(articleSvc)
	userHandler := rest.NewUserHandler(userSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	notificationHandler := rest.NewNotificationHandler(notificationSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Prepare bloom filter
	if err := articleSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/articles", articleHandler.FetchAll)
	route.GET("/articles/search", articleHandler.Search)
	route.GET("/articles/:id", articleHandler.GetByID)
	route.GET("/articles/:id/likes", articleHandler.GetLikes)

	route.GET("/comments/article/:articleId", commentHandler.FetchByArticle)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/users/me", userHandler.Me)
		authorized.PATCH("/users/me", userHandler.UpdateMe)
		authorized.GET("/users/me/followers", userHandler.Followers)
		authorized.GET("/users/me/followings", userHandler.Followings)
		authorized.GET("/users/me/followings/:username", userHandler.FollowStatus)
		authorized.POST("/users/me/followings/:username", userHandler.Follow)
		authorized.DELETE("/users/me/followings/:username", userHandler.Unfollow)

		authorized.GET("/articles/myarticles", articleHandler.GetMyArticles)
		authorized.POST("/articles/newarticles", articleHandler.Store)
		authorized.PATCH("/articles/update/:id", articleHandler.Update)
		authorized.DELETE("/articles/delete/:id", articleHandler.Delete)
		authorized.GET("/articles/:id/like", articleHandler.LikeStatus)
		authorized.POST("/articles/:id/like", articleHandler.ToggleLike)

		authorized.POST("/comments", commentHandler.Create)
		authorized.DELETE("/comments/:id", commentHandler.Delete)

		authorized.GET("/user/notifications", notificationHandler.Fetch)
		authorized.GET("/user/notifications/counts", notificationHandler.Counts)
		authorized.PUT("/user/notifications/:id", notificationHandler.MarkRead)
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
