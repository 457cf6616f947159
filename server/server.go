package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MeloList/cache"
	"MeloList/config"
	"MeloList/core/access"
	"MeloList/core/album"
	"MeloList/core/auth"
	"MeloList/core/collab"
	"MeloList/core/export"
	"MeloList/core/playlist"
	"MeloList/db"
	"MeloList/logger"
	"MeloList/model"
	"MeloList/mq"
	"MeloList/repository"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Start initializes and starts the HTTP server.
func Start() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.InfoLevel,
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	})

	auth.Init(cfg.JWTSecret)

	// Connect to the database
	if err := db.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.DB.Close()

	if err := db.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// GORM连接与 *sql.DB 并存，协作模块使用
	if err := db.ConnectGormDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database with GORM: %v", err)
	}
	defer db.CloseGormDB()

	if err := db.AutoMigrateModels(&model.Collaboration{}); err != nil {
		log.Fatalf("Failed to migrate collaboration model: %v", err)
	}

	// Connect to Redis
	if err := cache.ConnectRedis(cfg); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer cache.CloseRedis()
	log.Println("Successfully connected to Redis")

	playlistRepo := repository.NewMySQLPlaylistRepository(db.DB)
	songRepo := repository.NewMySQLSongRepository(db.DB)
	userRepo := repository.NewMySQLUserRepository(db.DB)
	albumRepo := repository.NewMySQLAlbumRepository(db.DB)
	likeRepo := repository.NewMySQLLikeRepository(db.DB)
	activityRepo := repository.NewMySQLActivityRepository(db.DB)
	collabRepo := repository.NewGormCollaborationRepository(db.GormDB)

	resolver := access.NewResolver(playlistRepo, access.NewCollaborationOracle(collabRepo))
	likeCache := cache.NewRedisLikeCache(cache.RedisClient, 0)

	playlistService := playlist.NewService(playlistRepo, songRepo, activityRepo, resolver)
	albumService := album.NewService(albumRepo, likeRepo, likeCache)
	collabService := collab.NewService(collabRepo, userRepo, resolver)

	// 队列连接在第一次发布时才建立，声明和发布都走同一个共享通道
	publisher := export.PublisherFunc(func(queue string, body []byte) error {
		if err := mq.Connect(cfg.RabbitURL); err != nil {
			return err
		}
		if err := mq.DeclareQueue(queue); err != nil {
			return err
		}
		return mq.Publish(queue, body)
	})
	exportProducer := export.NewProducer(resolver, publisher, cfg.ExportQueueName)
	defer mq.Close()

	apiHandler := NewAPIHandler(playlistService, albumService, collabService, exportProducer, songRepo, userRepo, cfg)

	// 使用 gorilla/mux 创建路由器
	router := mux.NewRouter()

	// 添加 CORS 中间件
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	})

	// 歌单相关的API端点
	router.HandleFunc("/api/playlists", apiHandler.AuthMiddleware(apiHandler.CreatePlaylistHandler)).Methods(http.MethodPost)
	router.HandleFunc("/api/playlists", apiHandler.AuthMiddleware(apiHandler.GetPlaylistsHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/playlists/{id}", apiHandler.AuthMiddleware(apiHandler.DeletePlaylistHandler)).Methods(http.MethodDelete)
	router.HandleFunc("/api/playlists/{id}/songs", apiHandler.AuthMiddleware(apiHandler.AddPlaylistSongHandler)).Methods(http.MethodPost)
	router.HandleFunc("/api/playlists/{id}/songs", apiHandler.AuthMiddleware(apiHandler.GetPlaylistSongsHandler)).Methods(http.MethodGet)
	router.HandleFunc("/api/playlists/{id}/songs", apiHandler.AuthMiddleware(apiHandler.RemovePlaylistSongHandler)).Methods(http.MethodDelete)
	router.HandleFunc("/api/playlists/{id}/activities", apiHandler.AuthMiddleware(apiHandler.GetPlaylistActivitiesHandler)).Methods(http.MethodGet)

	// 专辑相关的API端点
	router.HandleFunc("/api/albums", apiHandler.CreateAlbumHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/albums/{id}", apiHandler.GetAlbumHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/albums/{id}", apiHandler.UpdateAlbumHandler).Methods(http.MethodPut)
	router.HandleFunc("/api/albums/{id}", apiHandler.DeleteAlbumHandler).Methods(http.MethodDelete)
	router.HandleFunc("/api/albums/{id}/likes", apiHandler.AuthMiddleware(apiHandler.AddAlbumLikeHandler)).Methods(http.MethodPost)
	router.HandleFunc("/api/albums/{id}/likes", apiHandler.AuthMiddleware(apiHandler.RemoveAlbumLikeHandler)).Methods(http.MethodDelete)
	router.HandleFunc("/api/albums/{id}/likes", apiHandler.GetAlbumLikesHandler).Methods(http.MethodGet)

	// 歌曲相关的API端点
	router.HandleFunc("/api/songs", apiHandler.CreateSongHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/songs", apiHandler.GetSongsHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/songs/{id}", apiHandler.GetSongHandler).Methods(http.MethodGet)

	// 用户和协作相关的API端点
	router.HandleFunc("/api/users", apiHandler.CreateUserHandler).Methods(http.MethodPost)
	router.HandleFunc("/api/users/{id}", apiHandler.GetUserHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/collaborations", apiHandler.AuthMiddleware(apiHandler.AddCollaborationHandler)).Methods(http.MethodPost)
	router.HandleFunc("/api/collaborations", apiHandler.AuthMiddleware(apiHandler.RemoveCollaborationHandler)).Methods(http.MethodDelete)

	// 导出相关的API端点
	router.HandleFunc("/api/export/playlists/{id}", apiHandler.AuthMiddleware(apiHandler.ExportPlaylistHandler)).Methods(http.MethodPost)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("MeloList server listening on :%s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// 等待退出信号，优雅关停
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
