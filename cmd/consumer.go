package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"MeloList/config"
	"MeloList/core/export"
	"MeloList/core/mail"
	"MeloList/db"
	"MeloList/logger"
	"MeloList/mq"
	"MeloList/repository"

	"github.com/spf13/cobra"
)

var consumerCmd = &cobra.Command{
	Use:   "consumer",
	Short: "启动歌单导出消费者",
	Long: `启动独立的导出消费进程：订阅导出队列，读取歌单导出视图，
通过邮件投递给目标邮箱。与API服务只通过队列通信。`,
	Run: func(cmd *cobra.Command, args []string) {
		runConsumer()
	},
}

func init() {
	rootCmd.AddCommand(consumerCmd)
}

func runConsumer() {
	cfg := config.Load()

	logger.InitLogger(logger.Config{
		Level:      logger.InfoLevel,
		OutputPath: cfg.LogPath,
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	})

	if err := db.ConnectDB(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.DB.Close()

	// 消费进程在启动阶段就建立队列连接，连接断开后进程退出由上层重启
	if err := mq.Connect(cfg.RabbitURL); err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mq.Close()

	if err := mq.DeclareQueue(cfg.ExportQueueName); err != nil {
		log.Fatalf("Failed to declare export queue: %v", err)
	}

	deliveries, err := mq.Consume(cfg.ExportQueueName)
	if err != nil {
		log.Fatalf("Failed to consume export queue: %v", err)
	}

	playlistRepo := repository.NewMySQLPlaylistRepository(db.DB)
	viewer := export.NewPlaylistViewer(playlistRepo)
	mailer := mail.NewSMTPMailer(cfg)
	consumer := export.NewConsumer(viewer, mailer)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	log.Println("Export consumer service is running")
	consumer.Run(ctx, deliveries)
}
