package cmd

import (
	"fmt"
	"log"

	"MeloList/config"
	"MeloList/mq"

	"github.com/spf13/cobra"
)

var rabbitCmd = &cobra.Command{
	Use:   "rabbit",
	Short: "RabbitMQ连接测试",
	Long:  `测试RabbitMQ连接是否成功，并声明导出队列。`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("RabbitMQ配置: %s\n", cfg.RabbitURL)

		if err := mq.Connect(cfg.RabbitURL); err != nil {
			log.Fatalf("无法连接到RabbitMQ: %v", err)
		}
		fmt.Println("RabbitMQ连接成功！")

		if err := mq.DeclareQueue(cfg.ExportQueueName); err != nil {
			log.Fatalf("导出队列声明失败: %v", err)
		}
		fmt.Printf("队列 %s 声明成功！\n", cfg.ExportQueueName)

		mq.Close()
		fmt.Println("RabbitMQ测试完成，连接已关闭。")
	},
}

func init() {
	rootCmd.AddCommand(rabbitCmd)
}
