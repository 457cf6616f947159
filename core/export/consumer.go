package export

import (
	"context"
	"encoding/json"
	"fmt"

	"MeloList/apperror"
	"MeloList/logger"
	"MeloList/model"

	"github.com/streadway/amqp"
)

// State 是导出任务的终态
type State string

const (
	// StateDelivered 任务已通过邮件投递
	StateDelivered State = "delivered"
	// StateDropped 任务被丢弃：消息在投递时即被确认，
	// 之后的任何失败都不会重投，任务只留下日志和计数
	StateDropped State = "dropped"
)

// ExportViewer 提供歌单导出视图，由 core/playlist.Service 实现
type ExportViewer interface {
	GetExportView(ctx context.Context, playlistID string) (*model.PlaylistWithSongs, error)
}

// Mailer 邮件投递接口，任何返回的错误都视为投递失败
type Mailer interface {
	Send(targetEmail, body string) error
}

// Consumer 是独立进程中的导出消费者，单个长驻worker驱动邮件投递
type Consumer struct {
	views  ExportViewer
	mailer Mailer
}

// NewConsumer 创建导出消费者
func NewConsumer(views ExportViewer, mailer Mailer) *Consumer {
	return &Consumer{views: views, mailer: mailer}
}

// Run 消费队列直到通道关闭或上下文取消
// 单条消息的失败不会中断循环
func (c *Consumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	logger.Info("export consumer running")

	for {
		select {
		case <-ctx.Done():
			logger.Info("export consumer stopping", logger.ErrorField(ctx.Err()))
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("export delivery channel closed")
				return
			}
			c.Handle(ctx, d.Body)
		}
	}
}

// Handle 处理一条导出消息并返回任务终态
//
// 消息已经被确认过（autoAck），这里的失败只能丢弃任务：
// 解析失败、歌单在排队期间被删除、邮件投递失败都是Dropped。
func (c *Consumer) Handle(ctx context.Context, body []byte) State {
	var req model.ExportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.drop("parse", "", err)
	}

	view, err := c.views.GetExportView(ctx, req.PlaylistID)
	if err != nil {
		if apperror.IsNotFound(err) {
			// 歌单在任务排队期间被删除，合法竞态
			return c.drop("playlist_gone", req.PlaylistID, err)
		}
		return c.drop("fetch", req.PlaylistID, err)
	}

	doc, err := json.Marshal(model.PlaylistExport{Playlist: *view})
	if err != nil {
		return c.drop("serialize", req.PlaylistID, err)
	}

	if err := c.mailer.Send(req.TargetEmail, string(doc)); err != nil {
		return c.drop("mail", req.PlaylistID, err)
	}

	jobsDeliveredTotal.Inc()
	logger.Info("export job delivered",
		logger.String("playlistId", req.PlaylistID),
		logger.String("targetEmail", req.TargetEmail),
	)
	return StateDelivered
}

func (c *Consumer) drop(reason, playlistID string, err error) State {
	jobsDroppedTotal.WithLabelValues(reason).Inc()
	logger.Error(fmt.Sprintf("export job dropped: %s", reason),
		logger.String("playlistId", playlistID),
		logger.ErrorField(err),
	)
	return StateDropped
}
