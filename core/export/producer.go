// Package export implements the asynchronous playlist export pipeline.
// Producer and consumer run in different processes and communicate only
// through a durable queue; this is the system's only async boundary.
package export

import (
	"context"
	"encoding/json"
	"fmt"

	"MeloList/logger"
	"MeloList/model"
)

// OwnerVerifier 所有权校验接口，由 core/access.Resolver 实现
// 导出只对所有者开放，协作者不可导出
type OwnerVerifier interface {
	VerifyOwner(ctx context.Context, playlistID, userID string) error
}

// Publisher 队列发布接口，由 mq 包实现
type Publisher interface {
	Publish(queue string, body []byte) error
}

// publisherFunc 把普通函数适配成 Publisher
type publisherFunc func(queue string, body []byte) error

func (f publisherFunc) Publish(queue string, body []byte) error {
	return f(queue, body)
}

// PublisherFunc 包装一个发布函数为 Publisher
func PublisherFunc(f func(queue string, body []byte) error) Publisher {
	return publisherFunc(f)
}

// Producer 校验导出请求并将其发布到持久化队列
type Producer struct {
	resolver  OwnerVerifier
	publisher Publisher
	queue     string
}

// NewProducer 创建导出生产者
func NewProducer(resolver OwnerVerifier, publisher Publisher, queue string) *Producer {
	return &Producer{resolver: resolver, publisher: publisher, queue: queue}
}

// RequestExport 请求导出歌单
//
// 调用方必须是歌单所有者。发布成功即返回，不等待投递完成；
// 发布失败向调用方返回错误，任务没有进入队列，不会丢数据。
func (p *Producer) RequestExport(ctx context.Context, playlistID, userID, targetEmail string) error {
	if err := p.resolver.VerifyOwner(ctx, playlistID, userID); err != nil {
		return err
	}

	body, err := json.Marshal(model.ExportRequest{
		PlaylistID:  playlistID,
		TargetEmail: targetEmail,
	})
	if err != nil {
		return fmt.Errorf("serializing export request: %w", err)
	}

	if err := p.publisher.Publish(p.queue, body); err != nil {
		return fmt.Errorf("publishing export request: %w", err)
	}

	jobsQueuedTotal.Inc()
	logger.Info("export job queued",
		logger.String("playlistId", playlistID),
		logger.String("queue", p.queue),
	)
	return nil
}
