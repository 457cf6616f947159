// Package mq owns the process-wide RabbitMQ connection. Producer and
// consumer share one lazily established connection and channel; the
// initialization is guarded so concurrent first uses open exactly one.
package mq

import (
	"fmt"
	"sync"

	"github.com/streadway/amqp"
)

var (
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
)

// Connect 建立到RabbitMQ的连接和通道
// 成功后复用同一个连接；失败不留任何状态，下一次调用重新拨号。
// 已建立的连接断开后不会自动重连
func Connect(url string) error {
	mu.Lock()
	defer mu.Unlock()

	if channel != nil {
		return nil
	}

	c, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := c.Channel()
	if err != nil {
		c.Close()
		return fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	conn = c
	channel = ch
	return nil
}

// Channel 返回共享通道，连接未建立时返回错误
func Channel() (*amqp.Channel, error) {
	mu.Lock()
	defer mu.Unlock()

	if channel == nil {
		return nil, fmt.Errorf("RabbitMQ channel not initialized")
	}
	return channel, nil
}

// DeclareQueue 声明持久化队列，队列和消息在broker重启后保留
func DeclareQueue(name string) error {
	ch, err := Channel()
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(
		name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", name, err)
	}
	return nil
}

// Publish 以持久化投递模式向队列发布一条消息
func Publish(queue string, body []byte) error {
	ch, err := Channel()
	if err != nil {
		return err
	}

	err = ch.Publish(
		"",    // exchange
		queue, // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", queue, err)
	}
	return nil
}

// Consume 以autoAck模式订阅队列
// 消息在投递时即被确认，处理失败不会重投
func Consume(queue string) (<-chan amqp.Delivery, error) {
	ch, err := Channel()
	if err != nil {
		return nil, err
	}

	msgs, err := ch.Consume(
		queue,
		"",    // consumer tag
		true,  // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to consume queue %s: %w", queue, err)
	}
	return msgs, nil
}

// Close 关闭通道和连接
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if channel != nil {
		channel.Close()
		channel = nil
	}
	if conn != nil {
		conn.Close()
		conn = nil
	}
}
