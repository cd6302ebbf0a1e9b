package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"gigconnect/pkg/config"
	"gigconnect/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	Exchange              = "gigconnect"
	NotificationQueueName = "notification_queue"
	NotificationKey       = "notification"
	RewardQueueName       = "reward_queue"
	RewardKey             = "job_reward"
)

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		Exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	queues := []struct {
		name string
		key  string
	}{
		{NotificationQueueName, NotificationKey},
		{RewardQueueName, RewardKey},
	}

	for _, q := range queues {
		_, err = channel.QueueDeclare(
			q.name, // name
			true,   // durable
			false,  // delete when unused
			false,  // exclusive
			false,  // no-wait
			nil,    // arguments
		)
		if err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", q.name, err)
		}

		err = channel.QueueBind(q.name, q.key, Exchange, false, nil)
		if err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue %s: %w", q.name, err)
		}
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) publish(routingKey string, task map[string]interface{}) error {
	taskJSON, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	err = c.channel.Publish(
		Exchange,   // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         taskJSON,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish message to exchange=%s, routing_key=%s: %v", Exchange, routingKey, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Info("[RABBITMQ] Published task to exchange=%s, routing_key=%s: %s", Exchange, routingKey, string(taskJSON))
	return nil
}

// PublishNotificationTask publishes an applicant/poster notification task.
func (c *Client) PublishNotificationTask(task map[string]interface{}) error {
	return c.publish(NotificationKey, task)
}

// PublishRewardTask publishes a job-completion coin reward task.
func (c *Client) PublishRewardTask(task map[string]interface{}) error {
	return c.publish(RewardKey, task)
}

// ConsumeRewardTasks consumes job-completion reward tasks from the queue.
func (c *Client) ConsumeRewardTasks(handler func(task map[string]interface{}) error) error {
	msgs, err := c.channel.Consume(
		RewardQueueName, // queue
		"",              // consumer
		false,           // auto-ack (we'll manually ack after processing)
		false,           // exclusive
		false,           // no-local
		false,           // no-wait
		nil,             // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from reward queue: %s", RewardQueueName)

	go func() {
		for msg := range msgs {
			var task map[string]interface{}
			if err := json.Unmarshal(msg.Body, &task); err != nil {
				c.logger.Error("[RABBITMQ] Failed to unmarshal reward task: %v, body=%s", err, string(msg.Body))
				msg.Nack(false, false) // Reject and don't requeue
				continue
			}

			if err := handler(task); err != nil {
				c.logger.Error("[RABBITMQ] Handler failed to process reward task: %v, task=%+v", err, task)
				msg.Nack(false, true) // Reject and requeue
				continue
			}

			msg.Ack(false)
		}
	}()

	return nil
}

// GetQueueLength returns the number of messages in the reward queue.
func (c *Client) GetQueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(RewardQueueName)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}
