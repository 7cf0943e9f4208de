// internal/queue/publisher.go
package queue

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// CampaignCreatedEvent is published after a campaign creation request has
// completed every orchestration step.
type CampaignCreatedEvent struct {
	CampaignID   int64  `json:"campaign_id"`
	Kind         string `json:"kind"`
	AdvertiserNo int64  `json:"advertiser_no"`
}

// Publisher emits campaign lifecycle events. Publishing is best-effort:
// callers log failures and never fail the originating request on one.
type Publisher interface {
	PublishCampaignCreated(event CampaignCreatedEvent) error
	Close() error
}

const campaignEventsQueue = "campaign_events"

type AMQPPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		campaignEventsQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: ch, queue: campaignEventsQueue}, nil
}

func (p *AMQPPublisher) PublishCampaignCreated(event CampaignCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	return p.channel.Publish(
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
