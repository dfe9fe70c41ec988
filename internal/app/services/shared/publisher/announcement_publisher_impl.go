package publisher

import (
	"context"
	"embrew-service/internal/app/contracts"
	"embrew-service/internal/app/models"
	"embrew-service/internal/pkg/constvars"
	"embrew-service/internal/pkg/exceptions"
	"embrew-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the subset of *amqp091.Channel the publisher needs.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type announcementPublisher struct {
	Channel amqpChannel
	Queue   string
	Log     *zap.Logger
}

// NewAnnouncementPublisher opens a channel and declares the durable announcement queue.
func NewAnnouncementPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.AnnouncementPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, exceptions.ErrMessagingChannel(err)
	}

	_, err = channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, exceptions.ErrMessagingDeclareQueue(err, queue)
	}

	return &announcementPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *announcementPublisher) PublishAnnouncement(ctx context.Context, announcement *models.Announcement) error {
	requestID := utils.GetRequestID(ctx)
	p.Log.Info("announcementPublisher.PublishAnnouncement called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, announcement.ID),
		zap.Int(constvars.LoggingClosureCountKey, len(announcement.Closures)),
	)

	body, err := json.Marshal(announcement)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		MessageId:    announcement.ID,
		Timestamp:    announcement.GeneratedAt,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("announcementPublisher.PublishAnnouncement error publishing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrMessagingPublish(err, p.Queue)
	}

	p.Log.Info("announcementPublisher.PublishAnnouncement succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingMessageIDKey, announcement.ID),
	)
	return nil
}
