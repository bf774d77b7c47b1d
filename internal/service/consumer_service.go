package service

import (
	"context"
	"encoding/json"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/ingestion"
	"hr-chatbot-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains ingest events and runs the ingestion pipeline for
// each one. Base-corpus loading goes through here so the web shell never
// blocks on embedding a whole directory.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	pipeline  *ingestion.Pipeline
	log       logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	pipeline *ingestion.Pipeline,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		pipeline:  pipeline,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIngestDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal ingest message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if _, err := cs.pipeline.IngestBaseFile(ctx, payload.Path); err != nil {
		cs.log.Error("consumer", "ingestion failed", map[string]interface{}{
			"path":  payload.Path,
			"error": err.Error(),
		})
		// A broken file will not fix itself on redelivery.
		msg.Ack()
		return
	}

	msg.Ack()
}
