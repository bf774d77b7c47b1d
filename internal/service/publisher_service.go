package service

import (
	"encoding/json"
	"path/filepath"

	"hr-chatbot-be/internal/dto"
	"hr-chatbot-be/internal/ingestion"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishIngestDocument(path string) error
	PublishIngestDirectory(dir string) (int, error)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (ps *publisherService) PublishIngestDocument(path string) error {
	payload, err := json.Marshal(dto.PublishIngestDocumentMessage{Path: path})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return ps.pubSub.Publish(ps.topicName, msg)
}

// PublishIngestDirectory emits one ingest event per supported file in dir and
// returns how many were published.
func (ps *publisherService) PublishIngestDirectory(dir string) (int, error) {
	names := ingestion.ListDocumentNames(dir)
	published := 0
	for _, name := range names {
		if err := ps.PublishIngestDocument(filepath.Join(dir, name)); err != nil {
			return published, err
		}
		published++
	}
	return published, nil
}
