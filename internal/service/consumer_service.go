package service

import (
	"context"
	"encoding/json"

	"grafica-order-bot/internal/dto"
	"grafica-order-bot/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService writes every order event to the structured log. For
// discarded orders this log entry is the only remaining copy of the
// cart, so it carries the full payload for manual re-entry.
type consumerService struct {
	pubSub *gochannel.GoChannel
	logger logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub: pubSub,
		logger: log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	saved, err := cs.pubSub.Subscribe(ctx, dto.TopicOrderSaved)
	if err != nil {
		return err
	}
	discarded, err := cs.pubSub.Subscribe(ctx, dto.TopicOrderDiscarded)
	if err != nil {
		return err
	}

	go func() {
		for msg := range saved {
			cs.processMessage(msg, false)
		}
	}()
	go func() {
		for msg := range discarded {
			cs.processMessage(msg, true)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message, discarded bool) {
	defer msg.Ack()

	var payload dto.OrderEventPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("OrderEvents", "Failed to unmarshal order event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	details := map[string]interface{}{
		"order_id":  payload.OrderId,
		"cliente":   payload.ClientName,
		"entrega":   payload.DeliveryDate,
		"atendente": payload.SubmitterLabel,
		"itens":     payload.Items,
	}

	if discarded {
		details["erro"] = payload.Error
		cs.logger.Error("OrderEvents", "Order discarded after persistence failure, manual re-entry needed", details)
		return
	}
	cs.logger.Info("OrderEvents", "Order persisted", details)
}
