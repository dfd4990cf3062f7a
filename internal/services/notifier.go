package services

import (
	"context"
	"sync"
	"time"

	"github.com/origem/origem-api/config"
	"github.com/origem/origem-api/pkg/events"
	"github.com/origem/origem-api/pkg/logger"
	"github.com/origem/origem-api/pkg/trigger"
	"go.uber.org/zap"
)

const publishTimeout = 30 * time.Second

// EventNotifier fans a lead event out to the configured webhook trigger and
// the message broker. Both run in the background; the request path never
// waits for them.
type EventNotifier struct {
	triggers    *trigger.Caller
	publisher   events.Publisher
	triggerURLs map[string]string
	wg          sync.WaitGroup
}

var _ LeadNotifier = (*EventNotifier)(nil)

// NewEventNotifier creates a notifier for the trigger URLs in cfg
func NewEventNotifier(cfg *config.Config, triggers *trigger.Caller, publisher events.Publisher) *EventNotifier {
	return &EventNotifier{
		triggers:  triggers,
		publisher: publisher,
		triggerURLs: map[string]string{
			trigger.EventContactCreated:       cfg.EventTriggers.ContactCreatedTriggerURL,
			trigger.EventNewsletterSubscribed: cfg.EventTriggers.NewsletterSubscribedTriggerURL,
		},
	}
}

// Notify fires the webhook trigger and publishes payload under event
func (n *EventNotifier) Notify(ctx context.Context, event, recordID string, payload interface{}) {
	if n.triggers != nil {
		n.triggers.CallAsync(event, n.triggerURLs[event], recordID)
	}

	if n.publisher == nil {
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		if err := n.publisher.Publish(pubCtx, event, payload); err != nil {
			logger.Error("Failed to publish lead event",
				zap.String("event", event),
				zap.String("record_id", recordID),
				zap.Error(err))
		}
	}()
}

// Wait blocks until background deliveries finish
func (n *EventNotifier) Wait() {
	n.wg.Wait()
	if n.triggers != nil {
		n.triggers.Wait()
	}
}
