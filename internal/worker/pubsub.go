package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/rs/zerolog"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/routestore"
)

// PubSubHandler handles Pub/Sub messages for the worker.
type PubSubHandler struct {
	client           *pubsub.Client
	subscriber       *pubsub.Subscriber
	subscriptionName string
	prewarmJob       *PrewarmJob
	routes           *routestore.Service
	logger           zerolog.Logger
}

// PubSubConfig holds configuration for the Pub/Sub handler.
type PubSubConfig struct {
	ProjectID        string
	SubscriptionName string
	PrewarmJob       *PrewarmJob
	Routes           *routestore.Service
	Logger           zerolog.Logger
}

// PrewarmMessage represents a report prewarm job message. An empty RouteIDs
// list means every registered route.
type PrewarmMessage struct {
	JobType  string   `json:"job_type"`
	RouteIDs []string `json:"route_ids,omitempty"`
}

// NewPubSubHandler creates a new Pub/Sub handler.
func NewPubSubHandler(ctx context.Context, cfg PubSubConfig) (*PubSubHandler, error) {
	client, err := pubsub.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("creating pubsub client: %w", err)
	}

	subscriber := client.Subscriber(cfg.SubscriptionName)

	// Configure receive settings.
	subscriber.ReceiveSettings.MaxOutstandingMessages = 10
	subscriber.ReceiveSettings.MaxExtension = 10 * time.Minute

	return &PubSubHandler{
		client:           client,
		subscriber:       subscriber,
		subscriptionName: cfg.SubscriptionName,
		prewarmJob:       cfg.PrewarmJob,
		routes:           cfg.Routes,
		logger:           cfg.Logger,
	}, nil
}

// Start begins processing Pub/Sub messages.
func (h *PubSubHandler) Start(ctx context.Context) error {
	h.logger.Info().
		Str("subscription", h.subscriptionName).
		Msg("starting pubsub handler")

	return h.subscriber.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		h.handleMessage(ctx, msg)
	})
}

// Close closes the Pub/Sub client.
func (h *PubSubHandler) Close() error {
	return h.client.Close()
}

func (h *PubSubHandler) handleMessage(ctx context.Context, msg *pubsub.Message) {
	startTime := time.Now()

	logger := h.logger.With().
		Str("message_id", msg.ID).
		Str("publish_time", msg.PublishTime.Format(time.RFC3339)).
		Logger()

	logger.Debug().Msg("received pubsub message")

	var prewarmMsg PrewarmMessage
	if err := json.Unmarshal(msg.Data, &prewarmMsg); err != nil {
		logger.Error().Err(err).Msg("failed to parse message")
		msg.Nack()
		return
	}

	var err error
	switch prewarmMsg.JobType {
	case "report_prewarm":
		err = h.handleReportPrewarm(ctx, prewarmMsg)
	default:
		logger.Warn().Str("job_type", prewarmMsg.JobType).Msg("unknown job type")
		msg.Ack() // Ack unknown messages to prevent redelivery
		return
	}

	if err != nil {
		logger.Error().Err(err).Msg("job failed")
		msg.Nack()
		return
	}

	duration := time.Since(startTime)
	logger.Info().
		Str("job_type", prewarmMsg.JobType).
		Dur("duration", duration).
		Msg("job completed successfully")

	msg.Ack()
}

func (h *PubSubHandler) handleReportPrewarm(ctx context.Context, msg PrewarmMessage) error {
	routeIDs := msg.RouteIDs
	if len(routeIDs) == 0 {
		ids, err := h.routes.RouteIDs(ctx)
		if err != nil {
			return fmt.Errorf("listing routes: %w", err)
		}
		routeIDs = ids
	}

	if len(routeIDs) == 0 {
		h.logger.Info().Msg("no routes registered, nothing to prewarm")
		return nil
	}

	result := h.prewarmJob.Run(ctx, routeIDs)

	if rate := result.FailureRate(); rate > h.prewarmJob.config.FailureThreshold {
		return fmt.Errorf("too many prewarm failures: %d/%d", result.Failed, result.TotalRoutes)
	}

	return nil
}
