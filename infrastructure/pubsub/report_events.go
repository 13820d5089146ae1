package pubsub

import (
	"context"
	"encoding/json"
	"log"

	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/infrastructure/logger"

	"cloud.google.com/go/pubsub"
)

const DefaultReportTopic = "report-generated"

// IReportEvents publishes report lifecycle events to Pub/Sub
type IReportEvents interface {
	PublishReportGenerated(ctx context.Context, report *model.AdInsightReport) error
}

// ReportEvents broadcasts generated reports on a Pub/Sub topic so downstream
// consumers (dashboards, alerting) pick them up without polling the store.
type ReportEvents struct {
	PubSubClient *pubsub.Client
	TopicName    string
}

func NewReportEvents(pubSubClient *pubsub.Client, topicName string) IReportEvents {
	if topicName == "" {
		topicName = DefaultReportTopic
	}
	return &ReportEvents{
		PubSubClient: pubSubClient,
		TopicName:    topicName,
	}
}

// PublishReportGenerated sends the report as a JSON message, creating the
// topic on first use.
func (r *ReportEvents) PublishReportGenerated(ctx context.Context, report *model.AdInsightReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}

	topic := r.PubSubClient.Topic(r.TopicName)

	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		log.Printf("Topic %v doesn't exist - creating it", r.TopicName)
		if _, err := r.PubSubClient.CreateTopic(ctx, r.TopicName); err != nil {
			return err
		}
	}

	serverID, err := topic.Publish(ctx, &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"videoId":   report.VideoID,
			"channelId": report.ChannelID,
		},
	}).Get(ctx)
	if err != nil {
		return err
	}

	logger.GetLogger().WithField("serverId", serverID).WithField("videoId", report.VideoID).Info("Report event published")
	return nil
}
