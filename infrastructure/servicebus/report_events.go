package servicebus

import (
	"context"
	"encoding/json"

	"github.com/argha-paul/youtube-adInsights/domain/model"
	"github.com/argha-paul/youtube-adInsights/infrastructure/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
)

const DefaultReportQueue = "report-generated"

// IReportEvents publishes report lifecycle events to Service Bus
type IReportEvents interface {
	PublishReportGenerated(ctx context.Context, report *model.AdInsightReport) error
}

// ReportEvents mirrors the Pub/Sub broadcaster for Azure deployments
type ReportEvents struct {
	AzservicebusClient *azservicebus.Client
	QueueName          string
}

func NewReportEvents(azServiceBusClient *azservicebus.Client, queueName string) IReportEvents {
	if queueName == "" {
		queueName = DefaultReportQueue
	}
	return &ReportEvents{
		AzservicebusClient: azServiceBusClient,
		QueueName:          queueName,
	}
}

// PublishReportGenerated sends the report as a JSON message on the queue
func (r *ReportEvents) PublishReportGenerated(ctx context.Context, report *model.AdInsightReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}

	sender, err := r.AzservicebusClient.NewSender(r.QueueName, nil)
	if err != nil {
		logger.GetLogger().
			WithField("error", err).
			Error("Error while making new sender service bus.")
		return err
	}
	defer func(sender *azservicebus.Sender, ctx context.Context) {
		if err := sender.Close(ctx); err != nil {
			logger.GetLogger().
				WithField("error", err).
				Error("Error while closing sender.")
		}
	}(sender, ctx)

	sbMessage := &azservicebus.Message{
		Body: payload,
	}
	if err := sender.SendMessage(ctx, sbMessage, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return err
	}

	return nil
}
