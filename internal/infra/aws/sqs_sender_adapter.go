package aws

import (
	"context"
	"time"

	"go-weather/internal/domain/gateway/queue"
	"go-weather/internal/domain/model"
	"go-weather/pkg/sqs"
)

// SQSSenderAdapter adapts the pkg/sqs.Sender to the domain queue interfaces
type SQSSenderAdapter struct {
	sqsSender *sqs.Sender
	queueName string
}

var (
	_ queue.Sender        = (*SQSSenderAdapter)(nil)
	_ queue.HealthGateway = (*SQSSenderAdapter)(nil)
)

// NewSQSSenderAdapter creates a sender whose health reports on queueName
func NewSQSSenderAdapter(sqsClient sqs.SQSClient, queueName string) *SQSSenderAdapter {
	return &SQSSenderAdapter{
		sqsSender: sqs.NewSender(sqsClient),
		queueName: queueName,
	}
}

func (adapter *SQSSenderAdapter) SendMessage(ctx context.Context, queueName string, body any) error {
	return adapter.sqsSender.SendMessage(ctx, queueName, body)
}

func (adapter *SQSSenderAdapter) Health() model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	details := map[string]string{
		"driver": "sqs",
		"queue":  adapter.queueName,
	}

	queueURL, err := adapter.sqsSender.Ping(ctx, adapter.queueName)
	if err != nil {
		details["message"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	details["url"] = queueURL
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
