package aws

import (
	"rbb-weather/internal/domain/gateway/queue"
	"rbb-weather/pkg/sqs"
)

// NewSQSSenderAdapter exposes the pkg/sqs Sender as the domain queue.Sender
func NewSQSSenderAdapter(sqsClient sqs.SQSClient) queue.Sender {
	return sqs.NewSender(sqsClient)
}
