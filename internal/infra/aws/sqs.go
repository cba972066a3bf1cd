package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"rbb-weather/pkg/resource"
)

// NewSqsClient creates the SQS client, pointed at app.aws.endpoint when set (LocalStack)
func NewSqsClient(cfg aws.Config) *sqs.Client {
	endpoint := resource.GetString("app.aws.endpoint")

	return sqs.NewFromConfig(cfg, func(options *sqs.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
		}
	})
}
