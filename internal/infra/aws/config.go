package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"rbb-weather/pkg/resource"
)

// LoadConfig builds the AWS configuration from app.aws.* properties. Without static
// credentials the default credential chain (environment, shared config, IAM role) is used.
func LoadConfig(ctx context.Context) (aws.Config, error) {
	options := []func(*config.LoadOptions) error{
		config.WithRegion(resource.GetStringOrDefault("app.aws.region", "eu-central-1")),
	}

	accessKey := resource.GetString("app.aws.access-key-id")
	secretKey := resource.GetString("app.aws.secret-access-key")
	if accessKey != "" && secretKey != "" {
		options = append(options, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return cfg, nil
}
