package queue

import "context"

type Sender interface {
	SendMessage(ctx context.Context, queueName string, body any) error
}
