// Package ses delivers finished documents as raw messages through AWS SES v2.
package ses

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/zostay/go-mimekit/message"
)

// maxRetries is the maximum number of retry attempts for transient failures.
const maxRetries = 3

// defaultRetryDelay is the initial delay for exponential backoff.
const defaultRetryDelay = 1 * time.Second

// Config holds the settings for New.
type Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Sender          string
}

// SendEmailAPI is the part of the SES v2 client used here.
type SendEmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Deliverer sends documents with the SES v2 SendEmail operation. Recipients
// are taken from the document's own To and Cc fields.
type Deliverer struct {
	sender     string
	client     SendEmailAPI
	retryDelay time.Duration
}

// New creates a Deliverer from the default AWS configuration chain. Static
// credentials are used when both keys are given.
func New(ctx context.Context, cfg Config) (*Deliverer, error) {
	var opts []func(*awsconfig.LoadOptions) error

	opts = append(opts, awsconfig.WithRegion(cfg.Region))

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewWithClient(cfg.Sender, sesv2.NewFromConfig(awsCfg)), nil
}

// NewWithClient creates a Deliverer around an existing client.
func NewWithClient(sender string, client SendEmailAPI) *Deliverer {
	return &Deliverer{
		sender:     sender,
		client:     client,
		retryDelay: defaultRetryDelay,
	}
}

// Deliver sends the serialized document, retrying failed requests with
// exponential backoff.
func (d *Deliverer) Deliver(ctx context.Context, doc *message.Multipart) error {
	input := &sesv2.SendEmailInput{
		Content: &types.EmailContent{
			Raw: &types.RawMessage{
				Data: doc.Bytes(),
			},
		},
	}
	if d.sender != "" {
		input.FromEmailAddress = aws.String(d.sender)
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			slog.Debug("retrying SES API request",
				"attempt", attempt,
				"max_retries", maxRetries,
			)
			if err := sleepWithContext(ctx, d.backoffDelay(attempt)); err != nil {
				return fmt.Errorf("context cancelled during retry wait: %w", err)
			}
		}

		out, err := d.client.SendEmail(ctx, input)
		if err == nil {
			slog.Info("message sent through SES",
				"message_id", aws.ToString(out.MessageId),
				"bytes", len(input.Content.Raw.Data),
			)
			return nil
		}

		lastErr = err
		slog.Warn("SES API error",
			"attempt", attempt,
			"error", err,
		)
	}

	return fmt.Errorf("SES API request failed after %d retries: %w", maxRetries, lastErr)
}

// Name returns "ses".
func (d *Deliverer) Name() string {
	return "ses"
}

func (d *Deliverer) backoffDelay(attempt int) time.Duration {
	delay := d.retryDelay
	for i := 0; i < attempt; i++ {
		delay *= 2
	}
	return delay
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
