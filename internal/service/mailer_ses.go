package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ai_linguo/internal/config"
	"ai_linguo/internal/middleware"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// reminderTag marks reminder mail so SES event destinations can filter it.
var reminderTag = types.MessageTag{Name: aws.String("category"), Value: aws.String("study-reminder")}

// sesSender is the part of the SES client the mailer uses.
type sesSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// SESMailer sends study reminders through AWS SES.
type SESMailer struct {
	client sesSender
	from   string
}

// NewSESMailer builds the SES client. ses.auth_type selects static keys or
// the SDK's default credential chain (IAM role).
func NewSESMailer(cfg *config.Config) (*SESMailer, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.SES.Region)}

	switch cfg.SES.AuthType {
	case "static_credentials":
		if cfg.SES.AccessKeyID == "" || cfg.SES.SecretAccessKey == "" {
			return nil, errors.New("NewSESMailer: static_credentials requires ses.access_key_id and ses.secret_access_key")
		}
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.SES.AccessKeyID, cfg.SES.SecretAccessKey, ""),
		))
	case "iam_role", "":
	default:
		slog.Warn("Unknown SES auth_type, using the default credential chain", "type", cfg.SES.AuthType)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("NewSESMailer: load AWS config: %w", err)
	}

	return &SESMailer{
		client: sesv2.NewFromConfig(awsCfg),
		from:   cfg.SES.From,
	}, nil
}

func (m *SESMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)

	out, err := m.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(m.from),
		Destination:      &types.Destination{ToAddresses: []string{to}},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body), Charset: aws.String("UTF-8")},
				},
			},
		},
		EmailTags: []types.MessageTag{reminderTag},
	})
	if err != nil {
		logger.Error("Failed to send reminder via SES", "error", err, "to", to)
		return fmt.Errorf("SESMailer.Send: %w", err)
	}

	logger.Info("Reminder mail sent via SES", "to", to, "message_id", aws.ToString(out.MessageId))
	return nil
}
