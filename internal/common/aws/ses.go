// internal/common/aws/ses.go
package aws

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/logger"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/metrics"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
)

// SESAPI is the slice of the SES client the mailer uses.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer hands assembled notifications to Amazon SES.
type SESMailer struct {
	client SESAPI
	logger logger.Logger
}

func NewSESMailer(ctx context.Context, region string, log logger.Logger) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}
	return NewSESMailerWithClient(ses.NewFromConfig(cfg), log), nil
}

// NewSESMailerWithClient exists for tests and for callers that manage their
// own AWS configuration.
func NewSESMailerWithClient(client SESAPI, log logger.Logger) *SESMailer {
	return &SESMailer{
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "ses-mailer"}),
	}
}

// Send maps an assembled notification onto a single SES SendEmail call.
func (m *SESMailer) Send(ctx context.Context, email *models.EmailData) error {
	charset := "UTF-8"

	input := &ses.SendEmailInput{
		Source: &email.SourceEmail,
		Destination: &types.Destination{
			ToAddresses: email.ToAddresses,
		},
		ReplyToAddresses: email.ReplyToAddresses,
		Message: &types.Message{
			Subject: &types.Content{
				Data:    &email.Subject,
				Charset: &charset,
			},
			Body: &types.Body{
				Html: &types.Content{
					Data:    &email.BodyHTML,
					Charset: &charset,
				},
				Text: &types.Content{
					Data:    &email.BodyText,
					Charset: &charset,
				},
			},
		},
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		m.logger.Error("ses send failed", map[string]interface{}{
			"notificationId": email.NotificationID,
			"error":          err.Error(),
		})
		return fmt.Errorf("sending email %s: %w", email.NotificationID, err)
	}

	metrics.EmailsSent.WithLabelValues("ses").Inc()
	m.logger.Info("email sent", map[string]interface{}{
		"notificationId": email.NotificationID,
		"messageId":      safeString(out.MessageId),
		"recipients":     len(email.ToAddresses),
	})
	return nil
}

func safeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
