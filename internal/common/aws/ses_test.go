// internal/common/aws/ses_test.go
package aws

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/logger"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeSESClient struct {
	lastInput *ses.SendEmailInput
	err       error
}

func (f *fakeSESClient) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	messageID := "msg-123"
	return &ses.SendEmailOutput{MessageId: &messageID}, nil
}

func createTestEmail() *models.EmailData {
	return &models.EmailData{
		NotificationID:   "notif-1",
		ToAddresses:      []string{"dev@x", "analyst@mn.gov"},
		ReplyToAddresses: []string{"noreply@example.com"},
		SourceEmail:      "mc-review@example.com",
		Subject:          "New Managed Care Submission: MCR-MN-0005-SNBC",
		BodyText:         "plain body",
		BodyHTML:         "<p>html body</p>",
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestSESMailer_Send(t *testing.T) {
	fake := &fakeSESClient{}
	mailer := NewSESMailerWithClient(fake, logger.NewTestLogger(t))

	err := mailer.Send(context.Background(), createTestEmail())
	require.NoError(t, err)

	require.NotNil(t, fake.lastInput)
	assert.Equal(t, []string{"dev@x", "analyst@mn.gov"}, fake.lastInput.Destination.ToAddresses)
	assert.Equal(t, []string{"noreply@example.com"}, fake.lastInput.ReplyToAddresses)
	assert.Equal(t, "mc-review@example.com", *fake.lastInput.Source)
	assert.Equal(t, "New Managed Care Submission: MCR-MN-0005-SNBC", *fake.lastInput.Message.Subject.Data)
	assert.Equal(t, "<p>html body</p>", *fake.lastInput.Message.Body.Html.Data)
	assert.Equal(t, "plain body", *fake.lastInput.Message.Body.Text.Data)
}

func TestSESMailer_Send_Error(t *testing.T) {
	fake := &fakeSESClient{err: errors.New("throttled")}
	mailer := NewSESMailerWithClient(fake, logger.NewTestLogger(t))

	err := mailer.Send(context.Background(), createTestEmail())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "notif-1")
}
