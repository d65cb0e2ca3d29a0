package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/server/validation"
)

// SNSAPI is the subset of the SNS client used for SMS.
type SNSAPI interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SMS sends codes as transactional SMS through SNS.
type SMS struct {
	client SNSAPI
}

func NewSMS(client SNSAPI) *SMS {
	return &SMS{client: client}
}

func NewSMSFromConfig(cfg aws.Config) *SMS {
	return NewSMS(sns.NewFromConfig(cfg))
}

func (s *SMS) Send(ctx context.Context, destination, code string) error {
	if !validation.IsPhone(destination) || !validation.IsCode(code) {
		return common.ErrorInvalidArgument
	}

	_, err := s.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(destination),
		Message:     aws.String(Body(code)),
		MessageAttributes: map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String("Transactional"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}

// SESAPI is the subset of the SES v2 client used for email.
type SESAPI interface {
	SendEmail(ctx context.Context, in *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Email sends codes as plain text email through SES.
type Email struct {
	client SESAPI
	from   string
}

func NewEmail(client SESAPI, from string) *Email {
	return &Email{client: client, from: from}
}

func NewEmailFromConfig(cfg aws.Config, from string) *Email {
	return NewEmail(sesv2.NewFromConfig(cfg), from)
}

func (s *Email) Send(ctx context.Context, destination, code string) error {
	if !validation.IsEmail(destination) || !validation.IsCode(code) {
		return common.ErrorInvalidArgument
	}

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.from),
		Destination: &sestypes.Destination{
			ToAddresses: []string{destination},
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(EmailSubject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(Body(code))},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}
	return nil
}
