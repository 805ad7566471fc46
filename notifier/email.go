package notifier

import (
	"context"
	"fmt"
	"log"

	"orderweb/configs"
	"orderweb/entity"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// Mailer sends tenant-branded transactional mail through SES. All sends are
// best effort; checkout never fails on a mail error.
type Mailer struct {
	cfg *configs.Config
}

func NewMailer(cfg *configs.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) SendOrderConfirmation(ctx context.Context, setting *entity.EmailSetting, order *entity.Order) error {
	if setting == nil || !setting.SendConfirmation {
		return nil
	}
	if setting.SenderEmail == "" {
		return fmt.Errorf("tenant %d has no sender email configured", order.TenantID)
	}
	if order.Email == "" {
		return fmt.Errorf("order %s has no customer email", order.OrderNumber)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(m.cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(m.cfg.AWSAccessKeyID, m.cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {
		return fmt.Errorf("failed to load AWS SDK config: %w", err)
	}
	client := ses.NewFromConfig(awsCfg)

	sender := setting.SenderEmail
	if setting.SenderName != "" {
		sender = fmt.Sprintf("%s <%s>", setting.SenderName, setting.SenderEmail)
	}

	subject := fmt.Sprintf("Order %s confirmed", order.OrderNumber)
	amount := fmt.Sprintf("%d.%02d", order.Total/100, order.Total%100)

	bodyHTML := fmt.Sprintf(`
		<html><body>
		<p>Hi %s,</p>
		<p>Thanks for your order! Order <strong>%s</strong> has been received.</p>
		<ul>
			<li>Order type: %s</li>
			<li>Total: %s</li>
		</ul>
		<p>%s</p>
		</body></html>`,
		order.CustomerName, order.OrderNumber, order.OrderType, amount, setting.SenderName)

	bodyText := fmt.Sprintf(
		"Hi %s,\n\nThanks for your order! Order %s has been received.\n\nOrder type: %s\nTotal: %s\n\n%s",
		order.CustomerName, order.OrderNumber, order.OrderType, amount, setting.SenderName)

	input := &ses.SendEmailInput{
		Source:      aws.String(sender),
		Destination: &types.Destination{ToAddresses: []string{order.Email}},
		Message: &types.Message{
			Subject: &types.Content{Charset: aws.String("UTF-8"), Data: aws.String(subject)},
			Body: &types.Body{
				Html: &types.Content{Charset: aws.String("UTF-8"), Data: aws.String(bodyHTML)},
				Text: &types.Content{Charset: aws.String("UTF-8"), Data: aws.String(bodyText)},
			},
		},
	}
	if setting.ReplyTo != "" {
		input.ReplyToAddresses = []string{setting.ReplyTo}
	}

	if _, err := client.SendEmail(ctx, input); err != nil {
		log.Printf("order confirmation mail failed for %s: %v", order.OrderNumber, err)
		return err
	}
	return nil
}
