package notification

import "context"

// SMSSender delivers a text message to a phone number. The production
// integration is an SMS gateway; development uses the logging stub.
type SMSSender interface {
	SendSMS(ctx context.Context, phone, message string) error
}
