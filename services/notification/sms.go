package notification

import (
	"context"

	"cleancare/utils"

	"go.uber.org/zap"
)

// LogSMSSender logs outgoing messages instead of delivering them.
// Swap in the real gateway integration here.
type LogSMSSender struct{}

func (LogSMSSender) SendSMS(ctx context.Context, phone, message string) error {
	_ = ctx
	utils.GetLogger().Info("sending SMS",
		zap.String("phone", phone),
		zap.String("message", message),
	)
	return nil
}
