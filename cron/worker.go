package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cleancare/config"
	"cleancare/models"
	"cleancare/services/notification"
	"cleancare/services/tasks"
	"cleancare/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async pickup-reminder worker in background.
func InitReminderWorker(sms notification.SMSSender) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePickupReminder, handlePickupReminder(sms))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting pickup-reminder worker")

		const maxAttempts = 5
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempt),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempt == maxAttempts {
				logger.Fatal("Reminder worker could not start, giving up")
			}
			time.Sleep(time.Duration(attempt*2) * time.Second)
		}
	}()
}

func handlePickupReminder(sms notification.SMSSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PickupReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("Invalid pickup reminder payload", zap.Error(err))
			return err
		}

		message := fmt.Sprintf(
			"Reminder: your %s pickup is scheduled for the %s slot. Please keep your items ready.",
			p.ServiceName, p.SlotLabel,
		)
		if err := sms.SendSMS(ctx, p.Phone, message); err != nil {
			utils.GetLogger().Error("Failed to deliver pickup reminder",
				zap.String("orderId", p.OrderID),
				zap.Error(err),
			)
			return err
		}

		utils.GetLogger().Info("Pickup reminder delivered",
			zap.String("orderId", p.OrderID),
			zap.String("slot", p.SlotLabel),
		)
		return nil
	}
}
