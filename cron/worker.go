package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"akplaw/config"
	"akplaw/models"
	"akplaw/services/mailer"

	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async mail worker in background. Queued messages
// from the intake, recruitment, and billing flows are delivered here.
func InitMailWorker(m mailer.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueue,
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
	mux.HandleFunc(mailer.TypeMailSend, handleMailTask(m))

	// Start async worker with retry logic.
	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleMailTask(m mailer.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var msg models.EmailMessage
		if err := json.Unmarshal(task.Payload(), &msg); err != nil {
			log.Printf("[MailHandler] invalid payload: %v", err)
			return err
		}

		id, err := m.Send(ctx, msg)
		if err != nil {
			log.Printf("[MailHandler] failed to send %q: %v", msg.Subject, err)
			return err
		}
		log.Printf("[MailHandler] sent %q as %s", msg.Subject, id)
		return nil
	}
}
