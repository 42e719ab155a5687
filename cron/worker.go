package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"azura/config"
	"azura/models"
	"azura/services/booking"
	"azura/services/voice"
	"azura/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitVoiceWorker runs the async worker that turns queued bookings into
// spoken confirmations. The whole path is fire-and-forget: every failure is
// logged and degraded to the textual confirmation the user already has.
func InitVoiceWorker(synth voice.Synthesizer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisVoiceTaskDB,
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
	mux.HandleFunc(voice.TypeVoiceConfirmation, handleVoiceConfirmationTask(synth))

	// Start async worker with retry logic
	go func() {
		log.Println("[VoiceWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[VoiceWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[VoiceWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleVoiceConfirmationTask(synth voice.Synthesizer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var b models.Booking
		if err := json.Unmarshal(task.Payload(), &b); err != nil {
			logger.Error("voiceWorker: invalid payload", zap.Error(err))
			return nil
		}

		text := booking.ComposeVoiceConfirmation(&b)

		audio, err := synth.Synthesize(ctx, text, voice.DefaultParams)
		if err != nil {
			// Degrade to the textual confirmation; never retry into the
			// user's face hours later.
			logger.Warn("voiceWorker: synthesis failed, using text fallback",
				zap.String("bookingNumber", b.BookingNumber), zap.Error(err))
			return nil
		}

		// Delivery to the client channel is the messaging gateway's job;
		// the engine only reports the outcome.
		logger.Info("voiceWorker: voice confirmation synthesized",
			zap.String("bookingNumber", b.BookingNumber),
			zap.Int("audioBytes", len(audio)))
		return nil
	}
}
