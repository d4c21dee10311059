package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"wavecrest/config"
	bookingRepo "wavecrest/database/repository/booking"
)

const TypeBookingSweep = "booking:sweep"

// InitBookingSweep runs the async worker and its periodic scheduler in
// the background. The sweep marks pending bookings whose payment webhook
// never arrived as abandoned, after the configured TTL.
func InitBookingSweep(bookings bookingRepo.BookingRepository, logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingSweep, handleBookingSweep(bookings, logger))

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Fatalf("booking sweep worker failed to start: %v", err)
		}
	}()

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeBookingSweep, nil)); err != nil {
		log.Fatalf("failed to register booking sweep schedule: %v", err)
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("booking sweep scheduler failed to start: %v", err)
		}
	}()
}

func handleBookingSweep(bookings bookingRepo.BookingRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		ttl := time.Duration(config.AppConfig.PendingBookingTTL) * time.Hour
		cutoff := time.Now().Add(-ttl)

		swept, err := bookings.MarkStalePending(ctx, cutoff)
		if err != nil {
			logger.Error("booking sweep failed", zap.Error(err))
			return err
		}
		if swept > 0 {
			logger.Info("stale pending bookings marked abandoned",
				zap.Int64("count", swept),
				zap.Time("cutoff", cutoff))
		}
		return nil
	}
}
