package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gatherly/config"
	notificationRepo "gatherly/database/repository/notification"
	"gatherly/models"
	"gatherly/services/notification"
	"gatherly/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeNotificationPrune = "notification:prune"

// readNotificationTTLDays is how long read notifications are kept before the
// daily prune removes them.
const readNotificationTTLDays = 30

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// NewTaskClient returns the asynq client services use to enqueue tasks.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// InitWorker runs the async worker in background: outing reminders enqueued by
// the group service, plus a daily notification prune.
func InitWorker(notifSvc notification.NotificationService, notifRepo notificationRepo.NotificationRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeOutingReminder, handleOutingReminder(notifSvc))
	mux.HandleFunc(TypeNotificationPrune, handleNotificationPrune(notifRepo))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[Worker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	// Schedule the daily prune.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts(), nil)
		if _, err := scheduler.Register("@daily", asynq.NewTask(TypeNotificationPrune, nil)); err != nil {
			log.Printf("[Worker] failed to register prune schedule: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[Worker] scheduler stopped: %v", err)
		}
	}()
}

// handleOutingReminder pushes the reminder to every member of the group.
func handleOutingReminder(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("failed to decode reminder payload: %w", err)
		}

		title := fmt.Sprintf("Upcoming outing with %s", payload.GroupName)
		body := fmt.Sprintf("Your outing starts at %s", payload.OutingTime.Format("15:04, Jan 2"))
		if payload.OutingSpot != "" {
			body = fmt.Sprintf("%s at %s", body, payload.OutingSpot)
		}

		for _, memberID := range payload.MemberIDs {
			if err := notifSvc.SendUserPush(ctx, memberID, title, body, map[string]string{
				"type":    "outing_reminder",
				"groupId": payload.GroupID,
			}); err != nil {
				log.Printf("[Worker] failed to push reminder to %s: %v", memberID, err)
			}
		}
		return nil
	}
}

// handleNotificationPrune removes read notifications past their retention window.
func handleNotificationPrune(notifRepo notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		deleted, err := notifRepo.DeleteReadOlderThan(readNotificationTTLDays)
		if err != nil {
			return err
		}
		log.Printf("[Worker] pruned %d read notifications", deleted)
		return nil
	}
}

// monitorRedisConnection logs when the queue Redis becomes unreachable so a
// silent worker stall is visible in the logs.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer client.Close()

	healthy := true
	for {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_, err := client.Ping(ctx).Result()
		cancel()

		if err != nil && healthy {
			log.Printf("[Worker] queue Redis unreachable: %v", err)
			healthy = false
		} else if err == nil && !healthy {
			log.Println("[Worker] queue Redis connection restored")
			healthy = true
		}
		time.Sleep(30 * time.Second)
	}
}
