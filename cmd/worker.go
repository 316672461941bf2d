package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hrcore/hr-management/internal/notifier"
	"github.com/hrcore/hr-management/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var workerQueues string

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start the notification queue worker",
	Long:  `Drain the configured redis queues and log the notification messages they carry.`,
	Run: func(cmd *cobra.Command, args []string) {
		startQueueWorker()
	},
}

func init() {
	workerCmd.Flags().StringVar(&workerQueues, "queues", "", "comma-separated queue names to consume (defaults to WORKER_QUEUES)")
}

func startQueueWorker() {
	config, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(config.Observability.Logging.Format, config.Observability.Logging.Level)
	lg := logger.LoggerWrapper()

	raw := workerQueues
	if raw == "" {
		raw = os.Getenv("WORKER_QUEUES")
	}

	var queues []string
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			queues = append(queues, name)
		}
	}
	if len(queues) == 0 {
		fmt.Fprintln(os.Stderr, "no queues configured; set --queues or WORKER_QUEUES")
		os.Exit(1)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Queue.RedisAddr,
		Password: config.Queue.RedisPassword,
		DB:       config.Queue.RedisDB,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		lg.Info("received signal, shutting down worker", "signal", sig)
		cancel()
	}()

	lg.Info("queue worker started", "queues", queues)

	for {
		result, err := client.BLPop(ctx, 5*time.Second, queues...).Result()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			if err == redis.Nil {
				continue
			}
			lg.Error("failed to pop from queue", "error", err)
			time.Sleep(time.Second)
			continue
		}

		// BLPOP returns the queue name followed by the payload.
		queue, payload := result[0], result[1]

		var msg notifier.Message
		if err := json.Unmarshal([]byte(payload), &msg); err != nil {
			lg.Error("failed to decode message", "queue", queue, "error", err)
			continue
		}

		lg.Info("notification received",
			"queue", queue,
			"message_id", msg.ID,
			"event", msg.Event,
			"dispatched_at", msg.DispatchedAt,
			"data", msg.Data)
	}

	if err := client.Close(); err != nil {
		lg.Error("redis close error", "error", err)
	}
	lg.Info("queue worker stopped")
}
