// Package job runs background work on asynq, a Redis-backed queue.
//
// Producers enqueue tasks through JobService.Client; the embedded asynq
// server pulls them from Redis and dispatches them by task type.
package job

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/deppfellow/go-blog/internal/config"
)

// WelcomeSender delivers the welcome email; *email.Client implements it.
type WelcomeSender interface {
	SendWelcomeEmail(to, firstName string) error
}

type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger
	email  WelcomeSender
}

func NewJobService(logger *zerolog.Logger, cfg *config.Config, sender WelcomeSender) *JobService {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.Redis.Address}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"critical": 6,
			"default":  3,
			"low":      1,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error().
				Err(err).
				Str("task_type", task.Type()).
				Msg("background task failed")
		}),
	})

	return &JobService{
		Client: asynq.NewClient(redisOpt),
		server: server,
		logger: logger,
		email:  sender,
	}
}

// Mux routes task types to their handlers.
func (j *JobService) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)
	return mux
}

// Start launches the workers and returns; processing continues in the background.
func (j *JobService) Start() error {
	j.logger.Info().Msg("starting background job server")
	return j.server.Start(j.Mux())
}

// Stop waits for in-flight tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
