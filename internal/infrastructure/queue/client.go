package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"stillform-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// Enqueuer hands background work to the worker process
type Enqueuer interface {
	Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error
}

// =====================================================
// ASYNQ CLIENT
// =====================================================

type AsynqEnqueuer struct {
	client *asynq.Client
}

func NewAsynqEnqueuer(redisAddr, password string, db int) *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr, Password: password, DB: db}),
	}
}

func (e *AsynqEnqueuer) Enqueue(ctx context.Context, taskType string, payload interface{}, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	info, err := e.client.EnqueueContext(ctx, asynq.NewTask(taskType, data), opts...)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	logger.Info("task enqueued", map[string]interface{}{
		"type":  taskType,
		"id":    info.ID,
		"queue": info.Queue,
	})
	return nil
}

func (e *AsynqEnqueuer) Close() error {
	return e.client.Close()
}

// =====================================================
// IN-PROCESS FALLBACK (Redis disabled)
// =====================================================

// LogEnqueuer records tasks instead of sending them; used when Redis is off and in tests
type LogEnqueuer struct {
	mu    sync.Mutex
	tasks []Task
}

type Task struct {
	Type    string
	Payload []byte
}

func NewLogEnqueuer() *LogEnqueuer {
	return &LogEnqueuer{}
}

func (e *LogEnqueuer) Enqueue(_ context.Context, taskType string, payload interface{}, _ ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	e.mu.Lock()
	e.tasks = append(e.tasks, Task{Type: taskType, Payload: data})
	e.mu.Unlock()

	logger.Info("task recorded (queue disabled)", map[string]interface{}{"type": taskType})
	return nil
}

// Tasks returns a copy of what was enqueued so far
func (e *LogEnqueuer) Tasks() []Task {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Task, len(e.tasks))
	copy(out, e.tasks)
	return out
}
