package notifier

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Queue is the outbound transport the notifier pushes messages onto.
type Queue interface {
	Push(ctx context.Context, queue string, payload []byte) error
}

// RedisQueue appends messages to redis lists, one list per queue name.
// Consumers drain them with BLPOP (see the worker command).
type RedisQueue struct {
	client *redis.Client
}

func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client}
}

func (q *RedisQueue) Push(ctx context.Context, queue string, payload []byte) error {
	return q.client.RPush(ctx, queue, payload).Err()
}

// MemoryQueue is an in-process Queue used by tests.
type MemoryQueue struct {
	mu       sync.Mutex
	messages map[string][][]byte
}

func NewMemoryQueue() *MemoryQueue {
	return &MemoryQueue{messages: make(map[string][][]byte)}
}

func (q *MemoryQueue) Push(_ context.Context, queue string, payload []byte) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages[queue] = append(q.messages[queue], payload)
	return nil
}

func (q *MemoryQueue) Messages(queue string) [][]byte {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.messages[queue]
}

func (q *MemoryQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	total := 0
	for _, msgs := range q.messages {
		total += len(msgs)
	}
	return total
}
