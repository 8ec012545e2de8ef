package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"acm_e_letras/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the snapshot under a single key and broadcasts every save
// on a pub/sub channel so other instances learn about external writes.
// Messages carry the writer's instance id, letting a watcher drop its own
// writes instead of reapplying them.
type RedisStore struct {
	client     *redis.Client
	key        string
	channel    string
	instanceID string
}

var _ interfaces.ISnapshotStore = (*RedisStore)(nil)

// changeEnvelope is the pub/sub message format.
type changeEnvelope struct {
	Sender   string          `json:"sender"`
	Snapshot json.RawMessage `json:"snapshot"`
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{
		client:     client,
		key:        key,
		channel:    key + ":changes",
		instanceID: uuid.NewString(),
	}
}

func (s *RedisStore) Load(ctx context.Context) ([]byte, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot from redis: %w", err)
	}
	return raw, nil
}

func (s *RedisStore) Save(ctx context.Context, raw []byte) error {
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot to redis: %w", err)
	}

	msg, err := json.Marshal(changeEnvelope{Sender: s.instanceID, Snapshot: raw})
	if err != nil {
		return err
	}
	// Notification is best-effort: a lost publish only delays the other
	// instances until their next load.
	return s.client.Publish(ctx, s.channel, msg).Err()
}

func (s *RedisStore) Watch(ctx context.Context) (<-chan []byte, error) {
	sub := s.client.Subscribe(ctx, s.channel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, fmt.Errorf("failed to subscribe to snapshot changes: %w", err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var env changeEnvelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					continue
				}
				if env.Sender == s.instanceID {
					continue
				}
				select {
				case out <- []byte(env.Snapshot):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
