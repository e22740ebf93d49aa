package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zeu5/motor-rl-viz/types"
)

// RedisSink publishes the step records onto a capped redis stream so
// that remote consumers can follow a run
type RedisSink struct {
	client *redis.Client
	stream string
	maxLen int64
}

var _ Sink = &RedisSink{}

func NewRedisSink(addr, stream string, maxLen int64) *RedisSink {
	return &RedisSink{
		client: redis.NewClient(&redis.Options{
			Addr:        addr,
			DialTimeout: 100 * time.Millisecond,
		}),
		stream: stream,
		maxLen: maxLen,
	}
}

func (s *RedisSink) Append(episode int, d types.StepData) error {
	bs, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.client.XAdd(context.Background(), &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"episode": episode,
			"k":       d.K,
			"step":    string(bs),
		},
	}).Err()
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
