package chain

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"identikit/internal/platform/redis"
)

const tipKey = "identikit:chain:tip"

// tipCAS treats a missing key as Genesis so a fresh Redis starts a new chain.
var tipCAS = goredis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur then
  cur = ARGV[3]
end
if cur == ARGV[1] then
  redis.call('SET', KEYS[1], ARGV[2])
  return 1
end
return 0
`)

// RedisTipStore shares the chain tip across processes.
type RedisTipStore struct {
	client *redis.Client
}

func NewRedisTipStore(client *redis.Client) *RedisTipStore {
	return &RedisTipStore{client: client}
}

// Seed sets the tip if no chain exists yet, so a restarted service resumes
// from persisted history instead of forking a second chain.
func (s *RedisTipStore) Seed(ctx context.Context, tip string) error {
	if tip == "" || tip == Genesis {
		return nil
	}
	if err := s.client.SetNX(ctx, tipKey, tip, 0).Err(); err != nil {
		return fmt.Errorf("seed chain tip: %w", err)
	}
	return nil
}

func (s *RedisTipStore) Tip(ctx context.Context) (string, error) {
	tip, err := s.client.Get(ctx, tipKey).Result()
	if err == goredis.Nil {
		return Genesis, nil
	}
	if err != nil {
		return "", fmt.Errorf("read chain tip: %w", err)
	}
	return tip, nil
}

func (s *RedisTipStore) CommitTip(ctx context.Context, old, new string) error {
	ok, err := tipCAS.Run(ctx, s.client, []string{tipKey}, old, new, Genesis).Int()
	if err != nil {
		return fmt.Errorf("commit chain tip: %w", err)
	}
	if ok != 1 {
		return ErrTipConflict
	}
	return nil
}
