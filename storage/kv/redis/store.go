package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/trezcool/isko/core"
	"github.com/trezcool/isko/core/academic"
)

// snapshotKey matches the historical storage key so sessions saved by older
// clients keep loading.
const snapshotKey = "cgpa_calculator_data"

// Store is a redis-backed Gateway holding the session Snapshot as one
// JSON-serialized value under a fixed key.
type Store struct {
	client *redis.Client
}

var _ academic.Gateway = (*Store)(nil)

func Open(conf *core.Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Storage.Redis.Addr,
		Password: conf.Storage.Redis.Password,
		DB:       conf.Storage.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "pinging redis")
	}
	return &Store{client: client}, nil
}

func (s *Store) Load(ctx context.Context) (*academic.Snapshot, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading snapshot")
	}
	snap := new(academic.Snapshot)
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, nil // malformed data is "no prior state"
	}
	return snap, nil
}

func (s *Store) Save(ctx context.Context, snap academic.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "serializing snapshot")
	}
	if err := s.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return errors.Wrap(err, "writing snapshot")
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, snapshotKey).Err(); err != nil {
		return errors.Wrap(err, "removing snapshot")
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
