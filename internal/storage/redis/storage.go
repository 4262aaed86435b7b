package redis

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/guavagrams/internal/model"
	"github.com/mcoot/guavagrams/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) SaveDictionaryWords(ctx context.Context, name string, words []string) error {
	key := dictionaryKey(name)

	// Replace the word set and register the name in one pipeline
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
		if s.cfg.DictionaryTTL > 0 {
			pipe.Expire(ctx, key, s.cfg.DictionaryTTL)
		}
	}
	pipe.SAdd(ctx, dictionaryIndexKey(), name)

	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetDictionaryWords(ctx context.Context, name string) ([]string, error) {
	known, err := s.client.SIsMember(ctx, dictionaryIndexKey(), name).Result()
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, model.ErrDictionaryNotFound
	}

	words, err := s.client.SMembers(ctx, dictionaryKey(name)).Result()
	if err != nil {
		return nil, err
	}

	// SMEMBERS order is unspecified
	slices.Sort(words)
	return words, nil
}

func (s *Storage) ListDictionaries(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, dictionaryIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

func (s *Storage) DeleteDictionary(ctx context.Context, name string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, dictionaryKey(name))
	pipe.SRem(ctx, dictionaryIndexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

// Score table operations

func (s *Storage) SaveScoreTable(ctx context.Context, name string, table model.ScoreTable) error {
	key := scoreTableKey(name)

	fields := make(map[string]interface{}, len(table))
	for letter, value := range table {
		fields[string(letter)] = value
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(fields) > 0 {
		pipe.HSet(ctx, key, fields)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetScoreTable(ctx context.Context, name string) (model.ScoreTable, error) {
	fields, err := s.client.HGetAll(ctx, scoreTableKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrScoreTableNotFound
		}
		return nil, err
	}
	if len(fields) == 0 {
		return nil, model.ErrScoreTableNotFound
	}

	table := make(model.ScoreTable, len(fields))
	for field, raw := range fields {
		letter, size := utf8.DecodeRuneInString(field)
		if size != len(field) {
			return nil, fmt.Errorf("score table %q: malformed letter %q", name, field)
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("score table %q: letter %q: %w", name, field, err)
		}
		table[model.Letter(letter)] = value
	}
	return table, nil
}
