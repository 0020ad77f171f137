package store

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/redis/go-redis/v9"

	"github.com/brandforge/adcanvas/pkg/canvas"
	"github.com/brandforge/adcanvas/pkg/errors"
)

// redisKeyPrefix namespaces document keys so a shared Redis instance can
// also carry the report cache.
const redisKeyPrefix = "adcanvas:doc:"

// RedisStore keeps documents as JSON values in Redis. Suitable for the
// hosted API where documents are working state, not the system of record.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis using a connection URL
// (e.g. "redis://localhost:6379/0") and verifies it with a ping.
func NewRedisStore(ctx context.Context, url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "invalid redis url")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to connect to redis")
	}
	return &RedisStore{client: client}, nil
}

// Put stores the document as JSON under its prefixed ID.
func (s *RedisStore) Put(ctx context.Context, doc *canvas.CanvasDocument) error {
	if err := errors.ValidateDocumentID(doc.ID); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to serialize document %q", doc.ID)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+doc.ID, data, 0).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to store document %q", doc.ID)
	}
	return nil
}

// Get fetches and decodes the document.
func (s *RedisStore) Get(ctx context.Context, id string) (*canvas.CanvasDocument, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, errors.New(errors.ErrCodeDocumentNotFound, "document %q not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to read document %q", id)
	}

	var doc canvas.CanvasDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "document %q is corrupt", id)
	}
	doc.ApplyDefaults()
	return &doc, nil
}

// List scans for document keys and returns the IDs.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(redisKeyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "failed to list documents")
	}
	return ids, nil
}

// Delete removes the document key. Deleting an unknown ID is not an error.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "failed to delete document %q", id)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close(ctx context.Context) error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
