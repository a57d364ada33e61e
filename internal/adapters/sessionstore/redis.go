package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

const (
	sessionKeyPrefix = "portal:session:"
	draftKeyPrefix   = "portal:draft:"

	sessionTTL = 24 * time.Hour
	// Drafts outlive sessions so an applicant can come back days later
	// and pick up where they left off.
	draftTTL = 7 * 24 * time.Hour
)

// RedisStore implements both the session store and the draft store on a
// shared Redis connection. Sessions are stored as JSON blobs under a TTL
// that slides on every save.
type RedisStore struct {
	client *redis.Client
}

var (
	_ ports.SessionStore = (*RedisStore)(nil)
	_ ports.DraftStore   = (*Drafts)(nil)
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sess.ID, data, sessionTTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

// Drafts implements ports.DraftStore over the same connection. The draft
// store never talks to the backend; an application draft exists only here
// until submission destroys it.
type Drafts struct {
	*RedisStore
}

func (s *RedisStore) Drafts() *Drafts { return &Drafts{s} }

func (d *Drafts) Get(ctx context.Context, id string) (*domain.ApplicationForm, error) {
	data, err := d.client.Get(ctx, draftKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var form domain.ApplicationForm
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (d *Drafts) Save(ctx context.Context, id string, form domain.ApplicationForm) error {
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return d.client.Set(ctx, draftKeyPrefix+id, data, draftTTL).Err()
}

func (d *Drafts) Delete(ctx context.Context, id string) error {
	return d.client.Del(ctx, draftKeyPrefix+id).Err()
}
