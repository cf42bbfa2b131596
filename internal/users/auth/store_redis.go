// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/storehub/internal/platform/constants"
	"github.com/taibuivan/storehub/internal/platform/sec"
)

// RedisSessionStore implements [SessionStore] using Redis.
//
// Keys are the SHA-256 of the session id, so a Redis dump never contains a
// usable session id.
type RedisSessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new Redis-backed [SessionStore].
func NewSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(id string) string {
	return constants.RedisPrefixSession + sec.HashToken(id)
}

/*
Replace deletes the previous session and stores the new one in a MULTI/EXEC block.

Parameters:
  - context: context.Context
  - previousID: string
  - session: *Session
  - ttl: time.Duration

Returns:
  - error: Encoding or transaction failures
*/
func (store *RedisSessionStore) Replace(context context.Context, previousID string, session *Session, ttl time.Duration) error {

	// Encode the session payload
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	// Run both commands in one transaction
	_, err = store.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		if previousID != "" {
			pipe.Del(context, sessionKey(previousID))
		}
		pipe.Set(context, sessionKey(session.ID), payload, ttl)
		return nil
	})

	if err != nil {
		return fmt.Errorf("redis_session_replace_failed: %w", err)
	}

	return nil
}

/*
Get loads a session by id.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Session: Hydrated session
  - error: ErrSessionNotFound or connectivity errors
*/
func (store *RedisSessionStore) Get(context context.Context, id string) (*Session, error) {
	payload, err := store.client.Get(context, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}
	session.ID = id

	return session, nil
}

/*
Delete removes a session. Missing keys are ignored.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Deletion failures
*/
func (store *RedisSessionStore) Delete(context context.Context, id string) error {
	if err := store.client.Del(context, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}
	return nil
}
