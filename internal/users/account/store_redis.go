// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/storehub/internal/platform/apperr"
	"github.com/taibuivan/storehub/internal/platform/constants"
	"github.com/taibuivan/storehub/internal/platform/sec"
)

// # Verification Token Repository

// RedisVerificationTokenRepository implements [VerificationTokenRepository] using Redis.
//
// Only the SHA-256 of a token is used as the key.
type RedisVerificationTokenRepository struct {
	client *redis.Client
}

// NewVerificationTokenRepository creates a new Redis-backed VerificationTokenRepository.
func NewVerificationTokenRepository(client *redis.Client) *RedisVerificationTokenRepository {
	return &RedisVerificationTokenRepository{client: client}
}

func verifyTokenKey(token string) string {
	return constants.RedisPrefixVerifyToken + sec.HashToken(token)
}

/*
Set stores a verification token with its associated account id and TTL.

Parameters:
  - context: context.Context
  - token: string
  - accountID: int64
  - ttl: time.Duration

Returns:
  - error: Storage failures
*/
func (repository *RedisVerificationTokenRepository) Set(context context.Context, token string, accountID int64, ttl time.Duration) error {
	if err := repository.client.Set(context, verifyTokenKey(token), accountID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_verify_token_set_failed: %w", err)
	}
	return nil
}

/*
Get retrieves the account id for a given token.

Description: Returns apperr.NotFound if the token is absent or expired.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - int64: Account id
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisVerificationTokenRepository) Get(context context.Context, token string) (int64, error) {
	value, err := repository.client.Get(context, verifyTokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, apperr.NotFound("Verification token")
		}
		return 0, fmt.Errorf("redis_verify_token_get_failed: %w", err)
	}

	accountID, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis_verify_token_decode_failed: %w", err)
	}

	return accountID, nil
}

/*
Delete removes the token from Redis.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Execution failures
*/
func (repository *RedisVerificationTokenRepository) Delete(context context.Context, token string) error {
	if err := repository.client.Del(context, verifyTokenKey(token)).Err(); err != nil {
		return fmt.Errorf("redis_verify_token_delete_failed: %w", err)
	}
	return nil
}
