// Package cache is the product service's read-through response cache.
// Entries are invalidated on update and delete; the order service always
// reads through the HTTP surface, so a cache hit here is the staleness bound
// for everyone.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const productTTL = 5 * time.Minute

func NewClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return rdb, nil
}

func productKey(id uint64) string {
	return fmt.Sprintf("product:%d", id)
}

func GetProduct(ctx context.Context, rdb *redis.Client, id uint64, out any) error {
	data, err := rdb.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func SetProduct(ctx context.Context, rdb *redis.Client, id uint64, product any) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, productKey(id), data, productTTL).Err()
}

func DeleteProduct(ctx context.Context, rdb *redis.Client, id uint64) error {
	return rdb.Del(ctx, productKey(id)).Err()
}
