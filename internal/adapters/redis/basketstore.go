package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/storely/basket/internal/core/domain"
	"github.com/storely/basket/internal/core/port"
)

// BasketStore keeps one Redis hash per basket scope: the field is the
// product id, the value the JSON-encoded line. Enumeration order follows
// HGETALL, which is unspecified.
type BasketStore struct {
	client *Client
	scope  domain.ID
}

type BasketStoreFactory struct {
	client *Client
}

func NewBasketStoreFactory(client *Client) port.BasketStoreFactory {
	return &BasketStoreFactory{client: client}
}

func (f *BasketStoreFactory) For(scope domain.ID) port.BasketStorePort {
	return &BasketStore{client: f.client, scope: scope}
}

func (s *BasketStore) key() string {
	return fmt.Sprintf("basket:%s", s.scope)
}

func (s *BasketStore) Set(ctx context.Context, line *domain.BasketLine) error {
	data, err := json.Marshal(line)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, s.key(), string(line.ProductID), string(data))
}

func (s *BasketStore) Get(ctx context.Context, productID domain.ID) (*domain.BasketLine, error) {
	data, err := s.client.HGet(ctx, s.key(), string(productID))
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var line domain.BasketLine
	if err := json.Unmarshal([]byte(data), &line); err != nil {
		return nil, err
	}
	return &line, nil
}

func (s *BasketStore) Exists(ctx context.Context, productID domain.ID) (bool, error) {
	return s.client.HExists(ctx, s.key(), string(productID))
}

func (s *BasketStore) Remove(ctx context.Context, productID domain.ID) error {
	return s.client.HDel(ctx, s.key(), string(productID))
}

func (s *BasketStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key())
}

func (s *BasketStore) All(ctx context.Context) ([]*domain.BasketLine, error) {
	fields, err := s.client.HGetAll(ctx, s.key())
	if err != nil {
		return nil, err
	}

	lines := make([]*domain.BasketLine, 0, len(fields))
	for _, data := range fields {
		var line domain.BasketLine
		if err := json.Unmarshal([]byte(data), &line); err != nil {
			return nil, err
		}
		lines = append(lines, &line)
	}

	return lines, nil
}
