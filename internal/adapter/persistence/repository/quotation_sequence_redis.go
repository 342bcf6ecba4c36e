package repository

import (
	"context"

	"quotation_service/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const defaultQuotationSequenceKey = "quotation:sequence"

// QuotationSequenceRedis hands out quotation number suffixes from a Redis
// counter shared by every API instance.
type QuotationSequenceRedis struct {
	rdb redis.Cmdable
	key string
}

var _ interfaces.IQuotationSequence = (*QuotationSequenceRedis)(nil)

func NewQuotationSequenceRedis(rdb redis.Cmdable, key string) *QuotationSequenceRedis {
	return &QuotationSequenceRedis{rdb: rdb, key: tableOrDefault(key, defaultQuotationSequenceKey)}
}

// Next adds one to the counter and returns the new value.
func (s *QuotationSequenceRedis) Next(ctx context.Context) (int64, error) {
	return s.rdb.Incr(ctx, s.key).Result()
}
