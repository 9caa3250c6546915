package redis

import (
	"context"
	"fmt"
	"hash/crc32"
	"hash/fnv"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-article-api/domain"
)

const (
	KeyArticleBloom = "bloom:article:ids"
)

type redisBloomRepo struct {
	client       redis.Cmdable
	BloomBitSize uint64
}

var _ domain.BloomRepository = (*redisBloomRepo)(nil)

func NewRedisBloomRepo(client redis.Cmdable, bitSize uint64) *redisBloomRepo {
	return &redisBloomRepo{
		client:       client,
		BloomBitSize: bitSize,
	}
}

func (r *redisBloomRepo) Add(ctx context.Context, id int64) error {
	return r.BulkAdd(ctx, []int64{id})
}

// Exists answers true while the filter key is missing, e.g. after a Redis
// flush, so lookups fall through to the cache and the database.
func (r *redisBloomRepo) Exists(ctx context.Context, id int64) (bool, error) {
	pipe := r.client.Pipeline()
	present := pipe.Exists(ctx, KeyArticleBloom)
	bits := make([]*redis.IntCmd, 0, 3)
	for _, offset := range r.getOffset(id) {
		bits = append(bits, pipe.GetBit(ctx, KeyArticleBloom, int64(offset)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if present.Val() == 0 {
		logrus.Warnf("bloom filter key %s is missing, treating article %d as present", KeyArticleBloom, id)
		return true, nil
	}
	for _, cmd := range bits {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

func (r *redisBloomRepo) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.getOffset(id) {
			pipe.SetBit(ctx, KeyArticleBloom, int64(offset), 1)
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}

// getOffset derives k=3 bit positions from two independent hashes
func (r *redisBloomRepo) getOffset(id int64) []uint64 {
	data := fmt.Appendf(nil, "%d", id)
	offsets := make([]uint64, 3)

	offsets[0] = uint64(crc32.ChecksumIEEE(data)) % r.BloomBitSize

	h := fnv.New64()
	h.Write(data)
	offsets[1] = h.Sum64() % r.BloomBitSize

	offsets[2] = (offsets[0] + offsets[1] + 0xABC) % r.BloomBitSize

	return offsets
}
