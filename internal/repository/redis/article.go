package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Guyuepp/blog-article-api/domain"
	"github.com/Guyuepp/blog-article-api/internal/repository/cache"
)

const (
	KeyArticles      = "article:%d"
	KeyMostLiked     = "article:most-liked"
	articleTTL       = 10 * time.Minute
	mostLikedRetains = time.Hour
)

type articleCache struct {
	client redis.Cmdable
	now    func() time.Time
}

var _ domain.ArticleCache = (*articleCache)(nil)

func NewArticleCache(client redis.Cmdable) *articleCache {
	return &articleCache{
		client: client,
		now:    time.Now,
	}
}

func (c *articleCache) GetArticle(ctx context.Context, id int64) (res domain.Article, err error) {
	key := fmt.Sprintf(KeyArticles, id)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Article{}, domain.ErrCacheMiss
	} else if err != nil {
		return domain.Article{}, err
	}
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Article{}, err
	}
	return
}

func (c *articleCache) SetArticle(ctx context.Context, ar *domain.Article) error {
	data, err := json.Marshal(ar)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(KeyArticles, ar.ID), data, articleTTL).Err()
}

func (c *articleCache) DeleteArticle(ctx context.Context, id int64) error {
	return c.client.Del(ctx, fmt.Sprintf(KeyArticles, id)).Err()
}

func (c *articleCache) GetMostLiked(ctx context.Context) (res domain.ArticleMostLiked, expired bool, err error) {
	data, err := c.client.Get(ctx, KeyMostLiked).Bytes()
	if errors.Is(err, redis.Nil) {
		return res, false, domain.ErrCacheMiss
	} else if err != nil {
		return res, false, err
	}

	var wrapped cache.DataWithLogicalExpire[domain.ArticleMostLiked]
	if err = json.Unmarshal(data, &wrapped); err != nil {
		return res, false, err
	}
	return wrapped.Data, wrapped.IsLogicalExpired(c.now()), nil
}

// SetMostLiked stores ar with a logical deadline of ttl. The key itself
// lives longer so expired data can still be served during a rebuild.
func (c *articleCache) SetMostLiked(ctx context.Context, ar domain.ArticleMostLiked, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(ar, c.now(), ttl))
	if err != nil {
		return err
	}
	return c.client.Set(ctx, KeyMostLiked, data, max(ttl, mostLikedRetains)).Err()
}

func (c *articleCache) DeleteMostLiked(ctx context.Context) error {
	return c.client.Del(ctx, KeyMostLiked).Err()
}
