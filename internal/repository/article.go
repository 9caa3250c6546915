package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/blog-article-api/domain"
	"github.com/Guyuepp/blog-article-api/internal/metrics"
)

const (
	mostLikedTTL = 30 * time.Second

	breakerMinRequests      = 5
	breakerFailureThreshold = 0.6
)

// articleRepository coordinates the bloom filter, the cache and the database.
// Cache failures never fail a request: they are logged and the database answers.
type articleRepository struct {
	db        domain.ArticleRepository
	cache     domain.ArticleCache
	bloom     domain.BloomRepository
	tx        domain.Transactor
	breaker   *gobreaker.CircuitBreaker
	loadGroup singleflight.Group
}

var _ domain.ArticleRepository = (*articleRepository)(nil)

func NewArticleRepository(db domain.ArticleRepository, cache domain.ArticleCache, bloom domain.BloomRepository, tx domain.Transactor) *articleRepository {
	return &articleRepository{
		db:      db,
		cache:   cache,
		bloom:   bloom,
		tx:      tx,
		breaker: newCacheBreaker("redis"),
	}
}

func newCacheBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < breakerMinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= breakerFailureThreshold
		},
		// a miss is a healthy answer
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrCacheMiss)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logrus.Warnf("circuit breaker %s changed from %s to %s", name, from, to)
		},
	})
}

func (r *articleRepository) guard(fn func() error) error {
	_, err := r.breaker.Execute(func() (any, error) {
		return nil, fn()
	})
	return err
}

// GetByID serves read-only lookups from the cache. Tracked reads always go
// to the database so they can take row locks.
func (r *articleRepository) GetByID(ctx context.Context, id int64, readOnly bool) (domain.Article, error) {
	if !readOnly {
		return r.db.GetByID(ctx, id, false)
	}

	if !r.mayExist(ctx, id) {
		return domain.Article{}, domain.NewEntityNotFound("Article", id)
	}

	var cached domain.Article
	err := r.guard(func() (err error) {
		cached, err = r.cache.GetArticle(ctx, id)
		return
	})
	switch {
	case err == nil:
		metrics.CacheRequestsTotal.WithLabelValues("article", metrics.CacheHit).Inc()
		return cached, nil
	case errors.Is(err, domain.ErrCacheMiss):
		metrics.CacheRequestsTotal.WithLabelValues("article", metrics.CacheMiss).Inc()
	default:
		metrics.CacheRequestsTotal.WithLabelValues("article", metrics.CacheError).Inc()
		logrus.Warnf("article cache get error, id: %d, err: %v", id, err)
	}

	res, err, _ := r.loadGroup.Do("article:"+strconv.FormatInt(id, 10), func() (any, error) {
		ar, err := r.db.GetByID(ctx, id, true)
		if err != nil {
			return nil, err
		}
		if err := r.guard(func() error { return r.cache.SetArticle(ctx, &ar) }); err != nil {
			logrus.Warnf("failed to set article cache, id: %d, err: %v", id, err)
		}
		return ar, nil
	})
	if err != nil {
		return domain.Article{}, err
	}
	return res.(domain.Article), nil
}

// mayExist asks the bloom filter. When it cannot answer the article is
// assumed to exist.
func (r *articleRepository) mayExist(ctx context.Context, id int64) bool {
	exists := true
	err := r.guard(func() (err error) {
		exists, err = r.bloom.Exists(ctx, id)
		return
	})
	if err != nil {
		logrus.Warnf("bloom filter lookup failed, id: %d, err: %v", id, err)
		return true
	}
	return exists
}

func (r *articleRepository) Fetch(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	return r.db.Fetch(ctx, filter)
}

func (r *articleRepository) Count(ctx context.Context, filter domain.ArticleFilter) (int64, error) {
	return r.db.Count(ctx, filter)
}

func (r *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	if err := r.db.Store(ctx, a); err != nil {
		return err
	}
	if err := r.guard(func() error { return r.bloom.Add(ctx, a.ID) }); err != nil {
		logrus.Errorf("failed to add article %d to bloom filter: %v", a.ID, err)
	}
	return nil
}

func (r *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	if err := r.db.Update(ctx, a); err != nil {
		return err
	}
	r.evictAfterCommit(ctx, a.ID)
	return nil
}

func (r *articleRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}
	r.evictAfterCommit(ctx, id)
	return nil
}

// evictAfterCommit evicts once the surrounding transaction, if any, has committed
func (r *articleRepository) evictAfterCommit(ctx context.Context, id int64) {
	ctx = context.WithoutCancel(ctx)
	r.tx.AfterCommit(ctx, func() {
		r.evict(ctx, id)
	})
}

// evict drops every cache entry that may hold the article
func (r *articleRepository) evict(ctx context.Context, id int64) {
	if err := r.guard(func() error { return r.cache.DeleteArticle(ctx, id) }); err != nil {
		logrus.Errorf("failed to evict article %d from cache: %v", id, err)
	}
	if err := r.guard(func() error { return r.cache.DeleteMostLiked(ctx) }); err != nil {
		logrus.Errorf("failed to evict most liked article from cache: %v", err)
	}
}

func (r *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}

func (r *articleRepository) FetchStats(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleStat, error) {
	return r.db.FetchStats(ctx, filter)
}

// GetMostLiked uses a logical expire: an expired entry is still returned
// while a single background rebuild refreshes it.
func (r *articleRepository) GetMostLiked(ctx context.Context) (domain.ArticleMostLiked, error) {
	var (
		cached  domain.ArticleMostLiked
		expired bool
	)
	err := r.guard(func() (err error) {
		cached, expired, err = r.cache.GetMostLiked(ctx)
		return
	})
	if err == nil {
		metrics.CacheRequestsTotal.WithLabelValues("most_liked", metrics.CacheHit).Inc()
		if expired {
			go r.rebuildMostLiked(context.Background())
		}
		return cached, nil
	}
	if errors.Is(err, domain.ErrCacheMiss) {
		metrics.CacheRequestsTotal.WithLabelValues("most_liked", metrics.CacheMiss).Inc()
	} else {
		metrics.CacheRequestsTotal.WithLabelValues("most_liked", metrics.CacheError).Inc()
		logrus.Warnf("most liked cache get error: %v", err)
	}

	res, err, _ := r.loadGroup.Do("most-liked", func() (any, error) {
		return r.loadMostLiked(ctx)
	})
	if err != nil {
		return domain.ArticleMostLiked{}, err
	}
	return res.(domain.ArticleMostLiked), nil
}

func (r *articleRepository) loadMostLiked(ctx context.Context) (domain.ArticleMostLiked, error) {
	ml, err := r.db.GetMostLiked(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		_ = r.guard(func() error { return r.cache.DeleteMostLiked(ctx) })
	}
	if err != nil {
		return domain.ArticleMostLiked{}, err
	}
	if err := r.guard(func() error { return r.cache.SetMostLiked(ctx, ml, mostLikedTTL) }); err != nil {
		logrus.Warnf("failed to set most liked cache: %v", err)
	}
	return ml, nil
}

func (r *articleRepository) rebuildMostLiked(ctx context.Context) {
	_, err, _ := r.loadGroup.Do("rebuild:most-liked", func() (any, error) {
		return r.loadMostLiked(ctx)
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		logrus.Errorf("rebuildMostLiked failed: %v", err)
	}
}
