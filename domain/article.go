package domain

import (
	"context"
	"time"
)

// Article is representing the Article data struct
type Article struct {
	ID            int64      // Unique identifier for the article
	Title         string     // Article title, unique across articles
	Body          string     // Article body content
	Author        string     // Free text author name
	PublishDate   *time.Time // Set iff the article is published
	IsPublished   bool       // Published or draft
	AddedByUserID int64      // User who created the article
	CreatedDate   time.Time  // Creation timestamp
	ModifiedDate  *time.Time // Last update timestamp
}

// Publish moves the article to the Published state. Publishing an already
// published article refreshes the publish date.
func (a *Article) Publish(at time.Time) {
	at = at.UTC()
	a.PublishDate = &at
	a.IsPublished = true
}

// Unpublish moves the article back to Draft.
func (a *Article) Unpublish() {
	a.PublishDate = nil
	a.IsPublished = false
}

// NormalizePublishState keeps IsPublished and PublishDate consistent:
// a published article without a date is stamped with at, a draft loses its date.
func (a *Article) NormalizePublishState(at time.Time) {
	if !a.IsPublished {
		a.Unpublish()
		return
	}
	if a.PublishDate == nil {
		a.Publish(at)
	}
}

// ArticleStat is an article with its feedback rollup
type ArticleStat struct {
	Article
	LikeCount   int64
	UnLikeCount int64
	NoneCount   int64
}

// ArticleMostLiked is the article with the most feedback rows
type ArticleMostLiked struct {
	Article
	AddedByUserName string
	Count           int64
}

// ArticleFilter narrows article listings. A zero Paging means no limit.
type ArticleFilter struct {
	ID            int64
	Author        string
	PublishedOnly bool
	SortBy        SortBy
	Paging        Paging
}

// ArticleRepository defines the contract for article data persistence
type ArticleRepository interface {
	// GetByID retrieves a single article by its ID.
	// readOnly=false loads the row for update when called inside a transaction.
	// Returns an EntityNotFoundError if the article doesn't exist.
	GetByID(ctx context.Context, id int64, readOnly bool) (Article, error)

	// Fetch retrieves the articles matching filter, ordered and paged.
	Fetch(ctx context.Context, filter ArticleFilter) ([]Article, error)

	// Count returns how many articles match filter, ignoring paging.
	Count(ctx context.Context, filter ArticleFilter) (int64, error)

	// Store creates a new article. Backfills ID and stamps.
	// Returns a DuplicateTitleError if the title is taken.
	Store(ctx context.Context, a *Article) error

	// Update modifies an existing article.
	// Returns a DuplicateTitleError if another article has the title.
	Update(ctx context.Context, a *Article) error

	// Delete removes an article and its feedback rows.
	// Returns an EntityNotFoundError if not exists
	Delete(ctx context.Context, id int64) error

	// FetchIDs returns up to limit ids greater than cursor in ascending order.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)

	// FetchStats returns like/unlike/none rollups for the articles matching filter.
	FetchStats(ctx context.Context, filter ArticleFilter) ([]ArticleStat, error)

	// GetMostLiked returns the article with the most feedback rows, lowest id on ties.
	// Returns ErrNotFound when there is no feedback at all.
	GetMostLiked(ctx context.Context) (ArticleMostLiked, error)
}

type ArticleCache interface {
	GetArticle(ctx context.Context, id int64) (Article, error)
	SetArticle(ctx context.Context, ar *Article) error
	DeleteArticle(ctx context.Context, id int64) error

	// GetMostLiked also reports whether the entry is logically expired
	GetMostLiked(ctx context.Context) (res ArticleMostLiked, expired bool, err error)
	SetMostLiked(ctx context.Context, ar ArticleMostLiked, ttl time.Duration) error
	DeleteMostLiked(ctx context.Context) error
}

type ArticleUsecase interface {
	Fetch(ctx context.Context, sortBy SortBy, paging Paging) ([]Article, int64, error)
	GetByID(ctx context.Context, id int64) (Article, error)
	Store(ctx context.Context, ar *Article) error
	Update(ctx context.Context, ar *Article) error
	Delete(ctx context.Context, id int64) error
	Publish(ctx context.Context, id int64) error
	Unpublish(ctx context.Context, id int64) error
	RecordFeedback(ctx context.Context, articleID, userID int64, status FeedbackStatus) error
	RecordComment(ctx context.Context, articleID, userID int64, comments string) error
	MostLiked(ctx context.Context) (ArticleMostLiked, error)
	ArticlesWithStats(ctx context.Context, sortBy SortBy, paging Paging) ([]ArticleStat, int64, error)
	MyArticlesWithStats(ctx context.Context, author string, sortBy SortBy, paging Paging) ([]ArticleStat, int64, error)
	ArticleWithStats(ctx context.Context, id int64) (ArticleStat, error)
	InitBloomFilter(ctx context.Context) error
}
