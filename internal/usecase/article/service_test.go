package article

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/blog-article-api/domain"
	"github.com/Guyuepp/blog-article-api/domain/mocks"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

type fixture struct {
	svc          *Service
	articleRepo  *mocks.ArticleRepository
	feedbackRepo *mocks.ArticleFeedbackRepository
	userRepo     *mocks.UserRepository
	cache        *mocks.ArticleCache
	bloom        *mocks.BloomRepository
	tx           *mocks.Transactor
}

func newFixture() *fixture {
	f := &fixture{
		articleRepo:  new(mocks.ArticleRepository),
		feedbackRepo: new(mocks.ArticleFeedbackRepository),
		userRepo:     new(mocks.UserRepository),
		cache:        new(mocks.ArticleCache),
		bloom:        new(mocks.BloomRepository),
		tx:           new(mocks.Transactor),
	}
	f.tx.On("WithinTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	f.svc = NewService(f.articleRepo, f.feedbackRepo, f.userRepo, f.cache, f.bloom, f.tx)
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func TestFetch(t *testing.T) {
	paging := domain.Paging{PageNumber: 2, PageSize: 10}
	filter := domain.ArticleFilter{PublishedOnly: true, SortBy: domain.SortByMostRecent, Paging: paging}
	list := []domain.Article{{ID: 11}, {ID: 12}}

	t.Run("success", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("Fetch", mock.Anything, filter).Return(list, nil).Once()
		f.articleRepo.On("Count", mock.Anything, filter).Return(int64(12), nil).Once()

		res, total, err := f.svc.Fetch(context.TODO(), domain.SortByMostRecent, paging)
		assert.NoError(t, err)
		assert.Equal(t, list, res)
		assert.Equal(t, int64(12), total)
		f.articleRepo.AssertExpectations(t)
	})

	t.Run("invalid paging never queries", func(t *testing.T) {
		f := newFixture()

		_, _, err := f.svc.Fetch(context.TODO(), domain.SortByNone, domain.Paging{PageNumber: 0, PageSize: 10})
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		f.articleRepo.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
		f.articleRepo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
	})

	t.Run("count error", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("Fetch", mock.Anything, filter).Return(list, nil).Maybe()
		f.articleRepo.On("Count", mock.Anything, filter).Return(int64(0), errors.New("db down")).Once()

		_, _, err := f.svc.Fetch(context.TODO(), domain.SortByMostRecent, paging)
		assert.EqualError(t, err, "db down")
	})
}

func TestStore(t *testing.T) {
	t.Run("publishes with a date", func(t *testing.T) {
		f := newFixture()
		ar := &domain.Article{Title: "t", Body: "b", Author: "a", IsPublished: true, AddedByUserID: 1}
		f.userRepo.On("IsValidID", mock.Anything, int64(1)).Return(true, nil).Once()
		f.articleRepo.On("Store", mock.Anything, ar).Return(nil).Once()

		require.NoError(t, f.svc.Store(context.TODO(), ar))
		require.NotNil(t, ar.PublishDate)
		assert.Equal(t, fixedNow, *ar.PublishDate)
	})

	t.Run("draft loses its date", func(t *testing.T) {
		f := newFixture()
		d := fixedNow.Add(-time.Hour)
		ar := &domain.Article{Title: "t", IsPublished: false, PublishDate: &d, AddedByUserID: 1}
		f.userRepo.On("IsValidID", mock.Anything, int64(1)).Return(true, nil).Once()
		f.articleRepo.On("Store", mock.Anything, ar).Return(nil).Once()

		require.NoError(t, f.svc.Store(context.TODO(), ar))
		assert.Nil(t, ar.PublishDate)
	})

	t.Run("duplicate title", func(t *testing.T) {
		f := newFixture()
		ar := &domain.Article{Title: "taken", AddedByUserID: 1}
		f.userRepo.On("IsValidID", mock.Anything, int64(1)).Return(true, nil).Once()
		f.articleRepo.On("Store", mock.Anything, ar).Return(&domain.DuplicateTitleError{Title: "taken"}).Once()

		err := f.svc.Store(context.TODO(), ar)
		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture()
		ar := &domain.Article{Title: "t", AddedByUserID: 42}
		f.userRepo.On("IsValidID", mock.Anything, int64(42)).Return(false, nil).Once()

		err := f.svc.Store(context.TODO(), ar)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		f.articleRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	published := fixedNow.Add(-24 * time.Hour)
	existing := domain.Article{ID: 3, Title: "old", Body: "old", Author: "x", IsPublished: true, PublishDate: &published, AddedByUserID: 1}

	t.Run("keeps the publish date of a published article", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(3), false).Return(existing, nil).Once()
		f.articleRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.Title == "new" && a.PublishDate != nil && a.PublishDate.Equal(published)
		})).Return(nil).Once()

		ar := &domain.Article{ID: 3, Title: "new", Body: "b", Author: "y", IsPublished: true}
		require.NoError(t, f.svc.Update(context.TODO(), ar))
		assert.Equal(t, int64(1), ar.AddedByUserID)
		f.articleRepo.AssertExpectations(t)
	})

	t.Run("unpublishes", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(3), false).Return(existing, nil).Once()
		f.articleRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return !a.IsPublished && a.PublishDate == nil
		})).Return(nil).Once()

		ar := &domain.Article{ID: 3, Title: "new", Body: "b", Author: "y", IsPublished: false}
		require.NoError(t, f.svc.Update(context.TODO(), ar))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(3), false).
			Return(domain.Article{}, domain.NewEntityNotFound("Article", 3)).Once()

		err := f.svc.Update(context.TODO(), &domain.Article{ID: 3, Title: "t"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.articleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("impossible id is not found", func(t *testing.T) {
		f := newFixture()

		err := f.svc.Update(context.TODO(), &domain.Article{ID: 0, Title: "t"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.articleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("title used by another article", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(3), false).Return(existing, nil).Once()
		f.articleRepo.On("Update", mock.Anything, mock.Anything).
			Return(&domain.DuplicateTitleError{Title: "taken"}).Once()

		ar := &domain.Article{ID: 3, Title: "taken", Body: "b", Author: "y", IsPublished: true}
		err := f.svc.Update(context.TODO(), ar)

		var dup *domain.DuplicateTitleError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "taken", dup.Title)
		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
		assert.Equal(t, "taken", ar.Title)
		assert.Zero(t, ar.AddedByUserID)
	})
}

func TestPublishAndUnpublish(t *testing.T) {
	t.Run("publish sets the date in UTC", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(1), false).Return(domain.Article{ID: 1}, nil).Once()
		f.articleRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return a.IsPublished && a.PublishDate != nil && a.PublishDate.Equal(fixedNow) && a.PublishDate.Location() == time.UTC
		})).Return(nil).Once()

		assert.NoError(t, f.svc.Publish(context.TODO(), 1))
		f.articleRepo.AssertExpectations(t)
	})

	t.Run("unpublish clears the date", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(1), false).
			Return(domain.Article{ID: 1, IsPublished: true, PublishDate: &fixedNow}, nil).Once()
		f.articleRepo.On("Update", mock.Anything, mock.MatchedBy(func(a *domain.Article) bool {
			return !a.IsPublished && a.PublishDate == nil
		})).Return(nil).Once()

		assert.NoError(t, f.svc.Unpublish(context.TODO(), 1))
		f.articleRepo.AssertExpectations(t)
	})

	t.Run("invalid id is rejected before lookup", func(t *testing.T) {
		f := newFixture()

		assert.ErrorIs(t, f.svc.Publish(context.TODO(), 0), domain.ErrBadParamInput)
		assert.ErrorIs(t, f.svc.Unpublish(context.TODO(), -4), domain.ErrBadParamInput)
		f.articleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing article", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(9), false).
			Return(domain.Article{}, domain.NewEntityNotFound("Article", 9)).Once()

		err := f.svc.Publish(context.TODO(), 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRecordFeedback(t *testing.T) {
	t.Run("first feedback creates the row", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(1), false).Return(domain.Article{ID: 1}, nil).Once()
		f.userRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2}, nil).Once()
		f.feedbackRepo.On("GetByArticleAndUser", mock.Anything, int64(1), int64(2)).Return(nil, nil).Once()
		f.feedbackRepo.On("Save", mock.Anything, mock.MatchedBy(func(fb *domain.ArticleFeedback) bool {
			return fb.ID == 0 && fb.FeedbackCount == 1 && fb.Status == domain.FeedbackLike && fb.FeedbackDate.Equal(fixedNow)
		}), false).Return(nil).Once()
		f.cache.On("DeleteMostLiked", mock.Anything).Return(nil).Once()

		assert.NoError(t, f.svc.RecordFeedback(context.TODO(), 1, 2, domain.FeedbackLike))
		f.feedbackRepo.AssertExpectations(t)
		f.cache.AssertExpectations(t)
	})

	t.Run("third attempt is accepted", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(1), false).Return(domain.Article{ID: 1}, nil).Once()
		f.userRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2}, nil).Once()
		f.feedbackRepo.On("GetByArticleAndUser", mock.Anything, int64(1), int64(2)).
			Return(&domain.ArticleFeedback{ID: 5, ArticleID: 1, UserID: 2, Status: domain.FeedbackLike, FeedbackCount: 2}, nil).Once()
		f.feedbackRepo.On("Save", mock.Anything, mock.MatchedBy(func(fb *domain.ArticleFeedback) bool {
			return fb.ID == 5 && fb.FeedbackCount == 3 && fb.Status == domain.FeedbackUnLike
		}), false).Return(nil).Once()
		f.cache.On("DeleteMostLiked", mock.Anything).Return(errors.New("redis down")).Once()

		assert.NoError(t, f.svc.RecordFeedback(context.TODO(), 1, 2, domain.FeedbackUnLike))
	})

	t.Run("fourth attempt is rejected and nothing is saved", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(1), false).Return(domain.Article{ID: 1}, nil).Once()
		f.userRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2}, nil).Once()
		f.feedbackRepo.On("GetByArticleAndUser", mock.Anything, int64(1), int64(2)).
			Return(&domain.ArticleFeedback{ID: 5, ArticleID: 1, UserID: 2, FeedbackCount: 3}, nil).Once()

		err := f.svc.RecordFeedback(context.TODO(), 1, 2, domain.FeedbackLike)
		assert.ErrorIs(t, err, domain.ErrFeedbackAttemptsExceeded)
		assert.ErrorIs(t, err, domain.ErrInvalidOperation)
		f.feedbackRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		f.cache.AssertNotCalled(t, "DeleteMostLiked", mock.Anything)
	})

	t.Run("invalid ids", func(t *testing.T) {
		f := newFixture()

		assert.ErrorIs(t, f.svc.RecordFeedback(context.TODO(), 0, 2, domain.FeedbackLike), domain.ErrBadParamInput)
		assert.ErrorIs(t, f.svc.RecordFeedback(context.TODO(), 1, 0, domain.FeedbackLike), domain.ErrBadParamInput)
		assert.ErrorIs(t, f.svc.RecordFeedback(context.TODO(), 1, 2, domain.FeedbackStatus(9)), domain.ErrBadParamInput)
		f.tx.AssertNotCalled(t, "WithinTransaction", mock.Anything, mock.Anything)
	})

	t.Run("missing user", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(1), false).Return(domain.Article{ID: 1}, nil).Once()
		f.userRepo.On("GetByID", mock.Anything, int64(7)).Return(domain.User{}, domain.NewEntityNotFound("User", 7)).Once()

		err := f.svc.RecordFeedback(context.TODO(), 1, 7, domain.FeedbackLike)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRecordComment(t *testing.T) {
	t.Run("blank comment", func(t *testing.T) {
		f := newFixture()

		err := f.svc.RecordComment(context.TODO(), 1, 2, "   ")
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		f.articleRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("comment does not use an attempt", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("GetByID", mock.Anything, int64(1), false).Return(domain.Article{ID: 1}, nil).Once()
		f.userRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.User{ID: 2}, nil).Once()
		f.feedbackRepo.On("GetByArticleAndUser", mock.Anything, int64(1), int64(2)).
			Return(&domain.ArticleFeedback{ID: 5, FeedbackCount: 3, Status: domain.FeedbackLike}, nil).Once()
		f.feedbackRepo.On("Save", mock.Anything, mock.MatchedBy(func(fb *domain.ArticleFeedback) bool {
			return fb.FeedbackCount == 3 && fb.Comments != nil && *fb.Comments == "great read" && fb.CommentDate.Equal(fixedNow)
		}), false).Return(nil).Once()
		f.cache.On("DeleteMostLiked", mock.Anything).Return(nil).Once()

		assert.NoError(t, f.svc.RecordComment(context.TODO(), 1, 2, "great read"))
		f.feedbackRepo.AssertExpectations(t)
	})
}

func TestStats(t *testing.T) {
	paging := domain.Paging{PageNumber: 1, PageSize: 5}

	t.Run("mine filters by author", func(t *testing.T) {
		f := newFixture()
		filter := domain.ArticleFilter{Author: "alice", SortBy: domain.SortByMostLikes, Paging: paging}
		stats := []domain.ArticleStat{{Article: domain.Article{ID: 1}, LikeCount: 3}}
		f.articleRepo.On("FetchStats", mock.Anything, filter).Return(stats, nil).Once()
		f.articleRepo.On("Count", mock.Anything, filter).Return(int64(1), nil).Once()

		res, total, err := f.svc.MyArticlesWithStats(context.TODO(), "alice", domain.SortByMostLikes, paging)
		assert.NoError(t, err)
		assert.Equal(t, stats, res)
		assert.Equal(t, int64(1), total)
	})

	t.Run("mine requires an author", func(t *testing.T) {
		f := newFixture()

		_, _, err := f.svc.MyArticlesWithStats(context.TODO(), "", domain.SortByNone, paging)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("single article", func(t *testing.T) {
		f := newFixture()
		f.articleRepo.On("FetchStats", mock.Anything, domain.ArticleFilter{ID: 4}).
			Return([]domain.ArticleStat{{Article: domain.Article{ID: 4}, UnLikeCount: 2}}, nil).Once()
		f.articleRepo.On("FetchStats", mock.Anything, domain.ArticleFilter{ID: 5}).
			Return([]domain.ArticleStat{}, nil).Once()

		res, err := f.svc.ArticleWithStats(context.TODO(), 4)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), res.UnLikeCount)

		_, err = f.svc.ArticleWithStats(context.TODO(), 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestInitBloomFilter(t *testing.T) {
	f := newFixture()
	first := make([]int64, bloomWarmUpBatch)
	for i := range first {
		first[i] = int64(i + 1)
	}
	second := []int64{1001, 1002}

	f.articleRepo.On("FetchIDs", mock.Anything, int64(0), int64(bloomWarmUpBatch)).Return(first, nil).Once()
	f.articleRepo.On("FetchIDs", mock.Anything, int64(1000), int64(bloomWarmUpBatch)).Return(second, nil).Once()
	f.bloom.On("BulkAdd", mock.Anything, first).Return(nil).Once()
	f.bloom.On("BulkAdd", mock.Anything, second).Return(nil).Once()

	assert.NoError(t, f.svc.InitBloomFilter(context.TODO()))
	f.articleRepo.AssertExpectations(t)
	f.bloom.AssertExpectations(t)
}
