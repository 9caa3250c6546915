package article

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/blog-article-api/domain"
	"github.com/Guyuepp/blog-article-api/internal/metrics"
)

const bloomWarmUpBatch = 1000

type Service struct {
	articleRepo  domain.ArticleRepository
	feedbackRepo domain.ArticleFeedbackRepository
	userRepo     domain.UserRepository
	articleCache domain.ArticleCache
	bloomRepo    domain.BloomRepository
	tx           domain.Transactor
	now          func() time.Time
}

var _ domain.ArticleUsecase = (*Service)(nil)

// NewService will create a new article service object
func NewService(
	a domain.ArticleRepository,
	f domain.ArticleFeedbackRepository,
	u domain.UserRepository,
	ac domain.ArticleCache,
	b domain.BloomRepository,
	tx domain.Transactor,
) *Service {
	return &Service{
		articleRepo:  a,
		feedbackRepo: f,
		userRepo:     u,
		articleCache: ac,
		bloomRepo:    b,
		tx:           tx,
		now:          time.Now,
	}
}

// Fetch lists published articles. The page and the total count are read concurrently.
func (a *Service) Fetch(ctx context.Context, sortBy domain.SortBy, paging domain.Paging) ([]domain.Article, int64, error) {
	if !paging.Valid() {
		return nil, 0, domain.InvalidArgument("paging")
	}
	filter := domain.ArticleFilter{PublishedOnly: true, SortBy: sortBy, Paging: paging}

	var (
		res   []domain.Article
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res, err = a.articleRepo.Fetch(gctx, filter)
		return
	})
	g.Go(func() (err error) {
		total, err = a.articleRepo.Count(gctx, filter)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (a *Service) GetByID(ctx context.Context, id int64) (domain.Article, error) {
	if id <= 0 {
		return domain.Article{}, domain.NewEntityNotFound("Article", id)
	}
	return a.articleRepo.GetByID(ctx, id, true)
}

// Store creates ar on behalf of ar.AddedByUserID, keeping the publish state consistent.
func (a *Service) Store(ctx context.Context, ar *domain.Article) error {
	ok, err := a.userRepo.IsValidID(ctx, ar.AddedByUserID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.InvalidArgument("addedByUserId")
	}

	ar.ID = 0
	ar.NormalizePublishState(a.now())
	return a.articleRepo.Store(ctx, ar)
}

// Update copies the editable fields of ar onto the stored article. On
// success ar holds the persisted state.
func (a *Service) Update(ctx context.Context, ar *domain.Article) error {
	if ar.ID <= 0 {
		return domain.NewEntityNotFound("Article", ar.ID)
	}
	return a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := a.articleRepo.GetByID(ctx, ar.ID, false)
		if err != nil {
			return err
		}

		existing.Title = ar.Title
		existing.Body = ar.Body
		existing.Author = ar.Author
		switch {
		case !ar.IsPublished:
			existing.Unpublish()
		case ar.PublishDate != nil:
			existing.Publish(*ar.PublishDate)
		case !existing.IsPublished:
			existing.Publish(a.now())
		}

		if err := a.articleRepo.Update(ctx, &existing); err != nil {
			return err
		}
		*ar = existing
		return nil
	})
}

func (a *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewEntityNotFound("Article", id)
	}
	return a.articleRepo.Delete(ctx, id)
}

func (a *Service) Publish(ctx context.Context, id int64) error {
	return a.changePublishState(ctx, id, func(ar *domain.Article) {
		ar.Publish(a.now())
	})
}

func (a *Service) Unpublish(ctx context.Context, id int64) error {
	return a.changePublishState(ctx, id, func(ar *domain.Article) {
		ar.Unpublish()
	})
}

// changePublishState validates the id before touching storage
func (a *Service) changePublishState(ctx context.Context, id int64, apply func(*domain.Article)) error {
	if id <= 0 {
		return domain.InvalidArgument("articleId")
	}
	return a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		ar, err := a.articleRepo.GetByID(ctx, id, false)
		if err != nil {
			return err
		}
		apply(&ar)
		return a.articleRepo.Update(ctx, &ar)
	})
}

// RecordFeedback stores a like or unlike of userID on articleID. A user has
// at most MaxArticleFeedbackAttempts feedbacks per article; the attempt that
// goes over the limit is rolled back and nothing is persisted.
func (a *Service) RecordFeedback(ctx context.Context, articleID, userID int64, status domain.FeedbackStatus) error {
	if articleID <= 0 {
		return domain.InvalidArgument("articleId")
	}
	if userID <= 0 {
		return domain.InvalidArgument("userId")
	}
	if status < domain.FeedbackNone || status > domain.FeedbackUnLike {
		return domain.InvalidArgument("status")
	}

	err := a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		f, err := a.loadFeedback(ctx, articleID, userID)
		if err != nil {
			return err
		}

		f.FeedbackCount++
		if f.FeedbackCount > domain.MaxArticleFeedbackAttempts {
			return domain.ErrFeedbackAttemptsExceeded
		}

		now := a.now().UTC()
		f.Status = status
		f.FeedbackDate = &now
		return a.feedbackRepo.Save(ctx, f, false)
	})

	switch {
	case err == nil:
		metrics.FeedbackTotal.WithLabelValues(status.String(), "recorded").Inc()
		a.invalidateMostLiked(ctx)
	case errors.Is(err, domain.ErrFeedbackAttemptsExceeded):
		metrics.FeedbackTotal.WithLabelValues(status.String(), "rejected").Inc()
	default:
		metrics.FeedbackTotal.WithLabelValues(status.String(), "error").Inc()
	}
	return err
}

// RecordComment sets the comment of userID on articleID. Comments do not
// count as feedback attempts.
func (a *Service) RecordComment(ctx context.Context, articleID, userID int64, comments string) error {
	if articleID <= 0 {
		return domain.InvalidArgument("articleId")
	}
	if userID <= 0 {
		return domain.InvalidArgument("userId")
	}
	if strings.TrimSpace(comments) == "" {
		return domain.InvalidArgument("comments")
	}

	err := a.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		f, err := a.loadFeedback(ctx, articleID, userID)
		if err != nil {
			return err
		}

		now := a.now().UTC()
		f.Comments = &comments
		f.CommentDate = &now
		return a.feedbackRepo.Save(ctx, f, false)
	})
	if err != nil {
		return err
	}
	a.invalidateMostLiked(ctx)
	return nil
}

// loadFeedback checks that both the article and the user exist and returns
// the feedback row of the pair, a new one when there is none. The article
// row stays locked until the transaction ends.
func (a *Service) loadFeedback(ctx context.Context, articleID, userID int64) (*domain.ArticleFeedback, error) {
	if _, err := a.articleRepo.GetByID(ctx, articleID, false); err != nil {
		return nil, err
	}
	if _, err := a.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	f, err := a.feedbackRepo.GetByArticleAndUser(ctx, articleID, userID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		f = &domain.ArticleFeedback{
			ArticleID: articleID,
			UserID:    userID,
			Status:    domain.FeedbackNone,
		}
	}
	return f, nil
}

func (a *Service) invalidateMostLiked(ctx context.Context) {
	if err := a.articleCache.DeleteMostLiked(ctx); err != nil {
		logrus.Warnf("failed to invalidate most liked cache: %v", err)
	}
}

func (a *Service) MostLiked(ctx context.Context) (domain.ArticleMostLiked, error) {
	return a.articleRepo.GetMostLiked(ctx)
}

func (a *Service) ArticlesWithStats(ctx context.Context, sortBy domain.SortBy, paging domain.Paging) ([]domain.ArticleStat, int64, error) {
	return a.fetchStats(ctx, domain.ArticleFilter{SortBy: sortBy, Paging: paging})
}

func (a *Service) MyArticlesWithStats(ctx context.Context, author string, sortBy domain.SortBy, paging domain.Paging) ([]domain.ArticleStat, int64, error) {
	if strings.TrimSpace(author) == "" {
		return nil, 0, domain.InvalidArgument("author")
	}
	return a.fetchStats(ctx, domain.ArticleFilter{Author: author, SortBy: sortBy, Paging: paging})
}

func (a *Service) fetchStats(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleStat, int64, error) {
	if !filter.Paging.Valid() {
		return nil, 0, domain.InvalidArgument("paging")
	}

	var (
		res   []domain.ArticleStat
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		res, err = a.articleRepo.FetchStats(gctx, filter)
		return
	})
	g.Go(func() (err error) {
		total, err = a.articleRepo.Count(gctx, filter)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return res, total, nil
}

func (a *Service) ArticleWithStats(ctx context.Context, id int64) (domain.ArticleStat, error) {
	if id <= 0 {
		return domain.ArticleStat{}, domain.NewEntityNotFound("Article", id)
	}
	res, err := a.articleRepo.FetchStats(ctx, domain.ArticleFilter{ID: id})
	if err != nil {
		return domain.ArticleStat{}, err
	}
	if len(res) == 0 {
		return domain.ArticleStat{}, domain.NewEntityNotFound("Article", id)
	}
	return res[0], nil
}

// InitBloomFilter loads every article id into the bloom filter
func (a *Service) InitBloomFilter(ctx context.Context) error {
	var (
		cursor int64
		total  int
	)
	for {
		ids, err := a.articleRepo.FetchIDs(ctx, cursor, bloomWarmUpBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := a.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < bloomWarmUpBatch {
			break
		}
	}
	logrus.Infof("bloom filter initialized with %d article ids", total)
	return nil
}
