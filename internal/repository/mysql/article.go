package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-article-api/domain"
	"github.com/Guyuepp/blog-article-api/internal/repository/mysql/model"
)

const articleColumns = "a.id, a.title, a.body, a.author, a.publish_date, a.is_published, a.added_by_user_id, a.created_date, a.modified_date"

type articleRepository struct {
	dbc       *DBContext
	articles  *Store[model.Article]
	feedbacks *Store[model.ArticleFeedback]
}

// the mysql layer only deals with persistence
var _ domain.ArticleRepository = (*articleRepository)(nil)

func NewArticleDBRepository(dbc *DBContext) *articleRepository {
	return &articleRepository{
		dbc:       dbc,
		articles:  NewStore[model.Article](dbc),
		feedbacks: NewStore[model.ArticleFeedback](dbc),
	}
}

func (m *articleRepository) GetByID(ctx context.Context, id int64, readOnly bool) (domain.Article, error) {
	article, err := m.articles.GetByID(ctx, id, readOnly, true)
	if err != nil {
		return domain.Article{}, err
	}
	return article.ToDomain(), nil
}

func (m *articleRepository) Fetch(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	q := Query{
		Scopes:   []func(*gorm.DB) *gorm.DB{filterScope("", filter)},
		Order:    articleOrder("", filter.SortBy),
		ReadOnly: true,
	}
	if filter.Paging.Valid() {
		q.Offset = filter.Paging.Offset()
		q.Limit = filter.Paging.PageSize
	}
	articles, err := m.articles.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Article, len(articles))
	for i := range articles {
		res[i] = articles[i].ToDomain()
	}
	return res, nil
}

func (m *articleRepository) Count(ctx context.Context, filter domain.ArticleFilter) (int64, error) {
	return m.articles.Count(ctx, Query{Scopes: []func(*gorm.DB) *gorm.DB{filterScope("", filter)}})
}

func (m *articleRepository) Store(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	if err := m.articles.Create(ctx, true, articleModel); err != nil {
		return titleConflict(err, a.Title)
	}
	a.ID = articleModel.ID
	a.CreatedDate = articleModel.CreatedDate
	return nil
}

func (m *articleRepository) Update(ctx context.Context, a *domain.Article) error {
	articleModel := model.NewArticleFromDomain(a)
	if err := m.articles.Update(ctx, true, articleModel); err != nil {
		return titleConflict(err, a.Title)
	}
	a.ModifiedDate = articleModel.ModifiedDate
	return nil
}

func (m *articleRepository) Delete(ctx context.Context, id int64) error {
	return m.dbc.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := m.feedbacks.DeleteWhere(ctx, true, "article_id = ?", id); err != nil {
			return err
		}
		return m.articles.DeleteByID(ctx, true, id)
	})
}

func (m *articleRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.articles.Scope(ctx, Query{
		Scopes: []func(*gorm.DB) *gorm.DB{func(db *gorm.DB) *gorm.DB {
			return db.Where("id > ?", cursor)
		}},
		Order:    "id",
		Limit:    int(limit),
		ReadOnly: true,
	}).Pluck("id", &ids).Error
	return
}

func (m *articleRepository) FetchStats(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleStat, error) {
	db := m.dbc.Conn(ctx).
		Table("articles AS a").
		Select(articleColumns+`,
			COALESCE(SUM(CASE WHEN f.status = ? THEN 1 ELSE 0 END), 0) AS like_count,
			COALESCE(SUM(CASE WHEN f.status = ? THEN 1 ELSE 0 END), 0) AS un_like_count,
			COALESCE(SUM(CASE WHEN f.status = ? THEN 1 ELSE 0 END), 0) AS none_count`,
			int8(domain.FeedbackLike), int8(domain.FeedbackUnLike), int8(domain.FeedbackNone)).
		Joins("LEFT JOIN article_feedbacks AS f ON f.article_id = a.id").
		Scopes(filterScope("a.", filter)).
		Group("a.id").
		Order(articleOrder("a.", filter.SortBy))
	if filter.Paging.Valid() {
		db = db.Offset(filter.Paging.Offset()).Limit(filter.Paging.PageSize)
	}

	var rows []model.ArticleStat
	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}
	res := make([]domain.ArticleStat, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (m *articleRepository) GetMostLiked(ctx context.Context) (domain.ArticleMostLiked, error) {
	counts := m.dbc.Conn(ctx).
		Model(&model.ArticleFeedback{}).
		Select("article_id, COUNT(*) AS feedback_count").
		Group("article_id").
		Order("feedback_count DESC, article_id ASC").
		Limit(1)

	var rows []model.ArticleMostLiked
	err := m.dbc.Conn(ctx).
		Table("articles AS a").
		Select("a.id, a.title, a.body, a.author, a.publish_date, a.is_published, a.added_by_user_id, u.name AS added_by_user_name, c.feedback_count").
		Joins("JOIN (?) AS c ON c.article_id = a.id", counts).
		Joins("LEFT JOIN users AS u ON u.id = a.added_by_user_id").
		Scan(&rows).Error
	if err != nil {
		return domain.ArticleMostLiked{}, err
	}
	if len(rows) == 0 {
		return domain.ArticleMostLiked{}, domain.ErrNotFound
	}
	return rows[0].ToDomain(), nil
}

// titleConflict reports a unique key violation on articles as a duplicate
// title, the only unique key of the table besides the id.
func titleConflict(err error, title string) error {
	if errors.Is(err, domain.ErrConflict) {
		return &domain.DuplicateTitleError{Title: title}
	}
	return err
}

func filterScope(prefix string, filter domain.ArticleFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.ID > 0 {
			db = db.Where(prefix+"id = ?", filter.ID)
		}
		if filter.Author != "" {
			db = db.Where(prefix+"author = ?", filter.Author)
		}
		if filter.PublishedOnly {
			db = db.Where(prefix+"is_published = ?", true)
		}
		return db
	}
}

func articleOrder(prefix string, sortBy domain.SortBy) string {
	switch sortBy {
	case domain.SortByMostRecent:
		return prefix + "publish_date DESC, " + prefix + "id ASC"
	case domain.SortByMostLikes:
		if prefix != "" {
			return "like_count DESC, " + prefix + "id ASC"
		}
	}
	return prefix + "id ASC"
}
