package rest

import (
	"encoding/xml"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-article-api/domain"
	"github.com/Guyuepp/blog-article-api/internal/rest/middleware"
	"github.com/Guyuepp/blog-article-api/internal/rest/request"
	"github.com/Guyuepp/blog-article-api/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	XMLName xml.Name `json:"-" xml:"error"`
	Message string   `json:"message" xml:"message"`
}

// ArticleHandler  represent the httphandler for article
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	request.RegisterValidators()
	return &ArticleHandler{
		Service: svc,
	}
}

// RegisterRoutes mounts the article endpoints under r
func (a *ArticleHandler) RegisterRoutes(r gin.IRouter) {
	articles := r.Group("/articles")
	articles.GET("", a.FetchArticle)
	articles.POST("", a.Store)
	articles.GET("/stats", a.FetchStats)
	articles.GET("/mine/stats", a.FetchMyStats)
	articles.GET("/most-liked", a.MostLiked)

	articles.GET("/:id", a.GetByID)
	articles.PUT("/:id", a.Update)
	articles.DELETE("/:id", a.Delete)
	articles.GET("/:id/stats", a.GetStats)
	articles.PATCH("/:id/publish", a.Publish)
	articles.PATCH("/:id/unpublish", a.Unpublish)
	articles.PATCH("/:id/like", a.Like)
	articles.PATCH("/:id/unlike", a.Unlike)
	articles.PATCH("/:id/comment", a.Comment)
}

// GetByID will get article by given id
func (a *ArticleHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	art, err := a.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	negotiate(c, http.StatusOK, response.NewArticleFromDomain(&art))
}

// FetchArticle will fetch the published articles page by page
func (a *ArticleHandler) FetchArticle(c *gin.Context) {
	var req request.Paging
	if err := c.ShouldBindQuery(&req); err != nil {
		negotiate(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	paging := req.ToDomain()
	listAr, total, err := a.Service.Fetch(c.Request.Context(), req.Sort(), paging)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := response.MapSlice(listAr, response.NewArticleFromDomain)
	negotiate(c, http.StatusOK, response.NewPagedList(items, paging, total))
}

// Store will store the article by given request body
func (a *ArticleHandler) Store(c *gin.Context) {
	var req request.Article
	if err := c.ShouldBind(&req); err != nil {
		negotiate(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}
	article := req.ToDomain()
	article.AddedByUserID = userID

	if err := a.Service.Store(c.Request.Context(), &article); err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+strconv.FormatInt(article.ID, 10))
	negotiate(c, http.StatusCreated, response.NewArticleFromDomain(&article))
}

// Update replaces the editable fields of the article
func (a *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req request.Article
	if err := c.ShouldBind(&req); err != nil {
		negotiate(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	article := req.ToDomain()
	article.ID = id
	if err := a.Service.Update(c.Request.Context(), &article); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete will delete the article by given param
func (a *ArticleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := a.Service.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (a *ArticleHandler) Publish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := a.Service.Publish(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (a *ArticleHandler) Unpublish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := a.Service.Unpublish(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Like records a like of the current user
func (a *ArticleHandler) Like(c *gin.Context) {
	a.feedback(c, domain.FeedbackLike)
}

// Unlike records an unlike of the current user
func (a *ArticleHandler) Unlike(c *gin.Context) {
	a.feedback(c, domain.FeedbackUnLike)
}

func (a *ArticleHandler) feedback(c *gin.Context, status domain.FeedbackStatus) {
	aid, ok := parseID(c)
	if !ok {
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	if err := a.Service.RecordFeedback(c.Request.Context(), aid, uid, status); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Comment sets the comment of the current user on the article
func (a *ArticleHandler) Comment(c *gin.Context) {
	aid, ok := parseID(c)
	if !ok {
		return
	}
	var req request.Comment
	if err := c.ShouldBind(&req); err != nil {
		negotiate(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}
	uid, ok := currentUser(c)
	if !ok {
		return
	}

	if err := a.Service.RecordComment(c.Request.Context(), aid, uid, req.Comments); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStats returns the feedback rollup of one article
func (a *ArticleHandler) GetStats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	stat, err := a.Service.ArticleWithStats(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	negotiate(c, http.StatusOK, response.NewArticleStatFromDomain(&stat))
}

// FetchStats lists every article with its feedback rollup
func (a *ArticleHandler) FetchStats(c *gin.Context) {
	var req request.Paging
	if err := c.ShouldBindQuery(&req); err != nil {
		negotiate(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	paging := req.ToDomain()
	stats, total, err := a.Service.ArticlesWithStats(c.Request.Context(), req.Sort(), paging)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := response.MapSlice(stats, response.NewArticleStatFromDomain)
	negotiate(c, http.StatusOK, response.NewPagedList(items, paging, total))
}

// FetchMyStats lists the articles of one author with their feedback rollup
func (a *ArticleHandler) FetchMyStats(c *gin.Context) {
	var req request.MyStats
	if err := c.ShouldBindQuery(&req); err != nil {
		negotiate(c, http.StatusBadRequest, ResponseError{Message: err.Error()})
		return
	}

	paging := req.ToDomain()
	stats, total, err := a.Service.MyArticlesWithStats(c.Request.Context(), req.Author, req.Sort(), paging)
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := response.MapSlice(stats, response.NewArticleStatFromDomain)
	negotiate(c, http.StatusOK, response.NewPagedList(items, paging, total))
}

// MostLiked returns the article with the most feedback
func (a *ArticleHandler) MostLiked(c *gin.Context) {
	res, err := a.Service.MostLiked(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	negotiate(c, http.StatusOK, response.NewArticleMostLikedFromDomain(&res))
}

// parseID reads the :id path parameter. A malformed id is reported as not found.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		negotiate(c, http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}

func currentUser(c *gin.Context) (int64, bool) {
	userID, exists := c.Get(middleware.UserIDKey)
	uid, ok := userID.(int64)
	if !exists || !ok {
		negotiate(c, http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
		return 0, false
	}
	return uid, true
}

// negotiate writes data as JSON or XML depending on the Accept header
func negotiate(c *gin.Context, code int, data any) {
	c.Negotiate(code, gin.Negotiate{
		Offered: []string{binding.MIMEJSON, binding.MIMEXML},
		Data:    data,
	})
}

func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = domain.ErrInternalServerError.Error()
	}
	_ = c.Error(err)
	negotiate(c, code, ResponseError{Message: msg})
}

// getStatusCode will get the code of the error from domain.ArticleUsecase
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrBadParamInput), errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
