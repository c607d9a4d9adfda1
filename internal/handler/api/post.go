package api

import (
	"net/http"
	"strconv"
	"strings"

	reqdto "spark-bytes/internal/handler/dto/request"
	resdto "spark-bytes/internal/handler/dto/response"
	"spark-bytes/internal/handler/httperr"
	"spark-bytes/internal/handler/middleware"
	"spark-bytes/internal/pkg/errs"
	"spark-bytes/internal/usecase/commands"
	"spark-bytes/internal/usecase/listing"
	"spark-bytes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	commands commands.PostCommands
	queries  queries.PostQueries
}

func NewPostHandler(cmds commands.PostCommands, q queries.PostQueries) *PostHandler {
	return &PostHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary List posts
// @Description Feed of posts narrowed by tab and filters. Answers 304 when If-None-Match matches the current ETag.
// @Tags posts
// @Produce json
// @Param tab query string false "active, ended or all" default(active)
// @Param search query string false "Matches title or description"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Param location query string false "Substring of the location"
// @Param min_available query int false "Minimum quantity left"
// @Param sort query string false "newest, oldest, event-early or event-late" default(newest)
// @Success 200 {object} resdto.PostListResponse
// @Success 304
// @Failure 400 {object} httperr.Response
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	filter, err := listing.ParseFilter(listing.RawFilter{
		Tab:          c.Query("tab"),
		Search:       c.Query("search"),
		DateFrom:     c.Query("date_from"),
		DateTo:       c.Query("date_to"),
		Location:     c.Query("location"),
		MinAvailable: c.Query("min_available"),
		Sort:         c.Query("sort"),
	})
	if err != nil {
		httperr.AbortWithKind(c, errs.Mark(err, errs.ErrInvalidArgument))
		return
	}

	feed, err := h.queries.Feed(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	etag := strconv.Quote(feed.Version)
	c.Header("ETag", etag)
	c.Header("Cache-Control", "no-cache")
	if etagMatches(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}

	response, err := resdto.FromPostViews(feed.Posts)
	if err != nil {
		httperr.AbortWithKind(c, errs.Wrap(err, "map posts"))
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} resdto.PostEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	view, err := h.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	post, err := resdto.FromPostView(view)
	if err != nil {
		httperr.AbortWithKind(c, errs.Wrap(err, "map post"))
		return
	}
	c.JSON(http.StatusOK, resdto.PostEnvelope{Post: post})
}

// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePostRequest true "Post"
// @Success 201 {object} resdto.PostMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req reqdto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithKind(c, errs.WithCause(errInvalidBody, err))
		return
	}

	created, err := h.commands.Create(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	h.respondWithPost(c, http.StatusCreated, created.ID().String(), "Post created successfully")
}

// @Summary Update post
// @Description Partial update by the owner. Quantities cannot be changed.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Param request body reqdto.UpdatePostRequest true "Fields to change"
// @Success 200 {object} resdto.PostMutationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req reqdto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithKind(c, errs.WithCause(errInvalidBody, err))
		return
	}

	updated, err := h.commands.Update(c.Request.Context(), identity, c.Param("id"), req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	h.respondWithPost(c, http.StatusOK, updated.ID().String(), "")
}

// @Summary Delete post
// @Description Deletes the post and its reservations. Holders are notified.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Post ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	if _, err := h.commands.Delete(c.Request.Context(), identity, c.Param("id")); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// respondWithPost re-reads the post so the body matches what the feed serves.
func (h *PostHandler) respondWithPost(c *gin.Context, status int, id, message string) {
	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	post, err := resdto.FromPostView(view)
	if err != nil {
		httperr.AbortWithKind(c, errs.Wrap(err, "map post"))
		return
	}
	c.JSON(status, resdto.PostMutationResponse{Success: true, Post: post, Message: message})
}

// etagMatches applies weak comparison to an If-None-Match list.
func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
