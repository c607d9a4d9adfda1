package api

import (
	"net/http"

	reqdto "spark-bytes/internal/handler/dto/request"
	resdto "spark-bytes/internal/handler/dto/response"
	"spark-bytes/internal/handler/httperr"
	"spark-bytes/internal/handler/middleware"
	"spark-bytes/internal/pkg/errs"
	"spark-bytes/internal/usecase/commands"
	"spark-bytes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	commands commands.ProfileCommands
	queries  queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Get my profile
// @Description Nickname and avatar of the current user. Empty until first saved.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)
	h.respondWithProfile(c, userID)
}

// @Summary Save my profile
// @Description Create or edit the current user's nickname and avatar path
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SaveProfileRequest true "Profile fields"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req reqdto.SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithKind(c, errs.WithCause(errInvalidBody, err))
		return
	}

	saved, err := h.commands.Save(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	h.respondWithProfile(c, saved.UserID())
}

func (h *ProfileHandler) respondWithProfile(c *gin.Context, userID uuid.UUID) {
	view, err := h.queries.Get(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfileView(view))
}
