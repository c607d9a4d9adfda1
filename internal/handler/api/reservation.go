package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "spark-bytes/internal/handler/dto/request"
	resdto "spark-bytes/internal/handler/dto/response"
	"spark-bytes/internal/handler/httperr"
	"spark-bytes/internal/handler/middleware"
	"spark-bytes/internal/pkg/errs"
	"spark-bytes/internal/usecase/commands"
	"spark-bytes/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errs.NewKind(errs.KindInvalidArgument, "invalid request format")

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  q,
	}
}

// @Summary Reserve a post
// @Description Claim one unit of a post for the current user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	var req reqdto.CreateReservationRequest
	// an empty body falls through so the command reports the missing post_id
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithKind(c, errs.WithCause(errInvalidBody, err))
		return
	}

	result, err := h.commands.Reserve(c.Request.Context(), identity, req.PostID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateReservationResponse{
		Success:      true,
		Reservation:  resdto.FromReservation(result.Reservation),
		QuantityLeft: result.QuantityLeft,
	})
}

// @Summary Cancel a reservation
// @Description Cancel a reservation held by the current user. Canceling twice succeeds.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param reservation_id query string true "Reservation ID"
// @Success 200 {object} resdto.SuccessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations [delete]
func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	identity, _ := middleware.GetIdentity(c)

	rawID := c.Query("reservation_id")
	if rawID == "" {
		rawID = c.Query("id")
	}

	if _, err := h.commands.Cancel(c.Request.Context(), identity, rawID); err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.SuccessResponse{Success: true})
}

// @Summary List my reservations
// @Description Every reservation of the current user with its post, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	items, err := h.queries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	response, err := resdto.FromReservationListItems(items)
	if err != nil {
		httperr.AbortWithKind(c, errs.Wrap(err, "map reservations"))
		return
	}
	c.JSON(http.StatusOK, response)
}
