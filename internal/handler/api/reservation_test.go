//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"spark-bytes/internal/domain/user"
	"spark-bytes/internal/handler/api"
	resdto "spark-bytes/internal/handler/dto/response"
	"spark-bytes/internal/handler/middleware"
	"spark-bytes/internal/usecase/commands"
	"spark-bytes/internal/usecase/queries"
	"spark-bytes/tests/common/builder"
	"spark-bytes/tests/common/httptest"
	commandsmock "spark-bytes/tests/mock/commands"
	queriesmock "spark-bytes/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// withIdentity stands in for the auth middleware.
func withIdentity(identity *user.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity != nil {
			middleware.SetIdentity(c, identity)
		}
		c.Next()
	}
}

func mustIdentity(t *testing.T) *user.Identity {
	t.Helper()
	identity, err := user.NewIdentity(uuid.New(), "student@campus.test", user.RoleAuthenticated)
	require.NoError(t, err)
	return identity
}

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	identity     *user.Identity
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.identity = mustIdentity(s.T())

	h := api.NewReservationHandler(s.mockCommands, s.mockQueries)
	g := s.router.Group("/api/reservations", withIdentity(s.identity))
	g.POST("", h.CreateReservation)
	g.DELETE("", h.CancelReservation)
	g.GET("", h.ListReservations)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	postID := uuid.New()
	created := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.PostID = postID
		b.UserID = s.identity.ID()
	}).Reconstruct()

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			Reserve(gomock.Any(), s.identity, postID.String()).
			Return(&commands.ReserveResult{Reservation: created, QuantityLeft: 4}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations",
			map[string]string{"post_id": postID.String()}, "")

		var body resdto.CreateReservationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal(created.ID(), body.Reservation.ID)
		s.Equal("reserved", body.Reservation.Status)
		s.Equal(4, body.QuantityLeft)
	})

	s.Run("missing post_id reaches the command", func() {
		s.mockCommands.EXPECT().
			Reserve(gomock.Any(), s.identity, "").
			Return(nil, commands.ErrPostIDRequired)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "post_id is required")
	})

	s.Run("empty body reaches the command", func() {
		s.mockCommands.EXPECT().
			Reserve(gomock.Any(), s.identity, "").
			Return(nil, commands.ErrPostIDRequired)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "post_id is required")
	})

	s.Run("malformed json", func() {
		w := httptest.Do(s.T(), s.router, http.MethodPost, "/api/reservations", `{"post_id":`)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid request format")
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"post not found", commands.ErrPostNotFound, http.StatusNotFound, "post not found"},
		{"sold out", commands.ErrNoAvailability, http.StatusConflict, "no availability"},
		{"listing ended", commands.ErrListingEnded, http.StatusConflict, "listing ended"},
		{"already reserved", commands.ErrAlreadyReserved, http.StatusConflict, ""},
		{"contention", commands.ErrContention, http.StatusConflict, "no longer available"},
		{"unexpected failure is hidden", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range errCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().
				Reserve(gomock.Any(), s.identity, postID.String()).
				Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/reservations",
				map[string]string{"post_id": postID.String()}, "")
			httptest.AssertErrorResponse(s.T(), w, tc.wantStatus, tc.wantMsg)
			s.NotContains(w.Body.String(), "connection reset")
		})
	}
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()

	s.Run("reservation_id parameter", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.identity, reservationID.String()).
			Return(&commands.CancelResult{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations?reservation_id="+reservationID.String(), nil, "")

		var body resdto.SuccessResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.True(body.Success)
	})

	s.Run("id alias", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), s.identity, reservationID.String()).
			Return(&commands.CancelResult{AlreadyCanceled: true}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations?id="+reservationID.String(), nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
	})

	errCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing id", commands.ErrReservationIDRequired, http.StatusBadRequest},
		{"not owner", commands.ErrReservationNotOwned, http.StatusForbidden},
		{"not found", commands.ErrReservationNotFound, http.StatusNotFound},
		{"unauthenticated", commands.ErrUnauthenticated, http.StatusUnauthorized},
	}
	for _, tc := range errCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().
				Cancel(gomock.Any(), s.identity, gomock.Any()).
				Return(nil, tc.err)

			w := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/api/reservations", nil, "")
			httptest.AssertErrorResponse(s.T(), w, tc.wantStatus, tc.err.Error())
		})
	}
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	endedAt := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	items := []*queries.ReservationListItem{
		{
			ID: uuid.New(), PostID: uuid.New(), UserID: s.identity.ID(), Status: "reserved",
			CreatedAt: builder.DefaultCreatedAt.Add(time.Hour),
			Post:      queries.PostSnapshot{Title: "Bagels", QuantityLeft: 2, TotalQuantity: 6, Active: true},
		},
		{
			ID: uuid.New(), PostID: uuid.New(), UserID: s.identity.ID(), Status: "canceled",
			CreatedAt: builder.DefaultCreatedAt,
			Post:      queries.PostSnapshot{Title: "Sushi", EndTime: &endedAt, Active: false},
		},
	}

	s.Run("success", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.identity.ID()).Return(items, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil, "")

		var body resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Require().Len(body.Reservations, 2)
		s.Equal(items[0].ID, body.Reservations[0].ID)
		s.Equal("Bagels", body.Reservations[0].Post.Title)
		s.True(body.Reservations[0].Post.Active)
		s.Equal("canceled", body.Reservations[1].Status)
		s.False(body.Reservations[1].Post.Active)
	})

	s.Run("empty list is an array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.identity.ID()).Return(nil, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations", nil, "")
		s.Equal(http.StatusOK, w.Code)
		s.JSONEq(`{"reservations":[]}`, w.Body.String())
	})
}

func TestReservationHandler_NoIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockReservationCommands(ctrl)
	qs := queriesmock.NewMockReservationQueries(ctrl)

	router := gin.New()
	h := api.NewReservationHandler(cmds, qs)
	router.GET("/api/reservations", h.ListReservations)

	qs.EXPECT().ListByUser(gomock.Any(), uuid.Nil).Return(nil, queries.ErrUnauthenticated)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/api/reservations", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
