//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-reserve/internal/domain/booking"
	"salon-reserve/internal/domain/user"
	"salon-reserve/internal/handler/api"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/pkg/errs"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/tests/common/builder"
	"salon-reserve/tests/common/httptest"
	"salon-reserve/tests/common/testutil"
	commandsmock "salon-reserve/tests/mock/commands"
	queriesmock "salon-reserve/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockBookingCommands
	mockReschedules *commandsmock.MockRescheduleCommands
	mockQueries     *queriesmock.MockBookingQueries
	handler         *api.BookingHandler
	authedUserID    uuid.UUID
	authedRole      user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockReschedules = commandsmock.NewMockRescheduleCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockReschedules, s.mockQueries)

	s.authedUserID = uuid.New()
	s.authedRole = user.RoleCustomer

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", s.authedRole)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.GetUserBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/payment-note", authMiddleware, s.handler.SubmitPaymentNote)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.UpdateBookingStatus)
	s.router.POST("/bookings/:id/reschedule", authMiddleware, s.handler.RescheduleBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	idempotencyHeaders := map[string]string{"Idempotency-Key": uuid.New().String()}

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: returns 201 Created for a fresh request", func() {
		result := &commands.CreateBookingResult{
			BookingID: uuid.New(),
			Status:    string(booking.StatusPendingPayment),
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, idempotencyHeaders, "bearer-token")

		var resp resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(result.BookingID, resp.ID)
		s.Equal(string(booking.StatusPendingPayment), resp.Status)
	})

	s.Run("success: returns 200 OK when the idempotency key replays", func() {
		result := &commands.CreateBookingResult{
			BookingID:  uuid.New(),
			Status:     string(booking.StatusPendingPayment),
			IsReplayed: true,
		}
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, idempotencyHeaders, "bearer-token")

		var resp resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(result.BookingID, resp.ID)
	})

	s.Run("error: missing Idempotency-Key header", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: malformed Idempotency-Key header", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"}, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: validation failures return 400", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing service_ids", testutil.Field("service_ids", nil)},
			{"empty service_ids", testutil.Field("service_ids", []string{})},
			{"missing start_time", testutil.Field("start_time", nil)},
			{"malformed start_time", testutil.Field("start_time", "yesterday")},
		}
		for _, tt := range cases {
			s.Run(tt.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tt.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, idempotencyHeaders, "bearer-token")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: slot conflict surfaces as 409 with reason", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrBookingConflict).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, idempotencyHeaders, "bearer-token")

		httptest.AssertConflictReason(s.T(), rec, http.StatusConflict, "slot_taken")
	})

	s.Run("error: same key different payload returns 409", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDuplicateBooking).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, idempotencyHeaders, "bearer-token")

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: unauthenticated returns 401", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, idempotencyHeaders, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: owner reads own booking", func() {
		view := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.CustomerID = s.authedUserID
		}).BuildViewQuery()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var resp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.CustomerID, resp.CustomerID)
	})

	s.Run("success: admin reads someone else's booking", func() {
		s.authedRole = user.RoleAdmin
		defer func() { s.authedRole = user.RoleCustomer }()

		view := builder.NewBookingBuilder().BuildViewQuery()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: non-owner customer gets 403", func() {
		view := builder.NewBookingBuilder().BuildViewQuery()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: unknown booking returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.authedUserID, id).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "bearer-token")

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestSubmitPaymentNote
// ================================================================================

func (s *BookingHandlerTestSuite) TestSubmitPaymentNote() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/payment-note"
	reqBody := map[string]any{"payment_ref": "TRANSFER-20240601-001"}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().SubmitPaymentNote(gomock.Any(), id, gomock.Any(), "TRANSFER-20240601-001").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: missing payment_ref returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: wrong lifecycle stage returns 409", func() {
		s.mockCommands.EXPECT().SubmitPaymentNote(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(booking.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertConflictReason(s.T(), rec, http.StatusConflict, "invalid_transition")
	})

	s.Run("error: non-owner returns 403", func() {
		s.mockCommands.EXPECT().SubmitPaymentNote(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(booking.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusForbidden, rec.Code)
	})
}

// ================================================================================
// TestUpdateBookingStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/status"

	s.Run("success: valid transition returns 204", func() {
		s.mockCommands.EXPECT().SetBookingStatus(gomock.Any(), id, gomock.Any(), booking.StatusCancelled).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, "bearer-token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: unknown status string returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "paused"}, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: admin-only transition returns 403", func() {
		s.mockCommands.EXPECT().SetBookingStatus(gomock.Any(), id, gomock.Any(), booking.StatusConfirmed).
			Return(booking.ErrAdminOnly).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "bearer-token")

		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: premature completion returns 409", func() {
		s.mockCommands.EXPECT().SetBookingStatus(gomock.Any(), id, gomock.Any(), booking.StatusCompleted).
			Return(booking.ErrCompletionBeforeStart).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "completed"}, "bearer-token")

		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestRescheduleBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestRescheduleBooking() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/reschedule"
	newStart := time.Now().Add(120 * time.Hour).UTC().Truncate(time.Minute)
	reqBody := map[string]any{"new_start_time": newStart.Format(time.RFC3339)}

	s.Run("success: returns the new lifecycle state", func() {
		result := &commands.RescheduleResult{
			BookingID: id,
			Status:    string(booking.StatusPendingConfirmation),
		}
		s.mockReschedules.EXPECT().RescheduleBooking(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(id, resp.ID)
		s.Equal(string(booking.StatusPendingConfirmation), resp.Status)
	})

	s.Run("error: missing new_start_time returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: reschedule limit returns 409 with reason", func() {
		s.mockReschedules.EXPECT().RescheduleBooking(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, booking.ErrRescheduleLimitReached).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertConflictReason(s.T(), rec, http.StatusConflict, "reschedule_limit")
	})

	s.Run("error: inside restriction window returns 409 with reason", func() {
		s.mockReschedules.EXPECT().RescheduleBooking(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, booking.ErrInsideRestrictionWindow).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		httptest.AssertConflictReason(s.T(), rec, http.StatusConflict, "inside_cutoff")
	})

	s.Run("error: target slot invalid returns 409", func() {
		s.mockReschedules.EXPECT().RescheduleBooking(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSlotUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("error: unknown booking returns 404", func() {
		s.mockReschedules.EXPECT().RescheduleBooking(gomock.Any(), id, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusNotFound, rec.Code)
	})
}
