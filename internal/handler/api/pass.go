package api

import (
	"net/http"

	reqdto "salon-reserve/internal/handler/dto/request"
	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/httperr"
	"salon-reserve/internal/handler/middleware"
	"salon-reserve/internal/usecase/commands"
	"salon-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PassHandler struct {
	passCommands commands.PassCommands
	passQueries  queries.PassQueries
}

func NewPassHandler(passCommands commands.PassCommands, passQueries queries.PassQueries) *PassHandler {
	return &PassHandler{
		passCommands: passCommands,
		passQueries:  passQueries,
	}
}

// @Summary List own passes
// @Description List the authenticated customer's active passes with remaining usages
// @Tags passes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ActivePassResponse
// @Failure 401 {object} map[string]string
// @Router /passes [get]
func (h *PassHandler) GetUserPasses(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.passQueries.ListByCustomer(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivePassViews(views))
}

// @Summary Consume pass entitlement
// @Description Spend remaining usages of a pass content item for a booking
// @Tags passes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Active pass ID"
// @Param request body reqdto.ConsumePassRequest true "Consumption request"
// @Success 200 {object} resdto.ConsumePassResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /passes/{id}/consume [post]
func (h *PassHandler) ConsumePass(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	activePassID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pass ID format",
		})
		return
	}

	var req reqdto.ConsumePassRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.passCommands.ConsumeEntitlement(c.Request.Context(), req.ToCommand(activePassID), actor)
	if err != nil {
		httperr.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ConsumePassResponse{Remaining: result.Remaining})
}

// @Summary Refund pass entitlement
// @Description Restore usages consumed for a booking; replays are no-ops
// @Tags passes
// @Produce json
// @Security BearerAuth
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.RefundPassResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /passes/refunds/{bookingId} [post]
func (h *PassHandler) RefundPass(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	result, err := h.passCommands.RefundEntitlement(c.Request.Context(), bookingID, actor)
	if err != nil {
		httperr.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RefundPassResponse{
		Remaining:  result.Remaining,
		IsReplayed: result.IsReplayed,
	})
}
