package api

import (
	"net/http"
	"time"

	resdto "salon-reserve/internal/handler/dto/response"
	"salon-reserve/internal/handler/httperr"
	"salon-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotQueries queries.SlotQueries
}

func NewSlotHandler(slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{slotQueries: slotQueries}
}

// @Summary List available slots
// @Description List bookable start times for a date and service set. Omit designer_id to union all capable designers.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param service_ids query []string true "Service IDs" collectionFormat(multi)
// @Param designer_id query string false "Designer ID"
// @Success 200 {object} resdto.AvailableSlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) GetAvailableSlots(c *gin.Context) {
	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	serviceIDs, err := parseUUIDList(c.QueryArray("service_ids"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service ID format",
		})
		return
	}

	var designerID *uuid.UUID
	if raw := c.Query("designer_id"); raw != "" {
		id, perr := uuid.Parse(raw)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid designer ID format",
			})
			return
		}
		designerID = &id
	}

	slots, err := h.slotQueries.AvailableSlots(c.Request.Context(), designerID, date, serviceIDs)
	if err != nil {
		httperr.RespondWithError(c, err)
		return
	}

	if slots == nil {
		slots = []time.Time{}
	}
	c.JSON(http.StatusOK, resdto.AvailableSlotsResponse{
		Date:  dateStr,
		Slots: slots,
	})
}

func parseUUIDList(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
