package response

import "time"

type AvailableSlotsResponse struct {
	Date  string      `json:"date"`
	Slots []time.Time `json:"slots"`
}
