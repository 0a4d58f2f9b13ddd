package reputation

import (
	"encoding/hex"
	"strconv"

	"marketcore/core/types"
)

const (
	// EventTypeReviewRecorded is emitted when a release mints a review.
	EventTypeReviewRecorded = "reputation.reviewRecorded"
	// EventTypeStatisticsUpdated is emitted when store statistics change.
	EventTypeStatisticsUpdated = "reputation.statisticsUpdated"
)

// NewReviewRecordedEvent returns the canonical event payload for a newly
// minted item review.
func NewReviewRecordedEvent(r *ItemReview) *types.Event {
	attrs := make(map[string]string)
	if r == nil {
		return &types.Event{Type: EventTypeReviewRecorded, Attributes: attrs}
	}
	if err := r.Validate(); err != nil {
		return &types.Event{Type: EventTypeReviewRecorded, Attributes: attrs}
	}
	attrs["id"] = r.ID.String()
	attrs["customer"] = hex.EncodeToString(r.Customer[:])
	attrs["store"] = hex.EncodeToString(r.Store[:])
	if r.Text != "" {
		attrs["text"] = r.Text
	}
	attrs["rating"] = strconv.FormatUint(uint64(r.Rating), 10)
	attrs["createdAt"] = strconv.FormatInt(r.CreatedAt, 10)
	return &types.Event{Type: EventTypeReviewRecorded, Attributes: attrs}
}

// NewStatisticsUpdatedEvent returns the canonical event payload for a
// statistics update.
func NewStatisticsUpdatedEvent(s *StoreStatistics) *types.Event {
	attrs := make(map[string]string)
	if s == nil {
		return &types.Event{Type: EventTypeStatisticsUpdated, Attributes: attrs}
	}
	attrs["store"] = hex.EncodeToString(s.Store[:])
	attrs["totalTransactions"] = strconv.FormatUint(s.TotalTransactions, 10)
	if s.TotalRevenue != nil {
		attrs["totalRevenue"] = s.TotalRevenue.String()
	}
	attrs["averageRating"] = strconv.FormatFloat(s.AverageRating, 'f', -1, 64)
	return &types.Event{Type: EventTypeStatisticsUpdated, Attributes: attrs}
}
