package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wanderplan/backend/internal/assist"
	"github.com/wanderplan/backend/internal/domain"
	"github.com/wanderplan/backend/internal/metrics"
)

// tripDocument is the slice of the document store the assist service
// needs. Defined here, in the consumer package, so tests can substitute a
// fake without a real store.
type tripDocument interface {
	ItemContext(dayID, itemID string) (domain.ItineraryItem, string, error)
	ApplyEstimate(dayID, itemID, origin, destination string, mode domain.TransportMode, estimate string) bool
	ReplacePackingList(cats []domain.PackingCategory)
}

// AssistService orchestrates calls to the external assistant: travel-time
// estimates for itinerary legs and whole-packing-list generation. Every
// outbound call carries a deadline; assistant failures degrade to
// sentinels and never corrupt document state.
type AssistService struct {
	docs      tripDocument
	assistant assist.Assistant
	timeout   time.Duration
	collector *metrics.Collector // may be nil in tests
}

// NewAssistService constructs an AssistService. timeout bounds each
// assistant call; collector may be nil to disable instrumentation.
func NewAssistService(docs tripDocument, assistant assist.Assistant, timeout time.Duration, collector *metrics.Collector) *AssistService {
	return &AssistService{docs: docs, assistant: assistant, timeout: timeout, collector: collector}
}

// record counts one assistant call outcome when instrumentation is wired.
func (s *AssistService) record(kind, outcome string) {
	if s.collector != nil {
		s.collector.AssistCalls.WithLabelValues(kind, outcome).Inc()
	}
}

// EstimateResult reports the outcome of a travel-time estimation.
// Applied is false when the item's origin/destination/mode changed while
// the request was in flight and the stale response was discarded.
type EstimateResult struct {
	Estimate string `json:"estimate"`
	Applied  bool   `json:"applied"`
}

// EstimateItem estimates the travel time for the leg ending at the given
// item. The leg is defined by the previous item's location, this item's
// location, and this item's transport mode; all three are snapshotted
// before the call and re-checked when the response is applied.
// Returns domain.ErrValidation when the item is the first of its day or
// either location is empty, because there is no leg to estimate.
func (s *AssistService) EstimateItem(ctx context.Context, dayID, itemID string) (EstimateResult, error) {
	item, origin, err := s.docs.ItemContext(dayID, itemID)
	if err != nil {
		return EstimateResult{}, fmt.Errorf("service.AssistService.EstimateItem: %w", err)
	}
	if origin == "" || item.Location == "" {
		return EstimateResult{}, fmt.Errorf("service.AssistService.EstimateItem: %w: origin and destination locations are required", domain.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	estimate := s.assistant.EstimateTravelTime(ctx, origin, item.Location, domain.TransportLabels[item.TransportMode])
	if estimate == assist.Unavailable {
		s.record("estimate", "unavailable")
	} else {
		s.record("estimate", "ok")
	}
	applied := s.docs.ApplyEstimate(dayID, itemID, origin, item.Location, item.TransportMode, estimate)
	return EstimateResult{Estimate: estimate, Applied: applied}, nil
}

// GeneratePacking asks the assistant for a packing list and, when it
// produces one, replaces the live packing list with freshly minted
// categories. Returns domain.ErrUnavailable when the assistant yields
// nothing, leaving the current list untouched.
func (s *AssistService) GeneratePacking(ctx context.Context, destination string, days int, tripType string) ([]domain.PackingCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	proposals := s.assistant.GeneratePackingList(ctx, destination, days, tripType)
	if len(proposals) == 0 {
		s.record("generate", "unavailable")
		return nil, fmt.Errorf("service.AssistService.GeneratePacking: %w", domain.ErrUnavailable)
	}
	s.record("generate", "ok")

	cats := make([]domain.PackingCategory, len(proposals))
	for i, p := range proposals {
		items := make([]domain.PackingItem, len(p.Items))
		for j, text := range p.Items {
			items[j] = domain.PackingItem{ID: domain.NewID(), Text: text}
		}
		cats[i] = domain.PackingCategory{ID: domain.NewID(), Name: p.Name, Items: items}
	}
	s.docs.ReplacePackingList(cats)
	return cats, nil
}
