// Package assist is the boundary to the external generative-AI
// collaborator. It answers two questions: how long does the leg between
// two stops take, and what should be packed for a given trip. Failures
// never escape this package as errors visible to the document core: the
// estimate degrades to the Unavailable sentinel and the generated list
// degrades to nil.
package assist

import "context"

// Unavailable is the sentinel estimate returned whenever the assistant
// cannot produce one (no API key, network failure, malformed response).
// It is stored verbatim like any other estimate; the leave-time parser
// simply finds no duration in it.
const Unavailable = "無法估算"

// CategoryProposal is one packing category suggested by the assistant.
// IDs are minted by the service layer, not here.
type CategoryProposal struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Assistant is the contract the core consumes. EstimateTravelTime always
// returns a string; GeneratePackingList returns nil when no usable list
// could be produced.
type Assistant interface {
	EstimateTravelTime(ctx context.Context, origin, destination, modeLabel string) string
	GeneratePackingList(ctx context.Context, destination string, days int, tripType string) []CategoryProposal
}

// Disabled is the Assistant used when no API key is configured. Every
// estimate is Unavailable and every generation yields nothing, so the
// rest of the application keeps working without the collaborator.
type Disabled struct{}

func (Disabled) EstimateTravelTime(ctx context.Context, origin, destination, modeLabel string) string {
	return Unavailable
}

func (Disabled) GeneratePackingList(ctx context.Context, destination string, days int, tripType string) []CategoryProposal {
	return nil
}
