package matching

import (
	"math"
	"sort"
	"strings"
)

// SourceOrder is the comparison view of an order, independent of which system
// it came from. TotalValue is nil when the source had no usable total.
type SourceOrder struct {
	ID           string   `json:"id"`
	OrderNumber  string   `json:"order_number"`
	CustomerName string   `json:"customer_name"`
	TotalValue   *float64 `json:"total_value"`
}

// Candidate is a scored suggestion that two orders from different systems
// represent the same real-world order. It is never persisted by the engine;
// acceptance is a separate caller-driven step.
type Candidate struct {
	CommerceOrder  SourceOrder `json:"commerce_order"`
	WarehouseOrder SourceOrder `json:"warehouse_order"`
	Confidence     int         `json:"confidence"`
	MatchReason    string      `json:"match_reason"`
}

// Scoring signals. Points are additive across independent signals so a human
// reviewing a suggestion can see exactly which evidence contributed.
const (
	ScoreOrderNumberMatch = 50
	ScoreNameExactMatch   = 30
	ScoreNamePartialMatch = 20
	ScoreValueProximity   = 20

	// AcceptanceThreshold requires at least one strong signal, or two weaker
	// ones together, before a pair is surfaced for review.
	AcceptanceThreshold = 30

	// ValueTolerance is the maximum relative difference for the total-value
	// proximity signal.
	ValueTolerance = 0.10
)

const (
	reasonOrderNumber = "Order number match"
	reasonNameExact   = "Customer name exact match"
	reasonNamePartial = "Customer name partial match"
	reasonValue       = "Total value similar"
)

// Match scores every (commerce, warehouse) pair and returns the pairs whose
// confidence reaches the acceptance threshold, sorted by descending
// confidence. Ties are broken lexicographically by (commerce id, warehouse
// id) so the output is deterministic for fixed inputs. The engine performs
// no I/O and does not mutate its inputs.
func Match(commerceOrders, warehouseOrders []SourceOrder) []Candidate {
	candidates := make([]Candidate, 0)

	for _, co := range commerceOrders {
		for _, wo := range warehouseOrders {
			confidence, reason := Score(co, wo)
			if confidence < AcceptanceThreshold {
				continue
			}
			candidates = append(candidates, Candidate{
				CommerceOrder:  co,
				WarehouseOrder: wo,
				Confidence:     confidence,
				MatchReason:    reason,
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		if candidates[i].CommerceOrder.ID != candidates[j].CommerceOrder.ID {
			return candidates[i].CommerceOrder.ID < candidates[j].CommerceOrder.ID
		}
		return candidates[i].WarehouseOrder.ID < candidates[j].WarehouseOrder.ID
	})

	return candidates
}

// Score evaluates one pair. Signals fire independently and in a fixed order:
// order number, customer name, total value. Missing data on either side
// skips the affected signal rather than producing an error.
func Score(a, b SourceOrder) (int, string) {
	confidence := 0
	reasons := make([]string, 0, 3)

	if a.OrderNumber != "" && a.OrderNumber == b.OrderNumber {
		confidence += ScoreOrderNumberMatch
		reasons = append(reasons, reasonOrderNumber)
	}

	nameA := normalizeName(a.CustomerName)
	nameB := normalizeName(b.CustomerName)
	if nameA != "" && nameB != "" {
		switch {
		case nameA == nameB:
			confidence += ScoreNameExactMatch
			reasons = append(reasons, reasonNameExact)
		case namesOverlap(nameA, nameB):
			confidence += ScoreNamePartialMatch
			reasons = append(reasons, reasonNamePartial)
		}
	}

	if valuesSimilar(a.TotalValue, b.TotalValue) {
		confidence += ScoreValueProximity
		reasons = append(reasons, reasonValue)
	}

	return confidence, strings.Join(reasons, "; ")
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// namesOverlap is the partial-name signal: one normalized name contains the
// other, or the two share a leading word. The second clause catches pairs
// like "acme as" and "acme corporation", where neither full name contains
// the other but both start with the same company stem.
func namesOverlap(a, b string) bool {
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return true
	}
	firstA, _, _ := strings.Cut(a, " ")
	firstB, _, _ := strings.Cut(b, " ")
	return strings.Contains(b, firstA) || strings.Contains(a, firstB)
}

func valuesSimilar(a, b *float64) bool {
	if a == nil || b == nil {
		return false
	}
	max := math.Max(*a, *b)
	if max <= 0 {
		return false
	}
	return math.Abs(*a-*b)/max <= ValueTolerance
}
