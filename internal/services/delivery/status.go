package delivery

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Ongoing WMS does not expose delivery state as a structured field; it is
// embedded in the order metadata as a colon-separated string of the form
//
//	"<code>:<text>"            e.g. "320:Allocated"
//	"<code>:<text>:<RFC3339>"  e.g. "450:Sent:2024-05-01T10:00:00Z"
//
// Status normalizes the numeric code onto a small fixed vocabulary the
// dashboard can filter on.
type Status string

const (
	StatusRegistered Status = "registered"
	StatusOpen       Status = "open"
	StatusPicking    Status = "picking"
	StatusPacked     Status = "packed"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
	StatusUnknown    Status = "unknown"
)

// Info is the parsed form of the vendor encoding.
type Info struct {
	Code      int
	Text      string
	Status    Status
	UpdatedAt *time.Time
}

// Parse decodes the vendor delivery string. Callers treat a parse failure as
// StatusUnknown and keep going; a malformed status never fails an ingestion
// run.
func Parse(raw string) (Info, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Info{Status: StatusUnknown}, fmt.Errorf("empty delivery info")
	}

	parts := strings.SplitN(raw, ":", 3)
	code, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Info{Status: StatusUnknown}, fmt.Errorf("invalid status code %q: %w", parts[0], err)
	}

	info := Info{
		Code:   code,
		Status: statusForCode(code),
	}
	if len(parts) > 1 {
		info.Text = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		// SplitN keeps the timestamp's own colons in the third segment.
		ts, tsErr := time.Parse(time.RFC3339, strings.TrimSpace(parts[2]))
		if tsErr != nil {
			return info, fmt.Errorf("invalid status timestamp %q: %w", parts[2], tsErr)
		}
		info.UpdatedAt = &ts
	}

	return info, nil
}

// statusForCode maps Ongoing status-code ranges onto the normalized set.
func statusForCode(code int) Status {
	switch {
	case code >= 100 && code < 200:
		return StatusRegistered
	case code >= 200 && code < 300:
		return StatusOpen
	case code >= 300 && code < 400:
		return StatusPicking
	case code >= 400 && code < 450:
		return StatusPacked
	case code >= 450 && code < 500:
		return StatusShipped
	case code >= 500 && code < 600:
		return StatusDelivered
	case code >= 600 && code < 700:
		return StatusCancelled
	default:
		return StatusUnknown
	}
}
