package location

import "fmt"

// LookupFailure marks a failed or empty location lookup. Clients treat it
// as "address unavailable" and gate confirm actions until resolved; the
// reply falls back to DefaultRegion rather than failing hard.
type LookupFailure struct {
	Reason string
}

func (e *LookupFailure) Error() string {
	return fmt.Sprintf("location lookup failed: %s", e.Reason)
}
