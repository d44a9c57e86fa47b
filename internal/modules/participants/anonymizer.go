package participants

import (
	"fmt"
	"sync"
)

// RedactionMarker replaces identifying contact fields in anonymized output.
const RedactionMarker = "[HIDDEN]"

// Anonymizer strips identifying fields from participant records. Its only
// state is a monotonically increasing counter shared across calls, so
// generated ids stay unique and gap-free for the anonymizer's lifetime. The
// counter is mutex-guarded for concurrent callers.
type Anonymizer struct {
	mu      sync.Mutex
	counter int
}

// NewAnonymizer creates an anonymizer with a fresh counter.
func NewAnonymizer() *Anonymizer {
	return &Anonymizer{}
}

// nextID returns the next sequential participant id.
func (a *Anonymizer) nextID() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counter++
	return fmt.Sprintf("participant_%d", a.counter)
}

// AnonymizeRecords returns anonymized copies of the given records: the name
// is replaced by a generated sequential id, email and phone are redacted,
// and every other field passes through unchanged. Input records are never
// mutated.
func (a *Anonymizer) AnonymizeRecords(records []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		anon := make(map[string]any, len(rec))
		for key, value := range rec {
			switch key {
			case "name":
				// replaced by the generated id below
			case "email", "phone":
				anon[key] = RedactionMarker
			default:
				anon[key] = value
			}
		}
		anon["id"] = a.nextID()
		out = append(out, anon)
	}
	return out
}

// Anonymize serializes the participants to tagged records and anonymizes
// them. The "type" tag passes through, so anonymized output keeps its role
// information.
func (a *Anonymizer) Anonymize(participants []Participant) []map[string]any {
	records := make([]map[string]any, len(participants))
	for i, p := range participants {
		records[i] = p.Record()
	}
	return a.AnonymizeRecords(records)
}
