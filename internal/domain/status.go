package domain

import "strings"

type Status string

const (
	StatusReceived   Status = "received"
	StatusDispatched Status = "dispatched"
	StatusInService  Status = "in-service"
	StatusFinalized  Status = "finalized"
	StatusCanceled   Status = "canceled"
)

// statusSynonyms maps the lower-cased trimmed spellings found in persisted
// data (Portuguese legacy values included) onto the canonical vocabulary.
var statusSynonyms = map[string]Status{
	"received":       StatusReceived,
	"recebida":       StatusReceived,
	"dispatched":     StatusDispatched,
	"despachada":     StatusDispatched,
	"in-service":     StatusInService,
	"em andamento":   StatusInService,
	"emandamento":    StatusInService,
	"ematendimento":  StatusInService,
	"em atendimento": StatusInService,
	"finalized":      StatusFinalized,
	"finalizada":     StatusFinalized,
	"canceled":       StatusCanceled,
	"cancelled":      StatusCanceled,
	"cancelada":      StatusCanceled,
}

// NormalizeStatus resolves the historical statusGeral/status field pair:
// statusGeral wins when both are present, a missing pair defaults to
// received, and unknown free text yields ok=false (callers must not crash
// on it, see the aggregation rules).
func NormalizeStatus(statusGeral, legacy string) (Status, bool) {
	raw := statusGeral
	if strings.TrimSpace(raw) == "" {
		raw = legacy
	}
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return StatusReceived, true
	}
	s, ok := statusSynonyms[raw]
	return s, ok
}

// IsTerminal reports whether no further transition is legal.
func (s Status) IsTerminal() bool {
	return s == StatusFinalized || s == StatusCanceled
}

var transitions = map[Status][]Status{
	StatusReceived:   {StatusDispatched, StatusInService, StatusFinalized, StatusCanceled},
	StatusDispatched: {StatusInService, StatusFinalized, StatusCanceled},
	StatusInService:  {StatusFinalized, StatusCanceled},
}

// CanTransitionTo reports whether moving from s to next is legal.
// A transition onto the current status is a no-op and always allowed;
// terminal statuses allow nothing else.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Bucket folds the five lifecycle statuses into the four dashboard tally
// buckets: dispatched records count as in-service work in progress.
func (s Status) Bucket() Status {
	if s == StatusDispatched {
		return StatusInService
	}
	return s
}
