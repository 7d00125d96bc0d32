package domain

// Phase is one of the four observable states of a subscription channel.
//
// A channel emits PhaseStart once before any PhaseNext, then zero or more
// PhaseNext, then exactly one of PhaseError or PhaseComplete.
type Phase string

// Subscription phases.
const (
	PhaseStart    Phase = "start"
	PhaseNext     Phase = "next"
	PhaseError    Phase = "error"
	PhaseComplete Phase = "complete"
)

// Terminal reports whether no further events follow this phase.
func (p Phase) Terminal() bool {
	return p == PhaseError || p == PhaseComplete
}

func (p Phase) String() string {
	return string(p)
}
