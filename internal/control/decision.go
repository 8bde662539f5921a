package control

// Reason explains why a request was rejected.
type Reason string

const (
	ReasonGestureActive Reason = "paint gesture active"
	ReasonNoGesture     Reason = "no paint gesture active"
	ReasonNotPaused     Reason = "not paused"
	ReasonAlreadyPaused Reason = "already paused"
	ReasonFaulted       Reason = "engine fault pending"
	ReasonOutsideGrid   Reason = "pointer outside grid"
	ReasonNoDelta       Reason = "zero zoom delta"
	ReasonAtMaximum     Reason = "cell size at maximum"
	ReasonAtMinimum     Reason = "cell size at minimum"
	ReasonOutOfRange    Reason = "cell size out of range"
	ReasonUnchanged     Reason = "cell size unchanged"
	ReasonLocked        Reason = "auto-fit locked by explicit zoom"
	ReasonNoFit         Reason = "viewport narrower than grid"
	ReasonEngine        Reason = "engine rejected the change"
)

// Decision is the outcome of a user request: accepted, or rejected with a
// reason. Rejections are normal control flow and are never logged as errors.
type Decision struct {
	Accepted bool
	Reason   Reason
}

func accepted() Decision { return Decision{Accepted: true} }

func rejected(r Reason) Decision { return Decision{Reason: r} }

func (d Decision) String() string {
	if d.Accepted {
		return "accepted"
	}
	return "rejected: " + string(d.Reason)
}
