package types

// Outcome is the terminal state of one generation attempt sequence.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeSuccessAfterRetry
	OutcomeFailedBusy
	OutcomeFailedOther
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSuccessAfterRetry:
		return "success_after_retry"
	case OutcomeFailedBusy:
		return "failed_busy"
	case OutcomeFailedOther:
		return "failed_other"
	default:
		return "unknown"
	}
}

func (o Outcome) OK() bool { return o == OutcomeSuccess || o == OutcomeSuccessAfterRetry }

// Generation is what the plan generator reports back.
type Generation struct {
	Outcome Outcome
	Model   string
	Text    string
	// Err is the last provider error for the failed outcomes.
	Err error
}
