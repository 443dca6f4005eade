package app

// OutcomeKind classifies an [Outcome] for presentation.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeWarning
	OutcomeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeWarning:
		return "warning"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is what a notifier receives after an operation: a kind and one of
// the Msg* messages, optionally with detail.
type Outcome struct {
	Kind    OutcomeKind
	Message string
	Detail  string
}

func Success(message string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: message}
}

func Warning(message string) Outcome {
	return Outcome{Kind: OutcomeWarning, Message: message}
}

func Failure(message, detail string) Outcome {
	return Outcome{Kind: OutcomeError, Message: message, Detail: detail}
}

// Notifier consumes outcomes.
type Notifier interface {
	Notify(Outcome)
}
