package assessment

// Phase is the navigation state machine's discriminator.
type Phase string

const (
	// PhaseAnswering means the user is on a question screen.
	PhaseAnswering Phase = "answering"
	// PhaseReview means the user passed the last question or submitted
	// early and is looking at the answered/unanswered summary.
	PhaseReview Phase = "review"
	// PhaseResults means the final submit happened and a result exists.
	PhaseResults Phase = "results"
)

// Navigator tracks linear movement through the flattened question sequence.
// Boundary calls are deliberate no-ops rather than errors: the UI may fire
// next/previous opportunistically on disabled buttons.
type Navigator struct {
	total int
	index int
	phase Phase
}

// NewNavigator starts at the first question of a sequence of total length.
func NewNavigator(total int) *Navigator {
	return &Navigator{total: total, phase: PhaseAnswering}
}

// Index returns the current 0-based question position.
func (n *Navigator) Index() int { return n.index }

// Phase returns the current state machine phase.
func (n *Navigator) Phase() Phase { return n.phase }

// Total returns the question count the navigator was built for.
func (n *Navigator) Total() int { return n.total }

// Next advances one question, or enters review when already on the last.
// No-op outside the answering phase.
func (n *Navigator) Next() {
	if n.phase != PhaseAnswering {
		return
	}
	if n.index < n.total-1 {
		n.index++
		return
	}
	n.phase = PhaseReview
}

// Previous steps back one question. No-op at index 0 or outside answering.
func (n *Navigator) Previous() {
	if n.phase != PhaseAnswering || n.index == 0 {
		return
	}
	n.index--
}

// ForceReview jumps to the review screen from any question ("submit early").
func (n *Navigator) ForceReview() {
	if n.phase != PhaseAnswering {
		return
	}
	n.phase = PhaseReview
}

// BackToAnswering leaves review to edit answers, landing on the last
// question. No-op outside review.
func (n *Navigator) BackToAnswering() {
	if n.phase != PhaseReview {
		return
	}
	n.phase = PhaseAnswering
	n.index = n.total - 1
}

// Submit moves from review to results. Reports whether the transition
// happened, so the caller scores exactly once.
func (n *Navigator) Submit() bool {
	if n.phase != PhaseReview {
		return false
	}
	n.phase = PhaseResults
	return true
}

// Retry resets to the first question from any phase.
func (n *Navigator) Retry() {
	n.index = 0
	n.phase = PhaseAnswering
}
