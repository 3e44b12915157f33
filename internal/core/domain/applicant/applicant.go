/*
Package applicant defines the core domain entities for a candidate tracked
through the hiring pipeline.
*/
package applicant

import "regexp"

// Outcome is the terminal result of a hiring decision.
type Outcome int

const (
	Hired Outcome = iota + 1
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Hired:
		return "Hired"
	case Rejected:
		return "Rejected"
	default:
		return "Undecided"
	}
}

/*
Status is where an applicant currently sits: either at a stage index inside
the pipeline or decided with a terminal Outcome. The zero value is AtStage(0).
*/
type Status struct {
	stage   int
	outcome Outcome // zero while the applicant is still in the pipeline
}

// AtStage returns a Status placing the applicant at the given stage index.
func AtStage(index int) Status {
	if index < 0 {
		index = 0
	}
	return Status{stage: index}
}

// Decided returns a terminal Status.
func Decided(o Outcome) Status {
	return Status{outcome: o}
}

// Stage returns the current stage index, or false once the applicant is decided.
func (s Status) Stage() (int, bool) {
	if s.IsDecided() {
		return 0, false
	}
	return s.stage, true
}

// Outcome returns the terminal outcome, or false while the applicant is still in the pipeline.
func (s Status) Outcome() (Outcome, bool) {
	return s.outcome, s.IsDecided()
}

func (s Status) IsDecided() bool {
	return s.outcome == Hired || s.outcome == Rejected
}

// emailPattern accepts local@label.label...label with no empty parts and no
// extra '@' anywhere.
var emailPattern = regexp.MustCompile(`^[^@]+@([^@.]+\.)+[^@.]+$`)

// IsValidEmail reports whether email is shaped like local@domain.tld.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
