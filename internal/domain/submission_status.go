package domain

type SubmissionStatus string

const (
	SubmissionStatusIdle       SubmissionStatus = "IDLE"
	SubmissionStatusSubmitting SubmissionStatus = "SUBMITTING"
	SubmissionStatusSucceeded  SubmissionStatus = "SUCCEEDED"
	SubmissionStatusFailed     SubmissionStatus = "FAILED"
)

func (s SubmissionStatus) IsTerminal() bool {
	return s == SubmissionStatusSucceeded || s == SubmissionStatusFailed
}

// String representation (for logging)
func (s SubmissionStatus) String() string {
	return string(s)
}
