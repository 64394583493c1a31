package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	assignmentModel "lmsku_backend/internals/features/lms/assignments/model"
)

func TestSubmissionStatus(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, assignmentModel.SubmissionSubmitted,
		SubmissionStatus(deadline.Add(-time.Hour), deadline))
	assert.Equal(t, assignmentModel.SubmissionLate,
		SubmissionStatus(deadline.Add(time.Second), deadline))
}

func TestSubmissionStatusExactlyAtDeadline(t *testing.T) {
	deadline := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	// tepat di deadline belum terlambat
	assert.Equal(t, assignmentModel.SubmissionSubmitted,
		SubmissionStatus(deadline, deadline))
}
