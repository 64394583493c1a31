// internals/features/lms/assignments/service/submission_service.go
package service

import (
	"time"

	assignmentModel "lmsku_backend/internals/features/lms/assignments/model"
)

// SubmissionStatus — keputusan murni: terlambat hanya jika waktu kirim
// SESUDAH deadline; kirim tepat di deadline masih Submitted.
func SubmissionStatus(submittedAt, deadline time.Time) string {
	if submittedAt.After(deadline) {
		return assignmentModel.SubmissionLate
	}
	return assignmentModel.SubmissionSubmitted
}
