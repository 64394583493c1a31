package dto

import (
	"strings"

	assignmentModel "lmsku_backend/internals/features/lms/assignments/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateAssignmentRequest — multipart form; deadline ISO 8601,
// attachment diproses terpisah.
type CreateAssignmentRequest struct {
	Title       string  `form:"title" validate:"required,max=150"`
	CourseID    string  `form:"courseId" validate:"required,uuid"`
	CourseName  string  `form:"courseName" validate:"required,max=150"`
	Deadline    string  `form:"deadline" validate:"required"`
	Description *string `form:"description"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.CourseName = strings.TrimSpace(r.CourseName)
}

// UpdateAssignmentRequest — partial, form juga.
type UpdateAssignmentRequest struct {
	Title       *string `form:"title" validate:"omitempty,max=150"`
	Deadline    *string `form:"deadline"`
	Description *string `form:"description"`
}

// GradeRequest — nilai 0..100. Score pointer + required supaya request
// tanpa score ditolak 422, bukan diam-diam dinilai 0.
type GradeRequest struct {
	Score    *float64 `form:"score" validate:"required,min=0,max=100"`
	Feedback *string  `form:"feedback"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// TeacherAssignmentResponse — tugas + agregat pengumpulan.
type TeacherAssignmentResponse struct {
	assignmentModel.AssignmentModel
	SubmissionCount int64 `json:"submissionCount"`
	TotalStudents   int64 `json:"totalStudents"`
}

// StudentAssignmentResponse — tugas + status pengumpulan student ybs.
type StudentAssignmentResponse struct {
	assignmentModel.AssignmentModel
	Submitted  bool                             `json:"submitted"`
	Submission *assignmentModel.SubmissionModel `json:"submission,omitempty"`
}
