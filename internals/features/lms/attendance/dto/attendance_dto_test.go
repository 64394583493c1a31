package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), d)

	for _, raw := range []string{"", "15-03-2025", "2025/03/15", "2025-13-01", "not-a-date"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestRecordAttendanceRequestValidation(t *testing.T) {
	validate := validator.New()

	valid := RecordAttendanceRequest{
		CourseID:  "7b5a2c1e-6a06-4a87-9c31-16e54ba0e7f2",
		StudentID: "d2719f3c-9c41-4e2b-8f5d-3b1a8c0d9e44",
		Date:      "2025-03-15",
		Status:    "Present",
	}
	assert.NoError(t, validate.Struct(valid))

	// status di luar enum ditolak
	badStatus := valid
	badStatus.Status = "Here"
	assert.Error(t, validate.Struct(badStatus))

	badID := valid
	badID.StudentID = "bukan-uuid"
	assert.Error(t, validate.Struct(badID))
}

func TestBulkRecordRequestValidation(t *testing.T) {
	validate := validator.New()

	req := BulkRecordRequest{
		CourseID: "7b5a2c1e-6a06-4a87-9c31-16e54ba0e7f2",
		Date:     "2025-03-15",
		Records: []BulkRecordEntry{
			{StudentID: "d2719f3c-9c41-4e2b-8f5d-3b1a8c0d9e44", Status: "Late"},
		},
	}
	assert.NoError(t, validate.Struct(req))

	// dive: entry dengan status invalid menggagalkan validasi request
	req.Records = append(req.Records, BulkRecordEntry{
		StudentID: "d2719f3c-9c41-4e2b-8f5d-3b1a8c0d9e44",
		Status:    "Hadir",
	})
	assert.Error(t, validate.Struct(req))

	empty := BulkRecordRequest{CourseID: req.CourseID, Date: req.Date}
	assert.Error(t, validate.Struct(empty))
}
