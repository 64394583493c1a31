package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }

func TestAttendanceBreakdown(t *testing.T) {
	b := AttendanceBreakdown([]string{
		AttendancePresent, AttendancePresent, AttendanceAbsent, AttendanceLate,
	})
	assert.Equal(t, 4, b.Total)
	assert.Equal(t, 2, b.Present)
	assert.Equal(t, 1, b.Absent)
	assert.Equal(t, 1, b.Late)
	assert.Equal(t, 0, b.Excused)
	assert.Equal(t, 50.0, b.Rate)
}

func TestAttendanceBreakdownEmpty(t *testing.T) {
	b := AttendanceBreakdown(nil)
	assert.Equal(t, 0, b.Total)
	assert.Equal(t, 0.0, b.Rate)
}

func TestAttendanceBreakdownUnknownStatusCountsTowardTotal(t *testing.T) {
	b := AttendanceBreakdown([]string{AttendancePresent, "Holiday"})
	assert.Equal(t, 2, b.Total)
	assert.Equal(t, 1, b.Present)
	assert.Equal(t, 50.0, b.Rate)
}

func TestAttendanceRateIsUnrounded(t *testing.T) {
	// 1 dari 3 hadir → 33.333... mentah; pembulatan urusan call site
	rate := AttendanceRate([]string{AttendancePresent, AttendanceAbsent, AttendanceAbsent})
	assert.InDelta(t, 33.333333, rate, 0.0001)
	assert.Equal(t, 33.33, Round2(rate))
	assert.Equal(t, 33.0, Round0(rate))
}

func TestAttendanceRateNearHalfBoundary(t *testing.T) {
	// 197 hadir dari 398 → 49.4974...; sekali bulat ke integer harus 49.
	// Kalau rate sudah dibulatkan ke 49.50 lebih dulu, Round0 salah ke 50.
	statuses := make([]string, 0, 398)
	for i := 0; i < 197; i++ {
		statuses = append(statuses, AttendancePresent)
	}
	for i := 0; i < 201; i++ {
		statuses = append(statuses, AttendanceAbsent)
	}

	rate := AttendanceRate(statuses)
	assert.InDelta(t, 49.49748, rate, 0.0001)
	assert.Equal(t, 49.0, Round0(rate))
	assert.Equal(t, 49.5, Round2(rate))
}

func TestPerformanceScore(t *testing.T) {
	// (80+90)/(2*100)*100 = 85
	got := PerformanceScore([]*float64{fptr(80), fptr(90)})
	assert.Equal(t, 85.0, got)
}

func TestPerformanceScoreIgnoresUngraded(t *testing.T) {
	got := PerformanceScore([]*float64{fptr(100), nil, nil})
	assert.Equal(t, 100.0, got)
}

func TestPerformanceScoreNoGraded(t *testing.T) {
	assert.Equal(t, 0.0, PerformanceScore(nil))
	assert.Equal(t, 0.0, PerformanceScore([]*float64{nil, nil}))
}

func TestOverallProgress(t *testing.T) {
	assert.Equal(t, 50.0, OverallProgress([]float64{25, 75}))
	assert.Equal(t, 0.0, OverallProgress(nil))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 33.33, Round2(33.3333))
	assert.Equal(t, 33.0, Round0(33.4))
	assert.Equal(t, 34.0, Round0(33.5))
}
