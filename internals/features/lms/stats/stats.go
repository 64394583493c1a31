// internals/features/lms/stats/stats.go
//
// Agregasi murni untuk progress, nilai, dan kehadiran. Tidak menyentuh
// database — semua fungsi menerima slice dan mengembalikan angka.
// Aturan umum: data kosong selalu menghasilkan 0, bukan NaN.
package stats

import "math"

// Status kehadiran yang dikenal sistem.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLate    = "Late"
	AttendanceExcused = "Excused"
)

// Breakdown — rekap kehadiran satu student pada satu course.
type Breakdown struct {
	Total   int     `json:"total_classes"`
	Present int     `json:"present"`
	Absent  int     `json:"absent"`
	Late    int     `json:"late"`
	Excused int     `json:"excused"`
	Rate    float64 `json:"attendance_rate"`
}

// AttendanceBreakdown menghitung rekap dari daftar status mentah.
// Rate = present/total*100 TANPA pembulatan — tiap call site membulatkan
// sekali sesuai kebutuhan tampilannya (Round2 untuk rekap, Round0 untuk
// dashboard); dobel pembulatan menggeser nilai di sekitar .5.
// Status tak dikenal tetap dihitung di total.
func AttendanceBreakdown(statuses []string) Breakdown {
	b := Breakdown{Total: len(statuses)}
	for _, s := range statuses {
		switch s {
		case AttendancePresent:
			b.Present++
		case AttendanceAbsent:
			b.Absent++
		case AttendanceLate:
			b.Late++
		case AttendanceExcused:
			b.Excused++
		}
	}
	if b.Total > 0 {
		b.Rate = float64(b.Present) / float64(b.Total) * 100
	}
	return b
}

// AttendanceRate — persentase hadir mentah tanpa rekap lengkap.
func AttendanceRate(statuses []string) float64 {
	return AttendanceBreakdown(statuses).Rate
}

// PerformanceScore menghitung nilai rata-rata dari submission yang sudah
// dinilai: sum(score) / (jumlahDinilai * 100) * 100. Submission yang
// belum dinilai (nil) diabaikan; tidak ada yang dinilai → 0.
func PerformanceScore(scores []*float64) float64 {
	var sum float64
	var graded int
	for _, s := range scores {
		if s == nil {
			continue
		}
		sum += *s
		graded++
	}
	if graded == 0 {
		return 0
	}
	return sum / (float64(graded) * 100) * 100
}

// OverallProgress — rata-rata progress semua enrollment; kosong → 0.
func OverallProgress(progresses []float64) float64 {
	if len(progresses) == 0 {
		return 0
	}
	var sum float64
	for _, p := range progresses {
		sum += p
	}
	return sum / float64(len(progresses))
}

// Round2 membulatkan ke 2 desimal (dipakai di rekap kehadiran).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round0 membulatkan ke bilangan bulat (dipakai di dashboard).
func Round0(v float64) float64 {
	return math.Round(v)
}
