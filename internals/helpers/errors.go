// file: internals/helpers/errors.go
package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// IsUniqueViolation — deteksi pelanggaran unique constraint Postgres (23505).
// Dipakai untuk memetakan duplicate enrollment/submission/sertifikat/course-code
// menjadi 409 Conflict.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	// driver pgx tidak membungkus pq.Error; fallback ke pesan
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "sqlstate 23505")
}
