// internals/features/lms/certificates/service/credential.go
package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

// GenerateCredentialID — "CERT-<courseCode>-<6 hex uppercase>".
// 3 byte random = 6 digit hex; unik global dijaga unique index di DB.
func GenerateCredentialID(courseCode string) (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("CERT-%s-%s", courseCode, strings.ToUpper(hex.EncodeToString(buf))), nil
}
