package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCredentialID(t *testing.T) {
	pattern := regexp.MustCompile(`^CERT-GO101-[0-9A-F]{6}$`)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := GenerateCredentialID("GO101")
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}
	// 100 credential berturut-turut hampir pasti unik semua
	assert.Greater(t, len(seen), 95)
}
