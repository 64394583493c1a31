package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

func scorePtr(v float64) *float64 { return &v }

func TestGradeRequestRequiresScore(t *testing.T) {
	// tanpa score harus gagal validasi, bukan diam-diam jadi nilai 0
	err := validate.Struct(GradeRequest{})
	assert.Error(t, err)
}

func TestGradeRequestAcceptsZeroScore(t *testing.T) {
	// 0 nilai sah — beda dengan score yang tidak dikirim
	assert.NoError(t, validate.Struct(GradeRequest{Score: scorePtr(0)}))
	assert.NoError(t, validate.Struct(GradeRequest{Score: scorePtr(100)}))
}

func TestGradeRequestRejectsOutOfRange(t *testing.T) {
	assert.Error(t, validate.Struct(GradeRequest{Score: scorePtr(-1)}))
	assert.Error(t, validate.Struct(GradeRequest{Score: scorePtr(101)}))
}
