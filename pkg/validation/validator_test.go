package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Gin's binding engine validates against the "binding" tag.
type samplePayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Score    int    `json:"score" binding:"gte=1,lte=10"`
}

func TestDetailsReportsAllFields(t *testing.T) {
	Init()
	v := binding.Validator.Engine().(*validator.Validate)

	err := v.Struct(samplePayload{Email: "nope", Password: "short", Score: 42})
	require.Error(t, err)

	details := Details(err)
	require.Len(t, details, 3)

	byField := map[string]string{}
	for _, d := range details {
		byField[d.Field] = d.Message
	}
	assert.Equal(t, "must be a valid email", byField["email"])
	assert.Equal(t, "must be at least 8 characters long", byField["password"])
	assert.Equal(t, "must be less than or equal to 10", byField["score"])
}

func TestDetailsNilError(t *testing.T) {
	assert.Nil(t, Details(nil))
}

func TestDetailsUnknownError(t *testing.T) {
	details := Details(assert.AnError)
	require.Len(t, details, 1)
	assert.Equal(t, "payload", details[0].Field)
}
