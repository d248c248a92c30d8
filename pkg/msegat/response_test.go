package msegat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseGetString(t *testing.T) {
	resp := Response{
		"code":    float64(1),
		"id":      "a1b2c3",
		"cost":    1.25,
		"blocked": true,
		"empty":   nil,
	}

	assert.Equal(t, "1", resp.GetString("code"))
	assert.Equal(t, "a1b2c3", resp.GetString("id"))
	assert.Equal(t, "1.25", resp.GetString("cost"))
	assert.Equal(t, "true", resp.GetString("blocked"))
	assert.Equal(t, "", resp.GetString("empty"))
	assert.Equal(t, "", resp.GetString("missing"))
}

func TestNewOTPSendResult(t *testing.T) {
	raw := Response{"code": "1", "id": float64(42), "message": "Success"}

	result := newOTPSendResult(raw)

	assert.Equal(t, "1", result.Code)
	assert.Equal(t, "42", result.ID)
	assert.Equal(t, "Success", result.Message)
	assert.Equal(t, raw, result.Raw)
}

func TestNewOTPVerifyResult(t *testing.T) {
	raw := Response{"code": "1", "message": "Verified", "extra": "unmodeled"}

	result := newOTPVerifyResult(raw)

	assert.Equal(t, "1", result.Code)
	assert.Equal(t, "Verified", result.Message)
	assert.Equal(t, "unmodeled", result.Raw.GetString("extra"))
}
