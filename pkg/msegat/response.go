package msegat

import (
	"fmt"
	"strconv"
)

// Response is the vendor's JSON reply as decoded, without interpretation.
// The gateway reports logical failures inside 200-OK bodies; the client
// passes those through for the caller to inspect.
type Response map[string]interface{}

// GetString returns the named field rendered as a string, or "" when the
// field is absent. The gateway is inconsistent about returning codes as
// numbers or strings, so both are accepted.
func (r Response) GetString(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// OTPSendResult is the conventional shape of a sendOTPCode.php reply. The
// typed fields are extracted best-effort and are not validated; Raw always
// holds the full response.
type OTPSendResult struct {
	Code    string
	ID      string
	Message string
	Raw     Response
}

func newOTPSendResult(r Response) *OTPSendResult {
	return &OTPSendResult{
		Code:    r.GetString("code"),
		ID:      r.GetString("id"),
		Message: r.GetString("message"),
		Raw:     r,
	}
}

// OTPVerifyResult is the conventional shape of a verifyOTPCode.php reply.
type OTPVerifyResult struct {
	Code    string
	Message string
	Raw     Response
}

func newOTPVerifyResult(r Response) *OTPVerifyResult {
	return &OTPVerifyResult{
		Code:    r.GetString("code"),
		Message: r.GetString("message"),
		Raw:     r,
	}
}
