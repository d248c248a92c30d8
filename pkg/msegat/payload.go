package msegat

// Message encodings accepted by the gateway.
const (
	EncodingUTF8    = "UTF8"
	EncodingWindows = "windows-1256"
)

// Variables holds the substitution values for one recipient of a
// personalized send, keyed by placeholder name as it appears in the
// message template.
type Variables map[string]string

// PersonalizedOptions carries the optional fields of a personalized send.
// A field is written to the outgoing payload only when it was supplied;
// zero values are left out entirely.
type PersonalizedOptions struct {
	// MsgEncoding replaces the UTF8 default.
	MsgEncoding string

	// TimeToSend is "Now" or "Later".
	TimeToSend string

	// ExactTime is the delivery time ("YYYY-MM-DD HH:MM") when
	// TimeToSend is "Later".
	ExactTime string

	// By selects how the gateway groups the send, e.g. "Link".
	By string

	// ReqFilter enables the gateway's blocked-words filter.
	ReqFilter string
}

func (o *PersonalizedOptions) apply(p *sendVarsRequest) {
	if o.MsgEncoding != "" {
		p.MsgEncoding = o.MsgEncoding
	}
	p.TimeToSend = o.TimeToSend
	p.ExactTime = o.ExactTime
	p.By = o.By
	p.ReqFilter = o.ReqFilter
}

// sendMessageRequest is the sendsms.php payload.
type sendMessageRequest struct {
	Username    string `json:"userName"`
	Numbers     string `json:"numbers"`
	Sender      string `json:"userSender"`
	APIKey      string `json:"apiKey"`
	Message     string `json:"msg"`
	MsgEncoding string `json:"msgEncoding"`
}

// sendVarsRequest is the sendVarsSMS.php payload. The optional tail fields
// are omitted from the wire form unless set.
type sendVarsRequest struct {
	Username    string      `json:"userName"`
	APIKey      string      `json:"apiKey"`
	Numbers     []string    `json:"numbers"`
	Sender      string      `json:"userSender"`
	Message     string      `json:"msg"`
	Vars        []Variables `json:"vars"`
	MsgEncoding string      `json:"msgEncoding"`
	TimeToSend  string      `json:"timeToSend,omitempty"`
	ExactTime   string      `json:"exactTime,omitempty"`
	By          string      `json:"by,omitempty"`
	ReqFilter   string      `json:"reqFilter,omitempty"`
}

// calculateCostRequest is the calculateSmsCost.php payload.
type calculateCostRequest struct {
	Username    string `json:"userName"`
	APIKey      string `json:"apiKey"`
	ContactType string `json:"contactType"`
	Contacts    string `json:"contacts"`
	Message     string `json:"msg"`
	By          string `json:"by"`
	MsgEncoding string `json:"msgEncoding"`
}

// otpSendRequest is the sendOTPCode.php payload.
type otpSendRequest struct {
	Lang     string `json:"lang"`
	Username string `json:"userName"`
	Number   string `json:"number"`
	APIKey   string `json:"apiKey"`
	Sender   string `json:"userSender"`
}

// otpVerifyRequest is the verifyOTPCode.php payload.
type otpVerifyRequest struct {
	Lang     string `json:"lang"`
	Username string `json:"userName"`
	APIKey   string `json:"apiKey"`
	Code     string `json:"code"`
	ID       string `json:"id"`
	Sender   string `json:"userSender"`
}
