// Package msegat is a client for the Msegat SMS and OTP gateway
// (https://www.msegat.com). It builds the vendor's JSON payloads from
// caller-supplied parameters, attaches the stored credentials and issues a
// single HTTP POST per operation, returning the parsed JSON response.
package msegat

import (
	"context"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the production Msegat gateway root.
	DefaultBaseURL = "https://www.msegat.com/gw"

	// DefaultSender is the shared sender name Msegat assigns to accounts
	// that have not registered their own.
	DefaultSender = "auth-mseg"
)

// Gateway endpoints, relative to the base URL.
const (
	endpointSendSMS       = "/sendsms.php"
	endpointSendVarsSMS   = "/sendVarsSMS.php"
	endpointCalculateCost = "/calculateSmsCost.php"
	endpointSendOTPCode   = "/sendOTPCode.php"
	endpointVerifyOTPCode = "/verifyOTPCode.php"
)

// Operation labels used in RequestError wrapping.
const (
	opSendMessage  = "sending message"
	opSendVars     = "sending personalized messages"
	opCalculateSms = "calculating message cost"
	opSendOTP      = "sending OTP code"
	opVerifyOTP    = "verifying OTP code"
)

// Config holds the credentials and optional overrides for a Client.
type Config struct {
	// Username is the Msegat account username. Required.
	Username string

	// APIKey is the account API key. Required.
	APIKey string

	// Sender is the registered sender name. Defaults to DefaultSender.
	Sender string

	// BaseURL overrides the gateway root, mainly for tests and the local
	// mock gateway. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPClient performs the requests. Defaults to http.DefaultClient;
	// no timeout is imposed, use the per-call context to cancel.
	HTTPClient *http.Client

	// Logger receives debug-level request logs. Optional.
	Logger logrus.FieldLogger
}

// Client issues requests against the Msegat gateway. The configuration is
// fixed at construction, so a Client is safe for concurrent use.
type Client struct {
	username   string
	apiKey     string
	sender     string
	baseURL    string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

// NewClient validates the configuration and returns a ready Client.
// Username, APIKey and the resolved Sender must all be non-empty.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Username == "" {
		return nil, &ConfigError{Field: "Username"}
	}
	if cfg.APIKey == "" {
		return nil, &ConfigError{Field: "APIKey"}
	}

	sender := cfg.Sender
	if sender == "" {
		sender = DefaultSender
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := cfg.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	return &Client{
		username:   cfg.Username,
		apiKey:     cfg.APIKey,
		sender:     sender,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// SendMessage sends a single SMS to one number (or a comma-separated list,
// as the gateway accepts) and returns the vendor response as-is.
func (c *Client) SendMessage(ctx context.Context, number, message string) (Response, error) {
	payload := sendMessageRequest{
		Username:    c.username,
		Numbers:     number,
		Sender:      c.sender,
		APIKey:      c.apiKey,
		Message:     message,
		MsgEncoding: EncodingUTF8,
	}

	resp, err := c.postJSON(ctx, endpointSendSMS, payload)
	if err != nil {
		return nil, &RequestError{Op: opSendMessage, Err: err}
	}
	return resp, nil
}

// SendPersonalizedMessages sends one message template to a list of numbers
// with per-recipient substitution variables. numbers and vars are forwarded
// verbatim; the gateway, not the client, decides how they correspond.
func (c *Client) SendPersonalizedMessages(ctx context.Context, numbers []string, message string, vars []Variables, opts *PersonalizedOptions) (Response, error) {
	payload := sendVarsRequest{
		Username:    c.username,
		APIKey:      c.apiKey,
		Numbers:     numbers,
		Sender:      c.sender,
		Message:     message,
		Vars:        vars,
		MsgEncoding: EncodingUTF8,
	}
	if opts != nil {
		opts.apply(&payload)
	}

	resp, err := c.postJSON(ctx, endpointSendVarsSMS, payload)
	if err != nil {
		return nil, &RequestError{Op: opSendVars, Err: err}
	}
	return resp, nil
}

// CalculateMessageCost asks the gateway to price a message without sending
// it. contactType selects between raw numbers and stored contact groups;
// contacts carries the numbers or group identifiers accordingly.
func (c *Client) CalculateMessageCost(ctx context.Context, contactType, contacts, message, by, encoding string) (Response, error) {
	if encoding == "" {
		encoding = EncodingUTF8
	}
	payload := calculateCostRequest{
		Username:    c.username,
		APIKey:      c.apiKey,
		ContactType: contactType,
		Contacts:    contacts,
		Message:     message,
		By:          by,
		MsgEncoding: encoding,
	}

	resp, err := c.postJSON(ctx, endpointCalculateCost, payload)
	if err != nil {
		return nil, &RequestError{Op: opCalculateSms, Err: err}
	}
	return resp, nil
}

// SendOTPCode asks the gateway to generate and deliver an OTP to the given
// number. lang selects the message language ("En" or "Ar").
func (c *Client) SendOTPCode(ctx context.Context, number, lang string) (*OTPSendResult, error) {
	payload := otpSendRequest{
		Lang:     lang,
		Username: c.username,
		Number:   number,
		APIKey:   c.apiKey,
		Sender:   c.sender,
	}

	resp, err := c.postJSON(ctx, endpointSendOTPCode, payload)
	if err != nil {
		return nil, &RequestError{Op: opSendOTP, Err: err}
	}
	return newOTPSendResult(resp), nil
}

// VerifyOTPCode checks a code the user entered against the OTP session
// identified by id, as returned from SendOTPCode.
func (c *Client) VerifyOTPCode(ctx context.Context, code, id, lang string) (*OTPVerifyResult, error) {
	payload := otpVerifyRequest{
		Lang:     lang,
		Username: c.username,
		APIKey:   c.apiKey,
		Code:     code,
		ID:       id,
		Sender:   c.sender,
	}

	resp, err := c.postJSON(ctx, endpointVerifyOTPCode, payload)
	if err != nil {
		return nil, &RequestError{Op: opVerifyOTP, Err: err}
	}
	return newOTPVerifyResult(resp), nil
}
