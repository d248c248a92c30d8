// Package mockgateway emulates the Msegat gateway endpoints for local
// development and integration tests, so nothing has to talk to the real
// vendor (or spend real credit) while wiring up a caller.
package mockgateway

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Vendor-shaped reply codes. "1" is success; M-codes mirror the gateway's
// logical failures, which arrive inside 200-OK bodies.
const (
	codeSuccess      = "1"
	codeInvalidLogin = "M0002"
	codeInvalidOTP   = "M0023"
)

// Handler serves the emulated gateway routes.
type Handler struct {
	store  *Store
	logger logrus.FieldLogger
}

// NewHandler creates a Handler backed by the given store.
func NewHandler(store *Store, logger logrus.FieldLogger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
	}
}

// Router builds the gin engine with the five gateway endpoints plus the
// inspection routes.
func Router(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(h.logger))
	router.Use(cors.Default())

	// Gateway surface, matching the real endpoint paths.
	router.POST("/sendsms.php", h.SendSMS)
	router.POST("/sendVarsSMS.php", h.SendVarsSMS)
	router.POST("/calculateSmsCost.php", h.CalculateCost)
	router.POST("/sendOTPCode.php", h.SendOTPCode)
	router.POST("/verifyOTPCode.php", h.VerifyOTPCode)

	// Inspection surface for tests and dev tooling.
	router.GET("/health", h.Health)
	router.GET("/messages", h.ListMessages)
	router.DELETE("/messages", h.ClearMessages)
	router.GET("/otps", h.ListOTPs)

	return router
}

// SendSMSRequest mirrors the sendsms.php payload.
type SendSMSRequest struct {
	Username    string `json:"userName"`
	Numbers     string `json:"numbers"`
	Sender      string `json:"userSender"`
	APIKey      string `json:"apiKey"`
	Message     string `json:"msg"`
	MsgEncoding string `json:"msgEncoding"`
}

// SendVarsRequest mirrors the sendVarsSMS.php payload.
type SendVarsRequest struct {
	Username    string              `json:"userName"`
	APIKey      string              `json:"apiKey"`
	Numbers     []string            `json:"numbers"`
	Sender      string              `json:"userSender"`
	Message     string              `json:"msg"`
	Vars        []map[string]string `json:"vars"`
	MsgEncoding string              `json:"msgEncoding"`
}

// CalculateCostRequest mirrors the calculateSmsCost.php payload.
type CalculateCostRequest struct {
	Username    string `json:"userName"`
	APIKey      string `json:"apiKey"`
	ContactType string `json:"contactType"`
	Contacts    string `json:"contacts"`
	Message     string `json:"msg"`
	By          string `json:"by"`
	MsgEncoding string `json:"msgEncoding"`
}

// OTPSendRequest mirrors the sendOTPCode.php payload.
type OTPSendRequest struct {
	Lang     string `json:"lang"`
	Username string `json:"userName"`
	Number   string `json:"number"`
	APIKey   string `json:"apiKey"`
	Sender   string `json:"userSender"`
}

// OTPVerifyRequest mirrors the verifyOTPCode.php payload.
type OTPVerifyRequest struct {
	Lang     string `json:"lang"`
	Username string `json:"userName"`
	APIKey   string `json:"apiKey"`
	Code     string `json:"code"`
	ID       string `json:"id"`
	Sender   string `json:"userSender"`
}

// authorized rejects requests without credentials the way the vendor does:
// a 200-OK body carrying a logical error code.
func (h *Handler) authorized(c *gin.Context, username, apiKey string) bool {
	if username == "" || apiKey == "" {
		c.JSON(http.StatusOK, gin.H{
			"code":    codeInvalidLogin,
			"message": "Invalid login info",
		})
		return false
	}
	return true
}

// SendSMS handles POST /sendsms.php.
func (h *Handler) SendSMS(c *gin.Context) {
	var req SendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.authorized(c, req.Username, req.APIKey) {
		return
	}

	for _, number := range strings.Split(req.Numbers, ",") {
		h.store.AddMessage(SentMessage{
			To:       strings.TrimSpace(number),
			Sender:   req.Sender,
			Body:     req.Message,
			Encoding: req.MsgEncoding,
			SentAt:   time.Now(),
		})
	}

	h.logger.WithFields(logrus.Fields{
		"numbers": req.Numbers,
		"sender":  req.Sender,
	}).Info("mock gateway accepted message")

	c.JSON(http.StatusOK, gin.H{"code": codeSuccess, "message": "Success"})
}

// SendVarsSMS handles POST /sendVarsSMS.php. Placeholders in the template
// are substituted per recipient when a matching vars entry exists, which is
// what the vendor renders on delivery.
func (h *Handler) SendVarsSMS(c *gin.Context) {
	var req SendVarsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.authorized(c, req.Username, req.APIKey) {
		return
	}

	for i, number := range req.Numbers {
		body := req.Message
		if i < len(req.Vars) {
			for name, value := range req.Vars[i] {
				body = strings.ReplaceAll(body, "{"+name+"}", value)
			}
		}
		h.store.AddMessage(SentMessage{
			To:       number,
			Sender:   req.Sender,
			Body:     body,
			Encoding: req.MsgEncoding,
			SentAt:   time.Now(),
		})
	}

	h.logger.WithField("recipients", len(req.Numbers)).Info("mock gateway accepted personalized messages")

	c.JSON(http.StatusOK, gin.H{"code": codeSuccess, "message": "Success"})
}

// CalculateCost handles POST /calculateSmsCost.php with a flat per-segment
// price, enough for callers to exercise the shape of the reply.
func (h *Handler) CalculateCost(c *gin.Context) {
	var req CalculateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.authorized(c, req.Username, req.APIKey) {
		return
	}

	recipients := len(strings.Split(req.Contacts, ","))
	segmentSize := 70
	if req.MsgEncoding != "UTF8" {
		segmentSize = 160
	}
	segments := (len([]rune(req.Message)) + segmentSize - 1) / segmentSize
	if segments == 0 {
		segments = 1
	}

	c.JSON(http.StatusOK, gin.H{
		"Cost":               fmt.Sprintf("%.3f", float64(recipients*segments)*0.055),
		"NumberOfRecipients": recipients,
		"MessageSegments":    segments,
	})
}

// SendOTPCode handles POST /sendOTPCode.php. The issued code is readable
// through GET /otps, since there is no phone to deliver it to.
func (h *Handler) SendOTPCode(c *gin.Context) {
	var req OTPSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.authorized(c, req.Username, req.APIKey) {
		return
	}

	code, err := generateOTPCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	session := &OTPSession{
		ID:        uuid.NewString(),
		Number:    req.Number,
		Code:      code,
		CreatedAt: time.Now(),
	}
	h.store.AddOTP(session)

	h.logger.WithFields(logrus.Fields{
		"number": req.Number,
		"id":     session.ID,
	}).Info("mock gateway issued OTP")

	c.JSON(http.StatusOK, gin.H{
		"code":    codeSuccess,
		"id":      session.ID,
		"message": "Success",
	})
}

// VerifyOTPCode handles POST /verifyOTPCode.php.
func (h *Handler) VerifyOTPCode(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.authorized(c, req.Username, req.APIKey) {
		return
	}

	if !h.store.VerifyOTP(req.ID, req.Code) {
		c.JSON(http.StatusOK, gin.H{
			"code":    codeInvalidOTP,
			"message": "Invalid or expired OTP",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": codeSuccess, "message": "Success"})
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListMessages handles GET /messages.
func (h *Handler) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": h.store.Messages()})
}

// ClearMessages handles DELETE /messages.
func (h *Handler) ClearMessages(c *gin.Context) {
	h.store.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "cleared"})
}

// ListOTPs handles GET /otps.
func (h *Handler) ListOTPs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"otps": h.store.OTPs()})
}

// requestLogger logs each request with its latency and status.
func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.WithFields(logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"ip":         c.ClientIP(),
			"latency_ms": time.Since(start).Milliseconds(),
		}).Info("Request completed")
	}
}

// generateOTPCode returns a random 6-digit code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
