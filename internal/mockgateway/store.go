package mockgateway

import (
	"sync"
	"time"
)

// SentMessage records one delivery the emulator accepted.
type SentMessage struct {
	To       string    `json:"to"`
	Sender   string    `json:"sender"`
	Body     string    `json:"body"`
	Encoding string    `json:"encoding"`
	SentAt   time.Time `json:"sent_at"`
}

// OTPSession is an OTP issued by the emulator, kept until verified.
type OTPSession struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Code      string    `json:"code"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps everything the emulator has accepted, for inspection from
// tests and dev tooling. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	messages []SentMessage
	otps     map[string]*OTPSession
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		otps: make(map[string]*OTPSession),
	}
}

// AddMessage records a delivered message.
func (s *Store) AddMessage(msg SentMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// Messages returns a copy of every recorded message.
func (s *Store) Messages() []SentMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]SentMessage, len(s.messages))
	copy(result, s.messages)
	return result
}

// AddOTP records a newly issued OTP session.
func (s *Store) AddOTP(session *OTPSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.otps[session.ID] = session
}

// VerifyOTP marks the session verified when id and code match an issued,
// not-yet-verified OTP. Returns false otherwise.
func (s *Store) VerifyOTP(id, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.otps[id]
	if !ok || session.Verified || session.Code != code {
		return false
	}
	session.Verified = true
	return true
}

// OTPs returns a copy of every issued OTP session.
func (s *Store) OTPs() []OTPSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]OTPSession, 0, len(s.otps))
	for _, session := range s.otps {
		result = append(result, *session)
	}
	return result
}

// Clear drops all recorded messages and OTP sessions.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.otps = make(map[string]*OTPSession)
}
