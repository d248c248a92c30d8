package mockgateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kareem-3del/Msegat/pkg/msegat"
)

// newTestGateway hosts the emulator and returns a real client wired to it.
func newTestGateway(t *testing.T) (*msegat.Client, *Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := NewStore()
	server := httptest.NewServer(Router(NewHandler(store, logger)))
	t.Cleanup(server.Close)

	client, err := msegat.NewClient(msegat.Config{
		Username: "devuser",
		APIKey:   "devkey",
		Sender:   "DevSender",
		BaseURL:  server.URL,
	})
	require.NoError(t, err)

	return client, store
}

func TestSendSMSRecordsMessage(t *testing.T) {
	client, store := newTestGateway(t)

	resp, err := client.SendMessage(context.Background(), "966512345678", "hello there")
	require.NoError(t, err)
	assert.Equal(t, "1", resp.GetString("code"))

	messages := store.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "966512345678", messages[0].To)
	assert.Equal(t, "DevSender", messages[0].Sender)
	assert.Equal(t, "hello there", messages[0].Body)
	assert.Equal(t, "UTF8", messages[0].Encoding)
}

func TestSendSMSFansOutCommaSeparatedNumbers(t *testing.T) {
	client, store := newTestGateway(t)

	_, err := client.SendMessage(context.Background(), "111, 222", "fanout")
	require.NoError(t, err)

	messages := store.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "111", messages[0].To)
	assert.Equal(t, "222", messages[1].To)
}

func TestSendVarsSubstitutesPerRecipient(t *testing.T) {
	client, store := newTestGateway(t)

	vars := []msegat.Variables{{"name": "John"}, {"name": "Doe"}}
	_, err := client.SendPersonalizedMessages(context.Background(),
		[]string{"111", "222"}, "Hello {name}", vars, nil)
	require.NoError(t, err)

	messages := store.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "Hello John", messages[0].Body)
	assert.Equal(t, "Hello Doe", messages[1].Body)
}

func TestCalculateCostShape(t *testing.T) {
	client, _ := newTestGateway(t)

	resp, err := client.CalculateMessageCost(context.Background(),
		"numbers", "111,222", "short message", "numbers", "UTF8")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.GetString("Cost"))
	assert.Equal(t, "2", resp.GetString("NumberOfRecipients"))
	assert.Equal(t, "1", resp.GetString("MessageSegments"))
}

func TestOTPRoundTrip(t *testing.T) {
	client, store := newTestGateway(t)
	ctx := context.Background()

	sent, err := client.SendOTPCode(ctx, "966512345678", "En")
	require.NoError(t, err)
	assert.Equal(t, "1", sent.Code)
	require.NotEmpty(t, sent.ID)

	sessions := store.OTPs()
	require.Len(t, sessions, 1)
	assert.Equal(t, sent.ID, sessions[0].ID)
	require.Len(t, sessions[0].Code, 6)

	// Wrong code is a logical failure, never a transport error.
	verified, err := client.VerifyOTPCode(ctx, "000000x", sent.ID, "En")
	require.NoError(t, err)
	assert.Equal(t, "M0023", verified.Code)

	verified, err = client.VerifyOTPCode(ctx, sessions[0].Code, sent.ID, "En")
	require.NoError(t, err)
	assert.Equal(t, "1", verified.Code)

	// A session cannot be verified twice.
	verified, err = client.VerifyOTPCode(ctx, sessions[0].Code, sent.ID, "En")
	require.NoError(t, err)
	assert.Equal(t, "M0023", verified.Code)
}

func TestMissingCredentialsGetVendorErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	handler := NewHandler(NewStore(), logger)

	// The real client refuses empty credentials, so post a bare payload
	// the way a misconfigured caller would.
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/sendsms.php",
		strings.NewReader(`{"userName":"","apiKey":"","numbers":"1","msg":"x"}`))
	request.Header.Set("Content-Type", "application/json")
	Router(handler).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "M0002", body["code"])
}

func TestClearMessages(t *testing.T) {
	client, store := newTestGateway(t)

	_, err := client.SendMessage(context.Background(), "111", "x")
	require.NoError(t, err)
	require.Len(t, store.Messages(), 1)

	store.Clear()
	assert.Empty(t, store.Messages())
	assert.Empty(t, store.OTPs())
}
