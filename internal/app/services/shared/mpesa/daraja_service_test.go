package mpesa

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryTokenCache struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemoryTokenCache() *memoryTokenCache {
	return &memoryTokenCache{values: map[string]string{}}
}

func (c *memoryTokenCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
	return nil
}

func (c *memoryTokenCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[key], nil
}

func (c *memoryTokenCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	return nil
}

func newTestService(baseURL string) *darajaService {
	return &darajaService{
		BaseURL:        baseURL,
		ConsumerKey:    "consumer-key",
		ConsumerSecret: "consumer-secret",
		ShortCode:      "174379",
		Passkey:        "test-passkey",
		CallbackBase:   "https://api.afyacare.co.ke/api/v1/mpesa/callback",
		HTTPClient:     &http.Client{Timeout: 5 * time.Second},
		TokenCache:     newMemoryTokenCache(),
		Log:            zap.NewNop(),
	}
}

func TestGenerateCredentials(t *testing.T) {
	service := newTestService("http://unused")
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	password, timestamp := service.GenerateCredentials(now)

	assert.Equal(t, "20240115103000", timestamp)
	expected := base64.StdEncoding.EncodeToString([]byte("174379" + "test-passkey" + "20240115103000"))
	assert.Equal(t, expected, password)

	// Same instant always yields the same signature.
	passwordAgain, timestampAgain := service.GenerateCredentials(now)
	assert.Equal(t, password, passwordAgain)
	assert.Equal(t, timestamp, timestampAgain)
}

func TestCallbackURLCarriesPaymentID(t *testing.T) {
	service := newTestService("http://unused")
	assert.Equal(t, "https://api.afyacare.co.ke/api/v1/mpesa/callback?paymentID=81", service.CallbackURL(81))
}

func TestFetchAccessTokenCachesToken(t *testing.T) {
	var oauthCalls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, constvars.MpesaOAuthPath, r.URL.RequestURI())
		require.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))
		username, password, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "consumer-key", username)
		require.Equal(t, "consumer-secret", password)

		oauthCalls++
		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write([]byte(`{"access_token":"token-abc","expires_in":"3599"}`))
	}))
	defer server.Close()

	service := newTestService(server.URL)

	token, err := service.FetchAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)

	// Second call is served from the cache.
	token, err = service.FetchAccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, 1, oauthCalls)
}

func TestFetchAccessTokenBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	service := newTestService(server.URL)

	_, err := service.FetchAccessToken(context.Background())
	assert.Error(t, err)
}

func TestInitiateSTKPush(t *testing.T) {
	var pushRequest requests.STKPushRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			w.Write([]byte(`{"access_token":"token-abc","expires_in":"3599"}`))
		case constvars.MpesaSTKPushPath:
			require.Equal(t, "Bearer token-abc", r.Header.Get(constvars.HeaderAuthorization))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&pushRequest))
			w.Write([]byte(`{
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResponseCode": "0",
				"ResponseDescription": "Success. Request accepted for processing",
				"CustomerMessage": "Success. Request accepted for processing"
			}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	service := newTestService(server.URL)

	callbackURL := service.CallbackURL(42)
	response, err := service.InitiateSTKPush(context.Background(), "1500", "254712345678", callbackURL)
	require.NoError(t, err)

	assert.Equal(t, "29115-34620561-1", response.MerchantRequestID)
	assert.Equal(t, "ws_CO_191220191020363925", response.CheckoutRequestID)
	assert.Equal(t, "0", response.ResponseCode)

	assert.Equal(t, "174379", pushRequest.BusinessShortCode)
	assert.Equal(t, "174379", pushRequest.PartyB)
	assert.Equal(t, "254712345678", pushRequest.PartyA)
	assert.Equal(t, "254712345678", pushRequest.PhoneNumber)
	assert.Equal(t, "1500", pushRequest.Amount)
	assert.Equal(t, constvars.MpesaTransactionType, pushRequest.TransactionType)
	assert.Equal(t, "https://api.afyacare.co.ke/api/v1/mpesa/callback?paymentID=42", pushRequest.CallBackURL)
	assert.NotEmpty(t, pushRequest.Password)
	assert.Len(t, pushRequest.Timestamp, 14)
}

func TestInitiateSTKPushGatewayRejects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/v1/generate" {
			w.Write([]byte(`{"access_token":"token-abc","expires_in":"3599"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := newTestService(server.URL)

	_, err := service.InitiateSTKPush(context.Background(), "100", "254712345678", service.CallbackURL(1))
	assert.Error(t, err)
}
