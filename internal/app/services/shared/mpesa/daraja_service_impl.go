package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"afyacare-service/internal/app/config"
	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/dto/responses"
	"afyacare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// darajaService integrates with the Safaricom daraja gateway. It owns the
// OAuth token (cached in redis so a token is not fetched per push), the
// time-boxed request password and the STK push call itself.
type darajaService struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackBase   string
	HTTPClient     *http.Client
	TokenCache     contracts.RedisRepository
	Log            *zap.Logger
}

type darajaTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

func NewDarajaService(internalConfig *config.InternalConfig, tokenCache contracts.RedisRepository, logger *zap.Logger) contracts.MpesaService {
	return &darajaService{
		BaseURL:        internalConfig.Mpesa.BaseURL,
		ConsumerKey:    internalConfig.Mpesa.ConsumerKey,
		ConsumerSecret: internalConfig.Mpesa.ConsumerSecret,
		ShortCode:      internalConfig.Mpesa.ShortCode,
		Passkey:        internalConfig.Mpesa.Passkey,
		CallbackBase:   internalConfig.Mpesa.CallbackURL,
		HTTPClient:     &http.Client{Timeout: 30 * time.Second},
		TokenCache:     tokenCache,
		Log:            logger,
	}
}

func (s *darajaService) FetchAccessToken(ctx context.Context) (string, error) {
	if cached, err := s.TokenCache.Get(ctx, constvars.MpesaTokenCacheKey); err == nil && cached != "" {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+constvars.MpesaOAuthPath, nil)
	if err != nil {
		return "", exceptions.ErrMpesaAuth(err)
	}
	req.SetBasicAuth(s.ConsumerKey, s.ConsumerSecret)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", exceptions.ErrMpesaAuth(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", exceptions.ErrMpesaAuthBadStatus(resp.StatusCode)
	}

	var tokenResponse darajaTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", exceptions.ErrMpesaAuth(err)
	}
	if tokenResponse.AccessToken == "" {
		return "", exceptions.ErrMpesaAuth(fmt.Errorf("daraja OAuth response carries no access_token"))
	}

	cacheTTL := time.Duration(constvars.MpesaTokenCacheTTLSecond) * time.Second
	if err := s.TokenCache.Set(ctx, constvars.MpesaTokenCacheKey, tokenResponse.AccessToken, cacheTTL); err != nil {
		s.Log.Warn("darajaService.FetchAccessToken failed to cache access token",
			zap.Error(err),
		)
	}

	return tokenResponse.AccessToken, nil
}

func (s *darajaService) GenerateCredentials(now time.Time) (string, string) {
	timestamp := now.Format(constvars.MpesaTimestampFormat)
	password := base64.StdEncoding.EncodeToString([]byte(s.ShortCode + s.Passkey + timestamp))
	return password, timestamp
}

func (s *darajaService) CallbackURL(paymentID int64) string {
	return fmt.Sprintf("%s?paymentID=%d", s.CallbackBase, paymentID)
}

func (s *darajaService) InitiateSTKPush(ctx context.Context, amount, phoneNumber, callbackURL string) (*responses.STKPushResponse, error) {
	token, err := s.FetchAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	password, timestamp := s.GenerateCredentials(time.Now())
	pushRequest := &requests.STKPushRequest{
		BusinessShortCode: s.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   constvars.MpesaTransactionType,
		Amount:            amount,
		PartyA:            phoneNumber,
		PartyB:            s.ShortCode,
		PhoneNumber:       phoneNumber,
		CallBackURL:       callbackURL,
		AccountReference:  constvars.MpesaAccountReference,
		TransactionDesc:   constvars.MpesaTransactionDesc,
	}

	body, err := json.Marshal(pushRequest)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+constvars.MpesaSTKPushPath, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrMpesaPush(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrMpesaPush(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrMpesaPushBadStatus(resp.StatusCode)
	}

	var pushResponse responses.STKPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&pushResponse); err != nil {
		return nil, exceptions.ErrMpesaPush(err)
	}

	s.Log.Info("darajaService.InitiateSTKPush acknowledged by gateway",
		zap.String("merchant_request_id", pushResponse.MerchantRequestID),
		zap.String("checkout_request_id", pushResponse.CheckoutRequestID),
	)
	return &pushResponse, nil
}
