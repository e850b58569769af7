package requests

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStkCallbackReceiptNumber(t *testing.T) {
	callback := &StkCallback{
		CallbackMetadata: &CallbackMetadata{
			Item: []CallbackMetadataItem{
				{Name: "Amount", Value: 1500.0},
				{Name: "MpesaReceiptNumber", Value: "NLJ7RT61SV"},
				{Name: "PhoneNumber", Value: 254712345678.0},
			},
		},
	}

	receipt := callback.ReceiptNumber("MpesaReceiptNumber")
	require.NotNil(t, receipt)
	assert.Equal(t, "NLJ7RT61SV", *receipt)
}

func TestStkCallbackReceiptNumberAbsent(t *testing.T) {
	callback := &StkCallback{
		CallbackMetadata: &CallbackMetadata{
			Item: []CallbackMetadataItem{{Name: "Amount", Value: 1500.0}},
		},
	}
	assert.Nil(t, callback.ReceiptNumber("MpesaReceiptNumber"))

	// No metadata at all on cancelled or failed transactions.
	assert.Nil(t, (&StkCallback{}).ReceiptNumber("MpesaReceiptNumber"))
}

func TestStkCallbackReceiptNumberNonStringValue(t *testing.T) {
	callback := &StkCallback{
		CallbackMetadata: &CallbackMetadata{
			Item: []CallbackMetadataItem{{Name: "MpesaReceiptNumber", Value: 12345.0}},
		},
	}
	assert.Nil(t, callback.ReceiptNumber("MpesaReceiptNumber"))
}

func TestMpesaCallbackEnvelopeDecoding(t *testing.T) {
	payload := `{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResultCode": 1032,
				"ResultDesc": "Request cancelled by user"
			}
		}
	}`

	var envelope MpesaCallbackEnvelope
	require.NoError(t, json.Unmarshal([]byte(payload), &envelope))
	require.NotNil(t, envelope.Body.StkCallback)
	assert.Equal(t, 1032, envelope.Body.StkCallback.ResultCode)
	assert.Nil(t, envelope.Body.StkCallback.CallbackMetadata)
}

func TestMpesaCallbackEnvelopeEmptyBody(t *testing.T) {
	var envelope MpesaCallbackEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"Body": {}}`), &envelope))
	assert.Nil(t, envelope.Body.StkCallback)
}
