package requests

// STKPushRequest is the daraja processrequest body. Field names and casing
// are fixed by the gateway.
type STKPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// MpesaCallbackEnvelope is the payload the gateway posts to the callback
// endpoint, decoded once at the boundary.
type MpesaCallbackEnvelope struct {
	Body MpesaCallbackBody `json:"Body"`
}

type MpesaCallbackBody struct {
	StkCallback *StkCallback `json:"stkCallback"`
}

type StkCallback struct {
	MerchantRequestID string            `json:"MerchantRequestID"`
	CheckoutRequestID string            `json:"CheckoutRequestID"`
	ResultCode        int               `json:"ResultCode"`
	ResultDesc        string            `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata,omitempty"`
}

type CallbackMetadata struct {
	Item []CallbackMetadataItem `json:"Item"`
}

// CallbackMetadataItem values are mixed: receipt numbers are strings,
// amounts and phone numbers arrive as JSON numbers.
type CallbackMetadataItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value,omitempty"`
}

// ReceiptNumber returns the gateway transaction reference from the metadata
// list, or nil when the item is absent.
func (c *StkCallback) ReceiptNumber(metadataKey string) *string {
	if c.CallbackMetadata == nil {
		return nil
	}
	for _, item := range c.CallbackMetadata.Item {
		if item.Name != metadataKey {
			continue
		}
		if value, ok := item.Value.(string); ok {
			return &value
		}
	}
	return nil
}
