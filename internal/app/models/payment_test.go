package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentStatus(t *testing.T) {
	assert.Equal(t, PaymentStatusPending, ParsePaymentStatus("Pending"))
	assert.Equal(t, PaymentStatusPaid, ParsePaymentStatus("Paid"))
	assert.Equal(t, PaymentStatusFailed, ParsePaymentStatus("Failed"))
	assert.Equal(t, PaymentStatusUnknown, ParsePaymentStatus("Refunded"))
	assert.Equal(t, PaymentStatusUnknown, ParsePaymentStatus(""))
	assert.Equal(t, PaymentStatusUnknown, ParsePaymentStatus("paid"))
}
