package responses

import "afyacare-service/internal/app/models"

type InitiatePaymentResponse struct {
	Payment *models.Payment  `json:"payment"`
	Gateway *STKPushResponse `json:"gateway"`
}
