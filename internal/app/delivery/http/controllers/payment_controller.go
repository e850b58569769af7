package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	PaymentUsecase contracts.PaymentUsecase
	Log            *zap.Logger
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(paymentUsecase contracts.PaymentUsecase, logger *zap.Logger) *PaymentController {
	oncePaymentController.Do(func() {
		paymentControllerInstance = &PaymentController{
			PaymentUsecase: paymentUsecase,
			Log:            logger,
		}
	})
	return paymentControllerInstance
}

func (c *PaymentController) Initiate(w http.ResponseWriter, r *http.Request) {
	var request requests.InitiatePayment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.PaymentUsecase.InitiatePayment(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentInitiatedSuccess, response)
}

// MpesaCallback receives the gateway verdict. The paymentID query parameter
// is the correlation key planted in the CallBackURL at push time; anything
// that is not a positive integer is rejected before the body is read.
func (c *PaymentController) MpesaCallback(w http.ResponseWriter, r *http.Request) {
	rawPaymentID := r.URL.Query().Get("paymentID")
	paymentID, err := strconv.ParseInt(rawPaymentID, 10, 64)
	if err != nil || paymentID <= 0 {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidCallbackRequest(fmt.Errorf("paymentID=%q", rawPaymentID)))
		return
	}

	var envelope requests.MpesaCallbackEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInvalidCallbackRequest(err))
		return
	}

	if err := c.PaymentUsecase.HandleMpesaCallback(r.Context(), paymentID, &envelope); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CallbackProcessed, nil)
}

func (c *PaymentController) GetAll(w http.ResponseWriter, r *http.Request) {
	payments, err := c.PaymentUsecase.GetAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, payments)
}

func (c *PaymentController) GetByID(w http.ResponseWriter, r *http.Request) {
	paymentID, err := utils.ParseURLParamID(r, "paymentID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "paymentID"))
		return
	}

	payment, err := c.PaymentUsecase.GetByID(r.Context(), paymentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, payment)
}

func (c *PaymentController) GetByAppointmentID(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ParseURLParamID(r, "appointmentID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "appointmentID"))
		return
	}

	payment, err := c.PaymentUsecase.GetByAppointmentID(r.Context(), appointmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, payment)
}

func (c *PaymentController) Update(w http.ResponseWriter, r *http.Request) {
	paymentID, err := utils.ParseURLParamID(r, "paymentID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "paymentID"))
		return
	}

	var request requests.UpdatePayment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	payment, err := c.PaymentUsecase.Update(r.Context(), paymentID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentUpdatedSuccess, payment)
}

func (c *PaymentController) Delete(w http.ResponseWriter, r *http.Request) {
	paymentID, err := utils.ParseURLParamID(r, "paymentID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "paymentID"))
		return
	}

	if err := c.PaymentUsecase.Delete(r.Context(), paymentID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentDeletedSuccess, nil)
}
