package controllers

import (
	"net/http"
	"sync"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ContactController struct {
	ContactUsecase contracts.ContactUsecase
	Log            *zap.Logger
}

var (
	contactControllerInstance *ContactController
	onceContactController     sync.Once
)

func NewContactController(contactUsecase contracts.ContactUsecase, logger *zap.Logger) *ContactController {
	onceContactController.Do(func() {
		contactControllerInstance = &ContactController{
			ContactUsecase: contactUsecase,
			Log:            logger,
		}
	})
	return contactControllerInstance
}

func (c *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateContact
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	contact, err := c.ContactUsecase.Create(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ContactCreatedSuccess, contact)
}

func (c *ContactController) GetAll(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.ContactUsecase.GetAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, contacts)
}
