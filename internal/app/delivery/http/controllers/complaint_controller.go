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

type ComplaintController struct {
	ComplaintUsecase contracts.ComplaintUsecase
	Log              *zap.Logger
}

var (
	complaintControllerInstance *ComplaintController
	onceComplaintController     sync.Once
)

func NewComplaintController(complaintUsecase contracts.ComplaintUsecase, logger *zap.Logger) *ComplaintController {
	onceComplaintController.Do(func() {
		complaintControllerInstance = &ComplaintController{
			ComplaintUsecase: complaintUsecase,
			Log:              logger,
		}
	})
	return complaintControllerInstance
}

func (c *ComplaintController) Create(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateComplaint
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	complaint, err := c.ComplaintUsecase.Create(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ComplaintCreatedSuccess, complaint)
}

func (c *ComplaintController) GetAll(w http.ResponseWriter, r *http.Request) {
	complaints, err := c.ComplaintUsecase.GetAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, complaints)
}

func (c *ComplaintController) GetByID(w http.ResponseWriter, r *http.Request) {
	complaintID, err := utils.ParseURLParamID(r, "complaintID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "complaintID"))
		return
	}

	complaint, err := c.ComplaintUsecase.GetByID(r.Context(), complaintID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, complaint)
}

func (c *ComplaintController) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "userID"))
		return
	}

	complaints, err := c.ComplaintUsecase.GetByUserID(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, complaints)
}

func (c *ComplaintController) Update(w http.ResponseWriter, r *http.Request) {
	complaintID, err := utils.ParseURLParamID(r, "complaintID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "complaintID"))
		return
	}

	var request requests.UpdateComplaint
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	complaint, err := c.ComplaintUsecase.Update(r.Context(), complaintID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ComplaintUpdatedSuccess, complaint)
}

func (c *ComplaintController) Delete(w http.ResponseWriter, r *http.Request) {
	complaintID, err := utils.ParseURLParamID(r, "complaintID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "complaintID"))
		return
	}

	if err := c.ComplaintUsecase.Delete(r.Context(), complaintID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ComplaintDeletedSuccess, nil)
}
