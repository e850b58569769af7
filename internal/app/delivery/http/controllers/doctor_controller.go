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

type DoctorController struct {
	DoctorUsecase contracts.DoctorUsecase
	Log           *zap.Logger
}

var (
	doctorControllerInstance *DoctorController
	onceDoctorController     sync.Once
)

func NewDoctorController(doctorUsecase contracts.DoctorUsecase, logger *zap.Logger) *DoctorController {
	onceDoctorController.Do(func() {
		doctorControllerInstance = &DoctorController{
			DoctorUsecase: doctorUsecase,
			Log:           logger,
		}
	})
	return doctorControllerInstance
}

func (c *DoctorController) Create(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateDoctor
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	doctor, err := c.DoctorUsecase.Create(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DoctorCreatedSuccess, doctor)
}

func (c *DoctorController) GetAll(w http.ResponseWriter, r *http.Request) {
	doctors, err := c.DoctorUsecase.GetAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, doctors)
}

func (c *DoctorController) GetByID(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseURLParamID(r, "doctorID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "doctorID"))
		return
	}

	doctor, err := c.DoctorUsecase.GetByID(r.Context(), doctorID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, doctor)
}

func (c *DoctorController) Update(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseURLParamID(r, "doctorID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "doctorID"))
		return
	}

	var request requests.UpdateDoctor
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	doctor, err := c.DoctorUsecase.Update(r.Context(), doctorID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorUpdatedSuccess, doctor)
}

func (c *DoctorController) Delete(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseURLParamID(r, "doctorID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "doctorID"))
		return
	}

	if err := c.DoctorUsecase.Delete(r.Context(), doctorID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorDeletedSuccess, nil)
}
