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

type PrescriptionController struct {
	PrescriptionUsecase contracts.PrescriptionUsecase
	Log                 *zap.Logger
}

var (
	prescriptionControllerInstance *PrescriptionController
	oncePrescriptionController     sync.Once
)

func NewPrescriptionController(prescriptionUsecase contracts.PrescriptionUsecase, logger *zap.Logger) *PrescriptionController {
	oncePrescriptionController.Do(func() {
		prescriptionControllerInstance = &PrescriptionController{
			PrescriptionUsecase: prescriptionUsecase,
			Log:                 logger,
		}
	})
	return prescriptionControllerInstance
}

func (c *PrescriptionController) Create(w http.ResponseWriter, r *http.Request) {
	var request requests.CreatePrescription
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	prescription, err := c.PrescriptionUsecase.Create(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PrescriptionCreatedSuccess, prescription)
}

func (c *PrescriptionController) GetAll(w http.ResponseWriter, r *http.Request) {
	prescriptions, err := c.PrescriptionUsecase.GetAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, prescriptions)
}

func (c *PrescriptionController) GetByID(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := utils.ParseURLParamID(r, "prescriptionID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "prescriptionID"))
		return
	}

	prescription, err := c.PrescriptionUsecase.GetByID(r.Context(), prescriptionID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, prescription)
}

func (c *PrescriptionController) GetByAppointmentID(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ParseURLParamID(r, "appointmentID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "appointmentID"))
		return
	}

	prescriptions, err := c.PrescriptionUsecase.GetByAppointmentID(r.Context(), appointmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, prescriptions)
}

func (c *PrescriptionController) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "userID"))
		return
	}

	prescriptions, err := c.PrescriptionUsecase.GetByUserID(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, prescriptions)
}

func (c *PrescriptionController) GetByDoctorID(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseURLParamID(r, "doctorID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "doctorID"))
		return
	}

	prescriptions, err := c.PrescriptionUsecase.GetByDoctorID(r.Context(), doctorID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, prescriptions)
}

func (c *PrescriptionController) Update(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := utils.ParseURLParamID(r, "prescriptionID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "prescriptionID"))
		return
	}

	var request requests.UpdatePrescription
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	prescription, err := c.PrescriptionUsecase.Update(r.Context(), prescriptionID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionUpdatedSuccess, prescription)
}

func (c *PrescriptionController) Delete(w http.ResponseWriter, r *http.Request) {
	prescriptionID, err := utils.ParseURLParamID(r, "prescriptionID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "prescriptionID"))
		return
	}

	if err := c.PrescriptionUsecase.Delete(r.Context(), prescriptionID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PrescriptionDeletedSuccess, nil)
}
