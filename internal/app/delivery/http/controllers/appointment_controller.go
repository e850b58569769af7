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

type AppointmentController struct {
	AppointmentUsecase contracts.AppointmentUsecase
	Log                *zap.Logger
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(appointmentUsecase contracts.AppointmentUsecase, logger *zap.Logger) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			AppointmentUsecase: appointmentUsecase,
			Log:                logger,
		}
	})
	return appointmentControllerInstance
}

func (c *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	var request requests.CreateAppointment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointment, err := c.AppointmentUsecase.Create(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AppointmentCreatedSuccess, appointment)
}

func (c *AppointmentController) GetAll(w http.ResponseWriter, r *http.Request) {
	appointments, err := c.AppointmentUsecase.GetAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointments)
}

func (c *AppointmentController) GetByID(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ParseURLParamID(r, "appointmentID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "appointmentID"))
		return
	}

	appointment, err := c.AppointmentUsecase.GetByID(r.Context(), appointmentID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointment)
}

func (c *AppointmentController) GetByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "userID"))
		return
	}

	appointments, err := c.AppointmentUsecase.GetByUserID(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointments)
}

func (c *AppointmentController) GetByDoctorID(w http.ResponseWriter, r *http.Request) {
	doctorID, err := utils.ParseURLParamID(r, "doctorID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "doctorID"))
		return
	}

	appointments, err := c.AppointmentUsecase.GetByDoctorID(r.Context(), doctorID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointments)
}

func (c *AppointmentController) GetWithDoctorByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "userID"))
		return
	}

	appointments, err := c.AppointmentUsecase.GetWithDoctorByUserID(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointments)
}

func (c *AppointmentController) GetWithPaymentByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "userID"))
		return
	}

	appointments, err := c.AppointmentUsecase.GetWithPaymentByUserID(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, appointments)
}

func (c *AppointmentController) Update(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ParseURLParamID(r, "appointmentID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "appointmentID"))
		return
	}

	var request requests.UpdateAppointment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	appointment, err := c.AppointmentUsecase.Update(r.Context(), appointmentID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentUpdatedSuccess, appointment)
}

func (c *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ParseURLParamID(r, "appointmentID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "appointmentID"))
		return
	}

	if err := c.AppointmentUsecase.Delete(r.Context(), appointmentID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentDeletedSuccess, nil)
}
