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

type UserController struct {
	UserUsecase contracts.UserUsecase
	Log         *zap.Logger
}

var (
	userControllerInstance *UserController
	onceUserController     sync.Once
)

func NewUserController(userUsecase contracts.UserUsecase, logger *zap.Logger) *UserController {
	onceUserController.Do(func() {
		userControllerInstance = &UserController{
			UserUsecase: userUsecase,
			Log:         logger,
		}
	})
	return userControllerInstance
}

func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var request requests.RegisterUser
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	user, err := c.UserUsecase.Register(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UserCreatedSuccess, user)
}

func (c *UserController) Verify(w http.ResponseWriter, r *http.Request) {
	var request requests.VerifyUser
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := c.UserUsecase.Verify(r.Context(), &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserVerifiedSuccess, nil)
}

func (c *UserController) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var request requests.ResendVerification
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	if err := c.UserUsecase.ResendVerification(r.Context(), &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VerificationCodeResent, nil)
}

func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var request requests.LoginUser
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	response, err := c.UserUsecase.Login(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (c *UserController) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := c.UserUsecase.GetAll(r.Context())
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, users)
}

func (c *UserController) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "userID"))
		return
	}

	user, err := c.UserUsecase.GetByID(r.Context(), userID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, user)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "userID"))
		return
	}

	var request requests.UpdateUser
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	user, err := c.UserUsecase.Update(r.Context(), userID, &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserUpdatedSuccess, user)
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseURLParamID(r, "userID")
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrURLParamIDValidation(err, "userID"))
		return
	}

	if err := c.UserUsecase.Delete(r.Context(), userID); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserDeletedSuccess, nil)
}
