package doctor

import (
	"context"
	"fmt"
	"sync"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/exceptions"
	"afyacare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

func (u *doctorUsecase) Create(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	contactPhone := request.ContactPhone
	if contactPhone != "" {
		normalized, err := utils.NormalizeMSISDN(contactPhone)
		if err != nil {
			return nil, exceptions.ErrInvalidPhoneNumber(err)
		}
		contactPhone = normalized
	}

	created, err := u.DoctorRepository.CreateDoctor(ctx, &models.Doctor{
		FirstName:      request.FirstName,
		LastName:       request.LastName,
		Specialization: request.Specialization,
		ContactPhone:   contactPhone,
		AvailableDays:  request.AvailableDays,
	})
	if err != nil {
		return nil, err
	}

	u.Log.Info("doctorUsecase.Create doctor created",
		zap.Int64(constvars.LoggingDoctorIDKey, created.ID),
	)
	return created, nil
}

func (u *doctorUsecase) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return u.DoctorRepository.FindAll(ctx)
}

func (u *doctorUsecase) GetByID(ctx context.Context, doctorID int64) (*models.Doctor, error) {
	return u.DoctorRepository.FindByID(ctx, doctorID)
}

func (u *doctorUsecase) Update(ctx context.Context, doctorID int64, request *requests.UpdateDoctor) (*models.Doctor, error) {
	doctor, err := u.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	changed := false
	if request.FirstName != nil {
		doctor.FirstName = *request.FirstName
		changed = true
	}
	if request.LastName != nil {
		doctor.LastName = *request.LastName
		changed = true
	}
	if request.Specialization != nil {
		doctor.Specialization = *request.Specialization
		changed = true
	}
	if request.ContactPhone != nil {
		normalized, err := utils.NormalizeMSISDN(*request.ContactPhone)
		if err != nil {
			return nil, exceptions.ErrInvalidPhoneNumber(err)
		}
		doctor.ContactPhone = normalized
		changed = true
	}
	if request.AvailableDays != nil {
		doctor.AvailableDays = *request.AvailableDays
		changed = true
	}
	if !changed {
		return nil, exceptions.ErrNoFieldsToUpdate(fmt.Errorf("update request carries no fields"))
	}

	return u.DoctorRepository.UpdateDoctor(ctx, doctor)
}

func (u *doctorUsecase) Delete(ctx context.Context, doctorID int64) error {
	return u.DoctorRepository.DeleteDoctor(ctx, doctorID)
}
