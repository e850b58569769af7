package prescription

import (
	"context"
	"fmt"
	"sync"

	"afyacare-service/internal/app/contracts"
	"afyacare-service/internal/app/models"
	"afyacare-service/internal/pkg/constvars"
	"afyacare-service/internal/pkg/dto/requests"
	"afyacare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionRepository contracts.PrescriptionRepository
	AppointmentRepository  contracts.AppointmentRepository
	Log                    *zap.Logger
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(prescriptionRepository contracts.PrescriptionRepository, appointmentRepository contracts.AppointmentRepository, logger *zap.Logger) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionRepository: prescriptionRepository,
			AppointmentRepository:  appointmentRepository,
			Log:                    logger,
		}
	})
	return prescriptionUsecaseInstance
}

func (u *prescriptionUsecase) Create(ctx context.Context, request *requests.CreatePrescription) (*models.Prescription, error) {
	if _, err := u.AppointmentRepository.FindByID(ctx, request.AppointmentID); err != nil {
		return nil, err
	}

	created, err := u.PrescriptionRepository.CreatePrescription(ctx, &models.Prescription{
		AppointmentID: request.AppointmentID,
		DoctorID:      request.DoctorID,
		UserID:        request.UserID,
		Notes:         request.Notes,
	})
	if err != nil {
		return nil, err
	}

	u.Log.Info("prescriptionUsecase.Create prescription created",
		zap.Int64(constvars.LoggingAppointmentIDKey, created.AppointmentID),
		zap.Int64(constvars.LoggingDoctorIDKey, created.DoctorID),
	)
	return created, nil
}

func (u *prescriptionUsecase) GetAll(ctx context.Context) ([]models.Prescription, error) {
	return u.PrescriptionRepository.FindAll(ctx)
}

func (u *prescriptionUsecase) GetByID(ctx context.Context, prescriptionID int64) (*models.Prescription, error) {
	return u.PrescriptionRepository.FindByID(ctx, prescriptionID)
}

func (u *prescriptionUsecase) GetByAppointmentID(ctx context.Context, appointmentID int64) ([]models.Prescription, error) {
	return u.PrescriptionRepository.FindByAppointmentID(ctx, appointmentID)
}

func (u *prescriptionUsecase) GetByUserID(ctx context.Context, userID int64) ([]models.Prescription, error) {
	return u.PrescriptionRepository.FindByUserID(ctx, userID)
}

func (u *prescriptionUsecase) GetByDoctorID(ctx context.Context, doctorID int64) ([]models.Prescription, error) {
	return u.PrescriptionRepository.FindByDoctorID(ctx, doctorID)
}

func (u *prescriptionUsecase) Update(ctx context.Context, prescriptionID int64, request *requests.UpdatePrescription) (*models.Prescription, error) {
	prescription, err := u.PrescriptionRepository.FindByID(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if request.Notes == nil {
		return nil, exceptions.ErrNoFieldsToUpdate(fmt.Errorf("update request carries no fields"))
	}
	prescription.Notes = *request.Notes
	return u.PrescriptionRepository.UpdatePrescription(ctx, prescription)
}

func (u *prescriptionUsecase) Delete(ctx context.Context, prescriptionID int64) error {
	return u.PrescriptionRepository.DeletePrescription(ctx, prescriptionID)
}
