package appointment

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

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(appointmentRepository contracts.AppointmentRepository, doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

func (u *appointmentUsecase) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	// The doctor lookup surfaces a 404 before the insert hits the FK.
	if _, err := u.DoctorRepository.FindByID(ctx, request.DoctorID); err != nil {
		return nil, err
	}

	date, err := parseDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	created, err := u.AppointmentRepository.CreateAppointment(ctx, &models.Appointment{
		UserID:      request.UserID,
		DoctorID:    request.DoctorID,
		Date:        date,
		TimeSlot:    request.TimeSlot,
		TotalAmount: request.TotalAmount,
	})
	if err != nil {
		return nil, err
	}

	u.Log.Info("appointmentUsecase.Create appointment created",
		zap.Int64(constvars.LoggingAppointmentIDKey, created.ID),
		zap.Int64(constvars.LoggingUserIDKey, created.UserID),
		zap.Int64(constvars.LoggingDoctorIDKey, created.DoctorID),
	)
	return created, nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return u.AppointmentRepository.FindAll(ctx)
}

func (u *appointmentUsecase) GetByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	return u.AppointmentRepository.FindByID(ctx, appointmentID)
}

func (u *appointmentUsecase) GetByUserID(ctx context.Context, userID int64) ([]models.Appointment, error) {
	return u.AppointmentRepository.FindByUserID(ctx, userID)
}

func (u *appointmentUsecase) GetByDoctorID(ctx context.Context, doctorID int64) ([]models.Appointment, error) {
	return u.AppointmentRepository.FindByDoctorID(ctx, doctorID)
}

func (u *appointmentUsecase) GetWithDoctorByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithDoctor, error) {
	return u.AppointmentRepository.FindWithDoctorByUserID(ctx, userID)
}

func (u *appointmentUsecase) GetWithPaymentByUserID(ctx context.Context, userID int64) ([]models.AppointmentWithPayment, error) {
	return u.AppointmentRepository.FindWithPaymentByUserID(ctx, userID)
}

func (u *appointmentUsecase) Update(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error) {
	appointment, err := u.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	changed := false
	if request.Date != nil {
		date, err := parseDate(*request.Date)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		appointment.Date = date
		changed = true
	}
	if request.TimeSlot != nil {
		appointment.TimeSlot = *request.TimeSlot
		changed = true
	}
	if request.TotalAmount != nil {
		appointment.TotalAmount = *request.TotalAmount
		changed = true
	}
	if request.Status != nil {
		appointment.Status = models.AppointmentStatus(*request.Status)
		changed = true
	}
	if !changed {
		return nil, exceptions.ErrNoFieldsToUpdate(fmt.Errorf("update request carries no fields"))
	}

	return u.AppointmentRepository.UpdateAppointment(ctx, appointment)
}

func (u *appointmentUsecase) Delete(ctx context.Context, appointmentID int64) error {
	return u.AppointmentRepository.DeleteAppointment(ctx, appointmentID)
}
