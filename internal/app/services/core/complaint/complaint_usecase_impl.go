package complaint

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

type complaintUsecase struct {
	ComplaintRepository   contracts.ComplaintRepository
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

var (
	complaintUsecaseInstance contracts.ComplaintUsecase
	onceComplaintUsecase     sync.Once
)

func NewComplaintUsecase(complaintRepository contracts.ComplaintRepository, appointmentRepository contracts.AppointmentRepository, logger *zap.Logger) contracts.ComplaintUsecase {
	onceComplaintUsecase.Do(func() {
		complaintUsecaseInstance = &complaintUsecase{
			ComplaintRepository:   complaintRepository,
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
		}
	})
	return complaintUsecaseInstance
}

func (u *complaintUsecase) Create(ctx context.Context, request *requests.CreateComplaint) (*models.Complaint, error) {
	if request.RelatedAppointmentID != nil {
		if _, err := u.AppointmentRepository.FindByID(ctx, *request.RelatedAppointmentID); err != nil {
			return nil, err
		}
	}

	created, err := u.ComplaintRepository.CreateComplaint(ctx, &models.Complaint{
		UserID:               request.UserID,
		RelatedAppointmentID: request.RelatedAppointmentID,
		Subject:              request.Subject,
		Description:          request.Description,
	})
	if err != nil {
		return nil, err
	}

	u.Log.Info("complaintUsecase.Create complaint created",
		zap.Int64(constvars.LoggingUserIDKey, created.UserID),
	)
	return created, nil
}

func (u *complaintUsecase) GetAll(ctx context.Context) ([]models.Complaint, error) {
	return u.ComplaintRepository.FindAll(ctx)
}

func (u *complaintUsecase) GetByID(ctx context.Context, complaintID int64) (*models.Complaint, error) {
	return u.ComplaintRepository.FindByID(ctx, complaintID)
}

func (u *complaintUsecase) GetByUserID(ctx context.Context, userID int64) ([]models.Complaint, error) {
	return u.ComplaintRepository.FindByUserID(ctx, userID)
}

func (u *complaintUsecase) Update(ctx context.Context, complaintID int64, request *requests.UpdateComplaint) (*models.Complaint, error) {
	complaint, err := u.ComplaintRepository.FindByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	changed := false
	if request.Subject != nil {
		complaint.Subject = *request.Subject
		changed = true
	}
	if request.Description != nil {
		complaint.Description = *request.Description
		changed = true
	}
	if request.Status != nil {
		complaint.Status = models.ComplaintStatus(*request.Status)
		changed = true
	}
	if !changed {
		return nil, exceptions.ErrNoFieldsToUpdate(fmt.Errorf("update request carries no fields"))
	}

	return u.ComplaintRepository.UpdateComplaint(ctx, complaint)
}

func (u *complaintUsecase) Delete(ctx context.Context, complaintID int64) error {
	return u.ComplaintRepository.DeleteComplaint(ctx, complaintID)
}
