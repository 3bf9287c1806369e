package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WorkshopScheduler/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/appointment"
	jobRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/job"
	technicianRepo "github.com/m04kA/SMC-WorkshopScheduler/internal/infra/storage/technician"
	"github.com/m04kA/SMC-WorkshopScheduler/internal/service/schedule/models"
)

// Service сервис расписания: назначение механиков, просмотр записей,
// занятость боксов для календаря диспетчера
type Service struct {
	jobRepo         JobRepository
	appointmentRepo AppointmentRepository
	technicianRepo  TechnicianRepository
	settingsRepo    SettingsRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	jobRepo JobRepository,
	appointmentRepo AppointmentRepository,
	technicianRepo TechnicianRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *Service {
	return &Service{
		jobRepo:         jobRepo,
		appointmentRepo: appointmentRepo,
		technicianRepo:  technicianRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// AssignTechnician назначает механика на заявку или снимает назначение (nil)
// Назначение не ограничено ни занятостью боксов, ни недельной доступностью
// механика: доступность - подсказка для диспетчера, а не правило
func (s *Service) AssignTechnician(ctx context.Context, req *models.AssignTechnicianRequest) (*models.JobResponse, error) {
	s.logger.Info("AssignTechnician: user=%d, job=%d, technician=%v", req.UserID, req.JobID, req.TechnicianID)

	if req.JobID <= 0 {
		return nil, fmt.Errorf("%w: jobID must be positive", ErrInvalidInput)
	}

	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		if errors.Is(err, jobRepo.ErrJobNotFound) {
			s.logger.Warn("AssignTechnician: job id=%d not found", req.JobID)
			return nil, ErrJobNotFound
		}
		s.logger.Error("AssignTechnician: failed to get job id=%d: %v", req.JobID, err)
		return nil, fmt.Errorf("%w: failed to get job: %v", ErrInternal, err)
	}

	if req.TechnicianID != nil {
		if _, err := s.technicianRepo.GetByID(ctx, *req.TechnicianID); err != nil {
			if errors.Is(err, technicianRepo.ErrTechnicianNotFound) {
				s.logger.Warn("AssignTechnician: technician id=%d not found", *req.TechnicianID)
				return nil, ErrTechnicianNotFound
			}
			s.logger.Error("AssignTechnician: failed to get technician id=%d: %v", *req.TechnicianID, err)
			return nil, fmt.Errorf("%w: failed to get technician: %v", ErrInternal, err)
		}
	}

	if err := s.jobRepo.SetTechnician(ctx, req.JobID, req.TechnicianID); err != nil {
		s.logger.Error("AssignTechnician: failed to set technician for job id=%d: %v", req.JobID, err)
		return nil, fmt.Errorf("%w: failed to set technician: %v", ErrInternal, err)
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		s.logger.Error("AssignTechnician: failed to reload job id=%d: %v", req.JobID, err)
		return nil, fmt.Errorf("%w: failed to reload job: %v", ErrInternal, err)
	}

	s.logger.Info("AssignTechnician: job id=%d now assigned to technician=%v", job.ID, job.TechnicianID)

	return toJobResponse(job), nil
}

// GetAppointment получает запись по ID
func (s *Service) GetAppointment(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	apt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetAppointment: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetAppointment: failed to get appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	return &models.AppointmentResponse{
		ID:         apt.ID,
		JobID:      apt.JobID,
		CustomerID: apt.CustomerID,
		VehicleID:  apt.VehicleID,
		DateTime:   apt.DateTime,
		CreatedAt:  apt.CreatedAt,
		UpdatedAt:  apt.UpdatedAt,
	}, nil
}

// ListTechnicians получает всех механиков с недельной доступностью
func (s *Service) ListTechnicians(ctx context.Context) ([]models.TechnicianResponse, error) {
	technicians, err := s.technicianRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListTechnicians: failed to list technicians: %v", err)
		return nil, fmt.Errorf("%w: failed to list technicians: %v", ErrInternal, err)
	}

	result := make([]models.TechnicianResponse, 0, len(technicians))
	for _, tech := range technicians {
		result = append(result, models.TechnicianResponse{
			ID:           tech.ID,
			Name:         tech.Name,
			Specialty:    tech.Specialty,
			Availability: tech.Availability,
		})
	}

	return result, nil
}

func toJobResponse(job *domain.Job) *models.JobResponse {
	return &models.JobResponse{
		ID:                     job.ID,
		CustomerID:             job.CustomerID,
		VehicleID:              job.VehicleID,
		Description:            job.Description,
		EstimatedDurationHours: job.EstimatedDurationHours,
		Status:                 string(job.Status),
		AppointmentID:          job.AppointmentID,
		TechnicianID:           job.TechnicianID,
		UpdatedAt:              job.UpdatedAt,
	}
}
