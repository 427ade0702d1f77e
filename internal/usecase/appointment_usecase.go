package usecase

import (
	"context"
	"strings"
	"time"

	"medifind/internal/converter"
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"
	"medifind/pkg/apperror"
	"medifind/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentMutationResponse, error)
	UpdateAppointment(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentMutationResponse, error)
	ConfirmAppointment(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error)
	CancelAppointment(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error)
	DeleteAppointment(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	validator       *validator.CustomValidator
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		validator:       validator,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		now:             time.Now,
	}
}

// GetAppointments returns every appointment sorted by date, plus the
// upcoming and past views relative to today's calendar date.
func (u *appointmentUsecase) GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	today := u.now()
	var upcoming, past []entity.Appointment
	for _, a := range appointments {
		if a.IsUpcoming(today) {
			upcoming = append(upcoming, a)
		} else {
			past = append(past, a)
		}
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Upcoming:     converter.AppointmentsToResponses(upcoming),
		Past:         converter.AppointmentsToResponses(past),
		Total:        len(appointments),
	}, nil
}

// CreateAppointment books a pending appointment. The doctor's name is
// captured now and never re-resolved.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentMutationResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	doctor, err := u.findDoctor(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		ID:             uuid.NewString(),
		DoctorID:       doctor.ID,
		DoctorName:     doctor.Name,
		Date:           req.Date,
		Time:           req.Time,
		PatientName:    strings.TrimSpace(req.PatientName),
		PatientContact: strings.TrimSpace(req.PatientContact),
		Status:         entity.AppointmentStatusPending,
	}

	persisted, err := u.persisted(u.appointmentRepo.Create(ctx, appointment))
	if err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%s, doctor=%s, date=%s %s", appointment.ID, doctor.ID, appointment.Date, appointment.Time)
	return &dto.AppointmentMutationResponse{
		Appointment: converter.AppointmentToResponse(appointment),
		Found:       true,
		Persisted:   persisted,
	}, nil
}

// UpdateAppointment replaces the editable fields and keeps the status. An
// unknown id changes nothing and reports Found=false.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id string, req *dto.UpdateAppointmentRequest) (*dto.AppointmentMutationResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	updated, err := u.appointmentRepo.Update(ctx, id, func(a *entity.Appointment) error {
		if req.DoctorID != a.DoctorID {
			doctor, err := u.findDoctor(ctx, req.DoctorID)
			if err != nil {
				return err
			}
			a.DoctorID = doctor.ID
			a.DoctorName = doctor.Name
		}
		a.Date = req.Date
		a.Time = req.Time
		a.PatientName = strings.TrimSpace(req.PatientName)
		a.PatientContact = strings.TrimSpace(req.PatientContact)
		return nil
	})
	return u.mutationResult(id, "updated", updated, err)
}

// ConfirmAppointment sets the status to Confirmed whatever it was before.
func (u *appointmentUsecase) ConfirmAppointment(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error) {
	updated, err := u.appointmentRepo.Update(ctx, id, func(a *entity.Appointment) error {
		a.Confirm()
		return nil
	})
	return u.mutationResult(id, "confirmed", updated, err)
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error) {
	updated, err := u.appointmentRepo.Update(ctx, id, func(a *entity.Appointment) error {
		a.Cancel()
		return nil
	})
	return u.mutationResult(id, "cancelled", updated, err)
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error) {
	deleted, err := u.appointmentRepo.Delete(ctx, id)
	persisted, err := u.persisted(err)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return nil, err
	}
	if deleted {
		u.log.Infof("Appointment deleted: id=%s", id)
	}
	return &dto.AppointmentMutationResponse{Found: deleted, Persisted: persisted && deleted}, nil
}

func (u *appointmentUsecase) mutationResult(id, action string, updated *entity.Appointment, err error) (*dto.AppointmentMutationResponse, error) {
	persisted, err := u.persisted(err)
	if err != nil {
		if !apperror.IsNotFound(err) {
			u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		}
		return nil, err
	}
	if updated == nil {
		return &dto.AppointmentMutationResponse{Found: false}, nil
	}

	u.log.Infof("Appointment %s: id=%s, status=%s", action, id, updated.Status)
	return &dto.AppointmentMutationResponse{
		Appointment: converter.AppointmentToResponse(updated),
		Found:       true,
		Persisted:   persisted,
	}, nil
}

// persisted folds a write the backend refused into a false flag.
func (u *appointmentUsecase) persisted(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if apperror.IsNotPersisted(err) {
		return false, nil
	}
	return false, err
}

func (u *appointmentUsecase) findDoctor(ctx context.Context, id string) (*entity.Doctor, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.NewNotFoundError("doctor", id, ErrDoctorNotFound)
	}
	return doctor, nil
}
