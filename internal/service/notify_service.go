package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/courtside-sg/courtside-api/internal/models"
	appErrors "github.com/courtside-sg/courtside-api/pkg/errors"
	"github.com/courtside-sg/courtside-api/pkg/jobs"
)

// JobTypeConfirmation identifies the registration confirmation delivery job.
const JobTypeConfirmation = "notify_confirmation"

// NotifyRequest asks to be told when a booked slot frees up.
type NotifyRequest struct {
	InstructorID string `json:"instructor_id" validate:"required"`
	SlotID       string `json:"slot_id" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
	Phone        string `json:"phone" validate:"omitempty,e164"`
}

// NotifyRegistration is a stored availability-notification request.
type NotifyRegistration struct {
	ID           string    `json:"id"`
	InstructorID string    `json:"instructor_id"`
	SlotID       string    `json:"slot_id"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type instructorFinder interface {
	FindByID(ctx context.Context, id string) (*models.Instructor, error)
}

type dispatcher interface {
	Enqueue(job jobs.Job) error
}

// NotifyService registers interest in booked slots. Registrations live in
// memory; delivery is a structured log line standing in for a real channel.
type NotifyService struct {
	instructors instructorFinder
	validator   *validator.Validate
	logger      *zap.Logger
	enabled     bool
	queue       dispatcher

	mu            sync.RWMutex
	registrations map[string]NotifyRegistration
}

// NewNotifyService constructs a NotifyService.
func NewNotifyService(instructors instructorFinder, validate *validator.Validate, logger *zap.Logger, enabled bool) *NotifyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotifyService{
		instructors:   instructors,
		validator:     validate,
		logger:        logger,
		enabled:       enabled,
		registrations: make(map[string]NotifyRegistration),
	}
}

// WithQueue attaches the background queue used for confirmation delivery.
func (s *NotifyService) WithQueue(queue dispatcher) *NotifyService {
	s.queue = queue
	return s
}

// DeliverConfirmation is the queue handler simulating outbound delivery of a
// registration confirmation. No real channel is attached; the structured log
// line is the delivery.
func (s *NotifyService) DeliverConfirmation(ctx context.Context, job jobs.Job) error {
	registration, ok := job.Payload.(NotifyRegistration)
	if !ok {
		return appErrors.Clone(appErrors.ErrInternal, "unexpected confirmation payload")
	}
	channel := "email"
	destination := registration.Email
	if destination == "" {
		channel = "whatsapp"
		destination = registration.Phone
	}
	s.logger.Info("notification confirmation delivered",
		zap.String("registration_id", registration.ID),
		zap.String("channel", channel),
		zap.String("destination", destination),
	)
	return nil
}

// Enabled reports whether notify registrations are accepted.
func (s *NotifyService) Enabled() bool {
	return s != nil && s.enabled
}

// Register stores a notification request for a booked slot.
func (s *NotifyService) Register(ctx context.Context, req NotifyRequest) (*NotifyRegistration, error) {
	if !s.Enabled() {
		return nil, appErrors.ErrFeatureDisabled
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notify request")
	}
	if req.Email == "" && req.Phone == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "either email or phone is required")
	}

	instructor, err := s.instructors.FindByID(ctx, req.InstructorID)
	if err != nil {
		return nil, err
	}
	slot, found := lo.Find(instructor.Availability, func(slot models.TimeSlot) bool {
		return slot.ID == req.SlotID
	})
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "slot not found for instructor")
	}
	if !slot.Booked {
		return nil, appErrors.Clone(appErrors.ErrValidation, "slot is already open for booking")
	}

	registration := NotifyRegistration{
		ID:           uuid.NewString(),
		InstructorID: req.InstructorID,
		SlotID:       req.SlotID,
		Email:        req.Email,
		Phone:        req.Phone,
		CreatedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	s.registrations[registration.ID] = registration
	s.mu.Unlock()

	s.logger.Info("availability notification registered",
		zap.String("registration_id", registration.ID),
		zap.String("instructor_id", registration.InstructorID),
		zap.String("slot_id", registration.SlotID),
	)

	if s.queue != nil {
		job := jobs.Job{ID: registration.ID, Type: JobTypeConfirmation, Payload: registration}
		if err := s.queue.Enqueue(job); err != nil {
			s.logger.Warn("failed to enqueue confirmation delivery", zap.Error(err))
		}
	}
	return &registration, nil
}

// Registrations returns the stored registrations, newest last.
func (s *NotifyService) Registrations() []NotifyRegistration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := lo.Values(s.registrations)
	return out
}
