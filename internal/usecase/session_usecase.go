package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"

	"medifind/internal/converter"
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
	"medifind/internal/domain/repository"
	"medifind/pkg/apperror"
	"medifind/pkg/validator"

	"github.com/sirupsen/logrus"
)

var ErrNoActiveSession = errors.New("no user is logged in")

type SessionUsecase interface {
	// Restore loads the persisted user, if any. It runs once at startup.
	Restore(ctx context.Context) error
	Current() entity.Session
	GetSession() *dto.SessionResponse
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionMutationResponse, error)
	Logout(ctx context.Context) (*dto.SessionMutationResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (bool, error)
	UpdateHealthDetails(ctx context.Context, req *dto.HealthDetailsRequest) (*dto.SessionMutationResponse, error)
	SkipHealthDetails(ctx context.Context) (*dto.SessionMutationResponse, error)
	TriggerLoginPrompt() *dto.SessionResponse
	CloseLoginPrompt() *dto.SessionResponse
}

// sessionUsecase owns the single in-process session. The persisted record
// and the in-memory copy are changed together under mu.
type sessionUsecase struct {
	log         *logrus.Logger
	validator   *validator.CustomValidator
	sessionRepo repository.SessionRepository

	mu      sync.RWMutex
	session entity.Session
}

func NewSessionUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	sessionRepo repository.SessionRepository,
) SessionUsecase {
	return &sessionUsecase{
		log:         log,
		validator:   validator,
		sessionRepo: sessionRepo,
	}
}

func (u *sessionUsecase) Restore(ctx context.Context) error {
	profile, err := u.sessionRepo.Find(ctx)
	if err != nil {
		u.log.Warnf("Failed to restore session: %+v", err)
		return err
	}

	u.mu.Lock()
	u.session.Profile = profile
	u.mu.Unlock()

	if profile != nil {
		u.log.Infof("Session restored for %s", profile.Name)
	}
	return nil
}

// Current returns a copy of the session that callers may keep.
func (u *sessionUsecase) Current() entity.Session {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.snapshot()
}

func (u *sessionUsecase) GetSession() *dto.SessionResponse {
	s := u.Current()
	return converter.SessionToResponse(&s)
}

// Login merges the submitted details over any existing record and restarts
// onboarding at the health details step.
func (u *sessionUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionMutationResponse, error) {
	if err := u.validator.Check(req); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	profile := entity.UserProfile{}
	if u.session.Profile != nil {
		profile = *u.session.Profile
	}
	profile.Name = strings.TrimSpace(req.Name)
	profile.Phone = req.Phone
	profile.Age = normalizeAge(req.Age)
	profile.Email = req.Email
	profile.HealthDetailsProvided = false

	persisted, err := u.save(ctx, &profile)
	if err != nil {
		return nil, err
	}

	u.log.Infof("User logged in: %s", profile.Name)
	return u.mutationResponse(persisted), nil
}

// Logout removes the persisted record and clears the explicit prompt flag.
func (u *sessionUsecase) Logout(ctx context.Context) (*dto.SessionMutationResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	persisted := true
	if err := u.sessionRepo.Delete(ctx); err != nil {
		if !apperror.IsNotPersisted(err) {
			u.log.Warnf("Failed to remove session: %+v", err)
			return nil, err
		}
		persisted = false
	}

	u.session.Profile = nil
	u.session.LoginPromptExplicit = false

	u.log.Info("User logged out")
	return u.mutationResponse(persisted), nil
}

// UpdateProfile applies the supplied fields. It reports false when nobody is
// logged in or the change could not be persisted; in the latter case the
// change still holds for this process.
func (u *sessionUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (bool, error) {
	if err := u.validator.Check(req); err != nil {
		return false, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.session.Profile == nil {
		return false, nil
	}

	profile := *u.session.Profile
	if req.Name != nil {
		profile.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Age != nil {
		profile.Age = normalizeAge(*req.Age)
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.HealthDetails != nil {
		profile.HealthDetails = *req.HealthDetails
	}

	return u.save(ctx, &profile)
}

func (u *sessionUsecase) UpdateHealthDetails(ctx context.Context, req *dto.HealthDetailsRequest) (*dto.SessionMutationResponse, error) {
	return u.updateOnboarding(ctx, func(p *entity.UserProfile) {
		p.HealthDetails = req.HealthDetails
		p.HealthDetailsProvided = true
	})
}

// SkipHealthDetails completes onboarding without recording any details.
func (u *sessionUsecase) SkipHealthDetails(ctx context.Context) (*dto.SessionMutationResponse, error) {
	return u.updateOnboarding(ctx, func(p *entity.UserProfile) {
		p.HealthDetailsProvided = true
	})
}

func (u *sessionUsecase) TriggerLoginPrompt() *dto.SessionResponse {
	u.mu.Lock()
	u.session.LoginPromptOpen = true
	u.session.LoginPromptExplicit = true
	s := u.snapshot()
	u.mu.Unlock()
	return converter.SessionToResponse(&s)
}

func (u *sessionUsecase) CloseLoginPrompt() *dto.SessionResponse {
	u.mu.Lock()
	u.session.LoginPromptOpen = false
	s := u.snapshot()
	u.mu.Unlock()
	return converter.SessionToResponse(&s)
}

func (u *sessionUsecase) updateOnboarding(ctx context.Context, fn func(*entity.UserProfile)) (*dto.SessionMutationResponse, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.session.Profile == nil {
		return nil, apperror.NewNotFoundError("session", "current", ErrNoActiveSession)
	}

	profile := *u.session.Profile
	fn(&profile)

	persisted, err := u.save(ctx, &profile)
	if err != nil {
		return nil, err
	}
	return u.mutationResponse(persisted), nil
}

// save writes profile and installs it as the current one. Callers hold mu.
func (u *sessionUsecase) save(ctx context.Context, profile *entity.UserProfile) (bool, error) {
	persisted := true
	if err := u.sessionRepo.Save(ctx, profile); err != nil {
		if !apperror.IsNotPersisted(err) {
			u.log.Warnf("Failed to save session: %+v", err)
			return false, err
		}
		persisted = false
	}
	u.session.Profile = profile
	return persisted, nil
}

func (u *sessionUsecase) snapshot() entity.Session {
	s := u.session
	if s.Profile != nil {
		p := *s.Profile
		s.Profile = &p
	}
	return s
}

func (u *sessionUsecase) mutationResponse(persisted bool) *dto.SessionMutationResponse {
	s := u.snapshot()
	return &dto.SessionMutationResponse{
		Session:   converter.SessionToResponse(&s),
		Persisted: persisted,
	}
}

// normalizeAge drops leading zeros from an already validated age.
func normalizeAge(age string) string {
	if n, ok := validator.ParseAge(age); ok {
		return strconv.Itoa(n)
	}
	return age
}
