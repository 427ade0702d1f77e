package converter

import (
	"medifind/internal/delivery/dto"
	"medifind/internal/domain/entity"
)

func UserProfileToResponse(profile *entity.UserProfile) *dto.UserProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.UserProfileResponse{
		Name:                  profile.Name,
		Phone:                 profile.Phone,
		Age:                   profile.Age,
		Email:                 profile.Email,
		HealthDetails:         profile.HealthDetails,
		HealthDetailsProvided: profile.HealthDetailsProvided,
	}
}

func SessionToResponse(session *entity.Session) *dto.SessionResponse {
	if session == nil {
		session = &entity.Session{}
	}

	return &dto.SessionResponse{
		LoggedIn:            session.Profile != nil,
		User:                UserProfileToResponse(session.Profile),
		OnboardingStep:      string(session.OnboardingStep()),
		LoginPromptOpen:     session.LoginPromptOpen,
		LoginPromptExplicit: session.LoginPromptExplicit,
	}
}
