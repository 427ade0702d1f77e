package dto

// Request DTOs

type LoginRequest struct {
	Name  string `json:"name" validate:"notblank"`
	Phone string `json:"phone" validate:"required,phone"`
	Age   string `json:"age" validate:"required,age"`
	Email string `json:"email" validate:"required,looseemail"`
}

// UpdateProfileRequest carries only the fields being changed.
type UpdateProfileRequest struct {
	Name          *string `json:"name" validate:"omitnil,notblank"`
	Phone         *string `json:"phone" validate:"omitnil,phone"`
	Age           *string `json:"age" validate:"omitnil,age"`
	Email         *string `json:"email" validate:"omitnil,looseemail"`
	HealthDetails *string `json:"health_details"`
}

type HealthDetailsRequest struct {
	HealthDetails string `json:"health_details"`
}

// Response DTOs

type UserProfileResponse struct {
	Name                  string `json:"name"`
	Phone                 string `json:"phone"`
	Age                   string `json:"age"`
	Email                 string `json:"email"`
	HealthDetails         string `json:"health_details,omitempty"`
	HealthDetailsProvided bool   `json:"health_details_provided"`
}

type SessionResponse struct {
	LoggedIn            bool                 `json:"logged_in"`
	User                *UserProfileResponse `json:"user,omitempty"`
	OnboardingStep      string               `json:"onboarding_step"`
	LoginPromptOpen     bool                 `json:"login_prompt_open"`
	LoginPromptExplicit bool                 `json:"login_prompt_explicit"`
}

type SessionMutationResponse struct {
	Session   *SessionResponse `json:"session"`
	Persisted bool             `json:"persisted"`
}
