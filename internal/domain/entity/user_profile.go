package entity

// OnboardingStep tracks how far the single user has got through sign-up.
type OnboardingStep string

const (
	OnboardingStepLogin         OnboardingStep = "login"
	OnboardingStepHealthDetails OnboardingStep = "health_details"
	OnboardingStepComplete      OnboardingStep = "complete"
)

// UserProfile is the persisted record of the logged-in user. Age is kept as
// a numeric string.
type UserProfile struct {
	Name                  string `json:"name"`
	Phone                 string `json:"phone"`
	Age                   string `json:"age"`
	Email                 string `json:"email"`
	HealthDetails         string `json:"healthDetails,omitempty"`
	HealthDetailsProvided bool   `json:"healthDetailsProvided"`
}

// Session is the in-process view of the current user. Profile is nil when
// nobody is logged in; the prompt flags are never persisted.
type Session struct {
	Profile             *UserProfile
	LoginPromptOpen     bool
	LoginPromptExplicit bool
}

func (s *Session) OnboardingStep() OnboardingStep {
	switch {
	case s.Profile == nil:
		return OnboardingStepLogin
	case !s.Profile.HealthDetailsProvided:
		return OnboardingStepHealthDetails
	default:
		return OnboardingStepComplete
	}
}
