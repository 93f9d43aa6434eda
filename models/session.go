package models

import "time"

// Step names one stage of the linear onboarding flow.
type Step string

const (
	StepProgramSelection Step = "program_selection"
	StepDetails          Step = "details"
	StepVerification     Step = "verification"
	StepScheduling       Step = "scheduling"
	StepConfirmation     Step = "confirmation"
)

// StepOrder lists the steps in flow order.
var StepOrder = []Step{
	StepProgramSelection,
	StepDetails,
	StepVerification,
	StepScheduling,
	StepConfirmation,
}

// Index returns the position of the step in the flow, or -1 for unknown steps.
func (s Step) Index() int {
	for i, step := range StepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// Before reports whether s comes strictly earlier in the flow than other.
func (s Step) Before(other Step) bool {
	return s.Index() < other.Index()
}

// Verification tracks the OTP state for the session's email.
// OTPVerified transitions false→true only; it never reverts.
type Verification struct {
	Email             string    `json:"email"`
	OTPVerified       bool      `json:"otpVerified"`
	ResendAvailableAt time.Time `json:"resendAvailableAt,omitempty"`
}

// WizardSession holds the context of one user's pass through the onboarding
// flow. It is the single authoritative schema persisted between steps.
type WizardSession struct {
	ID            string         `json:"sessionId"`
	Generation    uint64         `json:"generation"`
	Step          Step           `json:"step"`
	Program       *Program       `json:"selectedProgram,omitempty"`
	Details       *UserDetails   `json:"userData,omitempty"`
	Verification  Verification   `json:"verification"`
	ProfileID     string         `json:"profileId,omitempty"`
	Nutritionist  *Nutritionist  `json:"nutritionist,omitempty"`
	OfferedSlots  []SlotDay      `json:"offeredSlots,omitempty"`
	SelectedSlot  *Slot          `json:"selectedSlot,omitempty"`
	Appointment   *Appointment   `json:"confirmationData,omitempty"`
	DeepLink      string         `json:"deepLink,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	LastUpdatedAt time.Time      `json:"lastUpdatedAt"`
}

// CompletionRecord is the summary exposed once the flow reaches confirmation.
type CompletionRecord struct {
	ProfileID   string       `json:"profileId"`
	Email       string       `json:"email"`
	FullName    string       `json:"fullName"`
	BMI         float64      `json:"bmi,omitempty"`
	HasHbA1c    bool         `json:"hasHba1c"`
	Appointment *Appointment `json:"appointment,omitempty"`
	DeepLink    string       `json:"deepLink,omitempty"`
	Source      string       `json:"source"`
	CompletedAt time.Time    `json:"completedAt"`
}
