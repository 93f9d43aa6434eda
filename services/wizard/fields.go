package wizard

import (
	"strconv"
	"strings"

	"lillia/models"
	"lillia/services/validation"
)

// DetailsInput carries the raw form values of the details step. Values stay
// strings until validation so the rules see exactly what the user typed.
type DetailsInput struct {
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
	Email        string `json:"email"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	HbA1c        string `json:"hba1c"`
}

// Accepted input ranges for the numeric health fields.
const (
	minHeightCm = 100
	maxHeightCm = 250
	minWeightKg = 20
	maxWeightKg = 300
	minHbA1c    = 3
	maxHbA1c    = 20
)

// validateDetails runs every field through the validation engine and
// collects per-field messages. HbA1c is validated only on diabetes-track
// programs; elsewhere it is ignored entirely.
func validateDetails(in DetailsInput, diabetesTrack bool) map[string]string {
	fields := []validation.Field{
		{Name: "fullName", Kind: validation.KindText, Value: in.FullName, Required: true},
		{Name: "mobileNumber", Kind: validation.KindPhone, Value: in.MobileNumber, Required: true},
		{Name: "email", Kind: validation.KindEmail, Value: in.Email, Required: true},
		{Name: "height", Kind: validation.KindNumber, Value: in.Height, Required: true, Min: minHeightCm, Max: maxHeightCm, HasRange: true},
		{Name: "weight", Kind: validation.KindNumber, Value: in.Weight, Required: true, Min: minWeightKg, Max: maxWeightKg, HasRange: true},
	}
	if diabetesTrack {
		fields = append(fields, validation.Field{
			Name: "hba1c", Kind: validation.KindNumber, Value: in.HbA1c,
			Min: minHbA1c, Max: maxHbA1c, HasRange: true,
		})
	}

	problems := make(map[string]string)
	for _, f := range fields {
		if res := validation.Validate(f); !res.Valid {
			problems[f.Name] = res.Message
		}
	}
	return problems
}

// buildDetails converts validated input into the session record, deriving
// BMI and keeping HbA1c only on diabetes-track programs.
func buildDetails(in DetailsInput, diabetesTrack bool) *models.UserDetails {
	height, _ := strconv.ParseFloat(strings.TrimSpace(in.Height), 64)
	weight, _ := strconv.ParseFloat(strings.TrimSpace(in.Weight), 64)

	details := &models.UserDetails{
		FullName:     strings.TrimSpace(in.FullName),
		MobileNumber: strings.TrimSpace(in.MobileNumber),
		Email:        strings.TrimSpace(in.Email),
		HeightCm:     height,
		WeightKg:     weight,
		BMI:          models.ComputeBMI(height, weight),
	}
	if diabetesTrack {
		if raw := strings.TrimSpace(in.HbA1c); raw != "" {
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				details.HbA1c = &v
			}
		}
	}
	return details
}
