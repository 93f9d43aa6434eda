package models

import "strings"

// Program is one entry of the fixed program catalog.
type Program struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Price         string `json:"price"`
	OriginalPrice string `json:"originalPrice"`
	DurationLabel string `json:"durationLabel"`
}

// IsDiabetesTrack reports whether the program collects clinical diabetes
// fields (HbA1c) during onboarding.
func (p Program) IsDiabetesTrack() bool {
	return strings.Contains(p.ID, "diabetes")
}

// ProgramCatalog is the fixed set of programs offered during onboarding.
var ProgramCatalog = []Program{
	{ID: "diabetes-light", Name: "Diabetes Management – Light", Price: "₹999", OriginalPrice: "₹2,997", DurationLabel: "3 months program"},
	{ID: "diabetes-plus", Name: "Diabetes Management – Plus", Price: "₹1,999", OriginalPrice: "₹5,997", DurationLabel: "3 months program"},
	{ID: "weight-light", Name: "Weight Management – Light", Price: "₹999", OriginalPrice: "₹2,997", DurationLabel: "3 months program"},
	{ID: "weight-plus", Name: "Weight Management – Plus", Price: "₹1,999", OriginalPrice: "₹5,997", DurationLabel: "3 months program"},
}

// ProgramByID looks up a catalog program. The second return is false for
// unknown IDs.
func ProgramByID(id string) (Program, bool) {
	for _, p := range ProgramCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}
