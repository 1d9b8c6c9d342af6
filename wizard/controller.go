// Package wizard holds the step sequencing and field edits of the
// estimate form. Every function works on a state passed in by the caller.
package wizard

import (
	"errors"

	"ClotureBot/model"
	"ClotureBot/pricing"
)

var (
	ErrStepIncomplete    = errors.New("current step is incomplete")
	ErrContactIncomplete = errors.New("contact name and phone are required")
	ErrUnknownOption     = errors.New("unknown option")
	ErrNoPreviousStep    = errors.New("already on the first step")
	ErrNoNextStep        = errors.New("already on the last step")
)

// ProjectComplete reports whether step 1 may be left. A survey answer is
// only required when the land is already owned.
func ProjectComplete(f *model.FormState) bool {
	return f.ParcelStatus != model.ParcelUnset &&
		(f.SurveyStatus != model.SurveyUnset || f.ParcelStatus != model.ParcelOwned)
}

// CanAdvance reports whether Next would succeed.
func CanAdvance(f *model.FormState) bool {
	switch f.Step {
	case model.StepProject:
		return ProjectComplete(f)
	case model.StepSimulation:
		return true
	}
	return false
}

// Next moves to the following step when the current one is complete.
func Next(f *model.FormState) error {
	if f.Step == model.StepContact {
		return ErrNoNextStep
	}
	if !CanAdvance(f) {
		return ErrStepIncomplete
	}
	f.Step++
	return nil
}

// Back returns to the previous step. Field values are kept.
func Back(f *model.FormState) error {
	if f.Step <= model.StepProject {
		return ErrNoPreviousStep
	}
	f.Step--
	return nil
}

// Restart resets every field to its default and returns to step 1.
func Restart(f *model.FormState) {
	*f = model.NewFormState()
}

// Estimate is the price for the current selections.
func Estimate(f *model.FormState) float64 {
	return pricing.Estimate(f.Locality, f.PerimeterMeters, f.FenceHeight, f.ParcelType)
}

func SetParcelStatus(f *model.FormState, p model.ParcelStatus) error {
	if !p.Valid() {
		return ErrUnknownOption
	}
	f.ParcelStatus = p
	return nil
}

func SetSurveyStatus(f *model.FormState, s model.SurveyStatus) error {
	if !s.Valid() {
		return ErrUnknownOption
	}
	f.SurveyStatus = s
	return nil
}

func SetLocality(f *model.FormState, locality string) error {
	if model.IndexOf(model.Localities, locality) < 0 {
		return ErrUnknownOption
	}
	f.Locality = locality
	return nil
}

func SetParcelType(f *model.FormState, parcelType string) error {
	if model.IndexOf(model.ParcelTypes, parcelType) < 0 {
		return ErrUnknownOption
	}
	f.ParcelType = parcelType
	return nil
}

func SetProjectType(f *model.FormState, projectType string) error {
	if model.IndexOf(model.ProjectTypes, projectType) < 0 {
		return ErrUnknownOption
	}
	f.ProjectType = projectType
	return nil
}

// SetPerimeter stores p clamped to the allowed range.
func SetPerimeter(f *model.FormState, p int) {
	f.PerimeterMeters = model.ClampPerimeter(p)
}

// StepPerimeter adds delta meters, staying within range.
func StepPerimeter(f *model.FormState, delta int) {
	SetPerimeter(f, f.PerimeterMeters+delta)
}

// StepHeight moves one preset up (delta > 0) or down (delta < 0).
// It does not wrap around.
func StepHeight(f *model.FormState, delta int) {
	i := model.IndexOf(model.FenceHeights, f.FenceHeight)
	if i < 0 {
		i = model.IndexOf(model.FenceHeights, model.DefaultFenceHeight)
	}
	switch {
	case delta > 0 && i < len(model.FenceHeights)-1:
		i++
	case delta < 0 && i > 0:
		i--
	}
	f.FenceHeight = model.FenceHeights[i]
}
