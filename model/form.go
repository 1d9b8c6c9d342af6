package model

// Step is the active page of the estimate wizard.
type Step int

const (
	StepProject    Step = iota + 1 // situation and site survey
	StepSimulation                 // location, shape, perimeter, height
	StepContact                    // recap and contact details
)

func (s Step) String() string {
	switch s {
	case StepProject:
		return "project"
	case StepSimulation:
		return "simulation"
	case StepContact:
		return "contact"
	}
	return "unknown"
}

const (
	MinPerimeter     = 10
	MaxPerimeter     = 500
	DefaultPerimeter = 70
)

// FormState holds every selection of one estimate session.
// The estimate itself is never stored; see pricing.Estimate.
type FormState struct {
	Step Step

	ParcelStatus ParcelStatus
	SurveyStatus SurveyStatus

	Locality        string
	ParcelType      string
	PerimeterMeters int
	FenceHeight     string

	ContactName  string
	ContactPhone string
	ContactEmail string
	ProjectType  string
}

// NewFormState returns a form filled with the session defaults.
func NewFormState() FormState {
	return FormState{
		Step:            StepProject,
		Locality:        DefaultLocality,
		ParcelType:      ParcelTypeCorner,
		PerimeterMeters: DefaultPerimeter,
		FenceHeight:     DefaultFenceHeight,
		ProjectType:     DefaultProjectType,
	}
}

// ClampPerimeter bounds p to [MinPerimeter, MaxPerimeter].
func ClampPerimeter(p int) int {
	if p < MinPerimeter {
		return MinPerimeter
	}
	if p > MaxPerimeter {
		return MaxPerimeter
	}
	return p
}
