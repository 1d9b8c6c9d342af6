package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClotureBot/model"
)

func TestNextFromProjectRequiresParcelStatus(t *testing.T) {
	for _, survey := range append([]model.SurveyStatus{model.SurveyUnset}, model.SurveyStatuses...) {
		f := model.NewFormState()
		f.SurveyStatus = survey

		err := Next(&f)
		assert.ErrorIs(t, err, ErrStepIncomplete, "survey %q", survey)
		assert.Equal(t, model.StepProject, f.Step)
	}
}

func TestNextFromProject(t *testing.T) {
	tests := []struct {
		name    string
		parcel  model.ParcelStatus
		survey  model.SurveyStatus
		allowed bool
	}{
		{"owned without survey", model.ParcelOwned, model.SurveyUnset, false},
		{"owned with survey", model.ParcelOwned, model.SurveyToBeDone, true},
		{"searching without survey", model.ParcelSearching, model.SurveyUnset, true},
		{"future without survey", model.ParcelFuture, model.SurveyUnset, true},
		{"searching with stale survey", model.ParcelSearching, model.SurveyUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := model.NewFormState()
			f.ParcelStatus = tt.parcel
			f.SurveyStatus = tt.survey

			err := Next(&f)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, model.StepSimulation, f.Step)
			} else {
				assert.ErrorIs(t, err, ErrStepIncomplete)
				assert.Equal(t, model.StepProject, f.Step)
			}
		})
	}
}

func TestNextFromSimulationIsUnconditional(t *testing.T) {
	f := model.NewFormState()
	f.Step = model.StepSimulation

	require.NoError(t, Next(&f))
	assert.Equal(t, model.StepContact, f.Step)

	assert.ErrorIs(t, Next(&f), ErrNoNextStep)
	assert.Equal(t, model.StepContact, f.Step)
}

func TestBackKeepsValues(t *testing.T) {
	f := model.NewFormState()
	require.NoError(t, SetParcelStatus(&f, model.ParcelOwned))
	require.NoError(t, SetSurveyStatus(&f, model.SurveyAvailable))
	require.NoError(t, Next(&f))
	require.NoError(t, SetLocality(&f, "Cotonou"))
	SetPerimeter(&f, 120)
	require.NoError(t, Next(&f))
	SetContactName(&f, "Jean Dupont")

	require.NoError(t, Back(&f))
	assert.Equal(t, model.StepSimulation, f.Step)
	require.NoError(t, Back(&f))
	assert.Equal(t, model.StepProject, f.Step)
	assert.ErrorIs(t, Back(&f), ErrNoPreviousStep)

	assert.Equal(t, model.ParcelOwned, f.ParcelStatus)
	assert.Equal(t, model.SurveyAvailable, f.SurveyStatus)
	assert.Equal(t, "Cotonou", f.Locality)
	assert.Equal(t, 120, f.PerimeterMeters)
	assert.Equal(t, "Jean Dupont", f.ContactName)

	require.NoError(t, Next(&f))
	require.NoError(t, Next(&f))
	assert.Equal(t, model.StepContact, f.Step)
}

func TestRestart(t *testing.T) {
	f := model.FormState{
		Step:            model.StepContact,
		ParcelStatus:    model.ParcelFuture,
		SurveyStatus:    model.SurveyUnavailable,
		Locality:        "Parakou",
		ParcelType:      model.ParcelTypeBetweenThreeParcels,
		PerimeterMeters: 300,
		FenceHeight:     "3.0m",
		ContactName:     "A",
		ContactPhone:    "B",
		ContactEmail:    "C",
		ProjectType:     "Commerce",
	}

	Restart(&f)

	assert.Equal(t, model.FormState{
		Step:            model.StepProject,
		ParcelStatus:    model.ParcelUnset,
		SurveyStatus:    model.SurveyUnset,
		Locality:        "Abomey-Calavi",
		ParcelType:      "Angle",
		PerimeterMeters: 70,
		FenceHeight:     "2.0m (standard)",
		ProjectType:     "Maison individuelle",
	}, f)
}

func TestSettersRejectUnknownOptions(t *testing.T) {
	f := model.NewFormState()

	assert.ErrorIs(t, SetParcelStatus(&f, "loue"), ErrUnknownOption)
	assert.ErrorIs(t, SetSurveyStatus(&f, "peut-etre"), ErrUnknownOption)
	assert.ErrorIs(t, SetLocality(&f, "Lomé"), ErrUnknownOption)
	assert.ErrorIs(t, SetParcelType(&f, "Triangle"), ErrUnknownOption)
	assert.ErrorIs(t, SetProjectType(&f, "Usine"), ErrUnknownOption)

	assert.Equal(t, model.NewFormState(), f)
}

func TestPerimeterIsClamped(t *testing.T) {
	f := model.NewFormState()

	SetPerimeter(&f, 3)
	assert.Equal(t, model.MinPerimeter, f.PerimeterMeters)

	SetPerimeter(&f, 9000)
	assert.Equal(t, model.MaxPerimeter, f.PerimeterMeters)

	StepPerimeter(&f, -10)
	assert.Equal(t, 490, f.PerimeterMeters)
	StepPerimeter(&f, 10)
	StepPerimeter(&f, 10)
	assert.Equal(t, 500, f.PerimeterMeters)
}

func TestStepHeightStopsAtEnds(t *testing.T) {
	f := model.NewFormState()

	StepHeight(&f, -1)
	assert.Equal(t, "1.8m", f.FenceHeight)
	StepHeight(&f, -1)
	assert.Equal(t, "1.8m", f.FenceHeight)

	StepHeight(&f, 1)
	StepHeight(&f, 1)
	StepHeight(&f, 1)
	assert.Equal(t, "3.0m", f.FenceHeight)
	StepHeight(&f, 1)
	assert.Equal(t, "3.0m", f.FenceHeight)

	f.FenceHeight = "bogus"
	StepHeight(&f, 1)
	assert.Equal(t, "2.5m", f.FenceHeight)
}

func TestEstimateFollowsSelections(t *testing.T) {
	f := model.NewFormState()
	before := Estimate(&f)

	require.NoError(t, SetLocality(&f, "Cotonou"))
	assert.InDelta(t, before*1.05, Estimate(&f), 1e-6)
}
