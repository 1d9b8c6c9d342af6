package model

// NotSpecified is the label shown for an unset or unknown choice.
const NotSpecified = "Non spécifié"

// ParcelStatus is the user's land situation.
type ParcelStatus string

const (
	ParcelUnset     ParcelStatus = ""
	ParcelOwned     ParcelStatus = "possede"
	ParcelSearching ParcelStatus = "recherche"
	ParcelFuture    ParcelStatus = "futur"
)

// ParcelStatuses lists the selectable statuses in display order.
var ParcelStatuses = []ParcelStatus{ParcelOwned, ParcelSearching, ParcelFuture}

func (p ParcelStatus) Valid() bool {
	switch p {
	case ParcelOwned, ParcelSearching, ParcelFuture:
		return true
	}
	return false
}

// Label is the wording used in the recap and the lead message.
func (p ParcelStatus) Label() string {
	switch p {
	case ParcelOwned:
		return "Terrain disponible"
	case ParcelSearching:
		return "En recherche de terrain"
	case ParcelFuture:
		return "Projet futur"
	}
	return NotSpecified
}

// ShortLabel is the wording of the step 1 recap and choice buttons.
func (p ParcelStatus) ShortLabel() string {
	if p == ParcelSearching {
		return "En recherche"
	}
	return p.Label()
}

// Hint is the secondary line of the choice button.
func (p ParcelStatus) Hint() string {
	switch p {
	case ParcelOwned:
		return "Je possède le terrain"
	case ParcelSearching:
		return "Je cherche un terrain"
	case ParcelFuture:
		return "Planification à venir"
	}
	return ""
}

// SurveyStatus is the availability of a topographic survey.
type SurveyStatus string

const (
	SurveyUnset       SurveyStatus = ""
	SurveyAvailable   SurveyStatus = "oui"
	SurveyToBeDone    SurveyStatus = "a_faire"
	SurveyUnavailable SurveyStatus = "non"
)

var SurveyStatuses = []SurveyStatus{SurveyAvailable, SurveyToBeDone, SurveyUnavailable}

func (s SurveyStatus) Valid() bool {
	switch s {
	case SurveyAvailable, SurveyToBeDone, SurveyUnavailable:
		return true
	}
	return false
}

func (s SurveyStatus) Label() string {
	switch s {
	case SurveyAvailable:
		return "Levé disponible"
	case SurveyToBeDone:
		return "À réaliser"
	case SurveyUnavailable:
		return "Non disponible"
	}
	return NotSpecified
}

// ButtonLabel is the title of the choice button.
func (s SurveyStatus) ButtonLabel() string {
	switch s {
	case SurveyAvailable:
		return "Disponible"
	case SurveyToBeDone:
		return "À réaliser"
	case SurveyUnavailable:
		return "Non"
	}
	return NotSpecified
}

func (s SurveyStatus) Hint() string {
	switch s {
	case SurveyAvailable:
		return "J'ai le document"
	case SurveyToBeDone:
		return "Je souhaite le faire"
	case SurveyUnavailable:
		return "Je n'ai pas"
	}
	return ""
}

const DefaultLocality = "Abomey-Calavi"

// Localities is the closed list of served cities in display order.
var Localities = []string{
	"Abomey-Calavi",
	"Cotonou",
	"Dassa-Zoumè",
	"Sèmè-Podji",
	"Ouidah",
	"Allada",
	"Porto-Novo",
	"Parakou",
	"Bohicon",
	"Abomey",
}

const (
	ParcelTypeCorner              = "Angle"
	ParcelTypeBetweenThreeParcels = "Entre 3 parcelles"
)

var ParcelTypes = []string{ParcelTypeCorner, ParcelTypeBetweenThreeParcels}

const DefaultFenceHeight = "2.0m (standard)"

// FenceHeights is ordered from lowest to highest; the height control walks it.
var FenceHeights = []string{"1.8m", "2.0m (standard)", "2.5m", "3.0m"}

const (
	DefaultProjectType = "Maison individuelle"
	ProjectTypeNone    = "Pas de projet immédiat"
)

var ProjectTypes = []string{
	"Maison individuelle",
	"Immeuble",
	"Commerce",
	"Autre projet",
	ProjectTypeNone,
}

// IndexOf returns the position of v in list, or -1.
func IndexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
