package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ClotureBot/model"
	"ClotureBot/wizard"
)

// Callback data is "<kind>:<value>".
const (
	kindParcel   = "parcel"
	kindSurvey   = "survey"
	kindNav      = "nav"
	kindLocality = "loc"
	kindType     = "ptype"
	kindPerim    = "perim"
	kindHeight   = "height"
	kindInput    = "input"
	kindProject  = "project"
	kindNoop     = "noop"
)

const (
	navNext    = "next"
	navBack    = "back"
	navRestart = "restart"
)

const (
	noticeSurveyRequired  = "Veuillez répondre à la deuxième question pour continuer"
	noticeParcelRequired  = "Veuillez indiquer votre situation pour continuer"
	noticeContactRequired = "Veuillez remplir votre nom et numéro de téléphone pour recevoir votre estimation."
	noticeBadPerimeter    = "Veuillez saisir un nombre entier entre 10 et 500."
	noticeRestarted       = "Nouvelle estimation"
)

var ErrBadCallback = errors.New("malformed callback data")

// Action is one decoded button press.
type Action struct {
	Kind  string
	Value string
}

func (a Action) Data() string {
	return a.Kind + ":" + a.Value
}

func ParseAction(data string) (Action, error) {
	kind, value, ok := strings.Cut(data, ":")
	if !ok || kind == "" {
		return Action{}, fmt.Errorf("%w: %q", ErrBadCallback, data)
	}
	return Action{Kind: kind, Value: value}, nil
}

// Apply performs a on the session. The returned notice, if any, is shown to
// the user as a transient alert.
func Apply(s *model.Session, a Action) (string, error) {
	f := &s.Form

	switch a.Kind {
	case kindNoop:
		return "", nil
	case kindParcel:
		return "", wizard.SetParcelStatus(f, model.ParcelStatus(a.Value))
	case kindSurvey:
		return "", wizard.SetSurveyStatus(f, model.SurveyStatus(a.Value))
	case kindLocality:
		v, err := pick(model.Localities, a.Value)
		if err != nil {
			return "", err
		}
		return "", wizard.SetLocality(f, v)
	case kindType:
		v, err := pick(model.ParcelTypes, a.Value)
		if err != nil {
			return "", err
		}
		return "", wizard.SetParcelType(f, v)
	case kindProject:
		v, err := pick(model.ProjectTypes, a.Value)
		if err != nil {
			return "", err
		}
		return "", wizard.SetProjectType(f, v)
	case kindPerim:
		if a.Value == "input" {
			s.Awaiting = model.InputPerimeter
			return "", nil
		}
		delta, err := strconv.Atoi(a.Value)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrBadCallback, a.Data())
		}
		wizard.StepPerimeter(f, delta)
		return "", nil
	case kindHeight:
		delta, err := strconv.Atoi(a.Value)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrBadCallback, a.Data())
		}
		wizard.StepHeight(f, delta)
		return "", nil
	case kindInput:
		switch a.Value {
		case "name":
			s.Awaiting = model.InputName
		case "phone":
			s.Awaiting = model.InputPhone
		case "email":
			s.Awaiting = model.InputEmail
		default:
			return "", wizard.ErrUnknownOption
		}
		return "", nil
	case kindNav:
		return navigate(s, a.Value)
	}
	return "", fmt.Errorf("%w: %q", ErrBadCallback, a.Data())
}

func navigate(s *model.Session, to string) (string, error) {
	f := &s.Form
	switch to {
	case navNext:
		err := wizard.Next(f)
		if errors.Is(err, wizard.ErrStepIncomplete) {
			if f.ParcelStatus == model.ParcelUnset {
				return noticeParcelRequired, nil
			}
			return noticeSurveyRequired, nil
		}
		if errors.Is(err, wizard.ErrNoNextStep) {
			return "", nil
		}
		return "", err
	case navBack:
		if err := wizard.Back(f); err != nil && !errors.Is(err, wizard.ErrNoPreviousStep) {
			return "", err
		}
		s.Awaiting = model.InputNone
		return "", nil
	case navRestart:
		s.Reset()
		return noticeRestarted, nil
	}
	return "", wizard.ErrUnknownOption
}

func pick(list []string, index string) (string, error) {
	i, err := strconv.Atoi(index)
	if err != nil || i < 0 || i >= len(list) {
		return "", wizard.ErrUnknownOption
	}
	return list[i], nil
}

// ApplyText stores a text reply in the field the session is waiting for.
// It reports false when no field was awaited.
func ApplyText(s *model.Session, text string) (bool, string) {
	f := &s.Form
	switch s.Awaiting {
	case model.InputName:
		wizard.SetContactName(f, text)
	case model.InputPhone:
		wizard.SetContactPhone(f, text)
	case model.InputEmail:
		wizard.SetContactEmail(f, text)
	case model.InputPerimeter:
		p, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return true, noticeBadPerimeter
		}
		wizard.SetPerimeter(f, p)
	default:
		return false, ""
	}
	s.Awaiting = model.InputNone
	return true, ""
}

// Prompt is the question asked when waiting for a text reply, with the
// example shown in the input field.
func Prompt(in model.Input) (question, placeholder string) {
	switch in {
	case model.InputName:
		return "Votre nom complet *", "Ex: Jean Dupont"
	case model.InputPhone:
		return "Votre numéro WhatsApp *", "Ex: 01 23 45 67 89"
	case model.InputEmail:
		return "Votre email (facultatif)", "email@exemple.com"
	case model.InputPerimeter:
		return "Périmètre de la parcelle (ml), entre 10 et 500", "70"
	}
	return "", ""
}
