package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot/models"

	"ClotureBot/model"
	"ClotureBot/pricing"
	"ClotureBot/wizard"
)

// View is the wizard message derived from a session.
type View struct {
	Text     string
	Keyboard *models.InlineKeyboardMarkup
	// Link is the deep link offered to the user, empty until the contact
	// gate holds.
	Link string
}

type keyboard [][]models.InlineKeyboardButton

func (k *keyboard) row(buttons ...models.InlineKeyboardButton) {
	*k = append(*k, buttons)
}

func button(text string, a Action) models.InlineKeyboardButton {
	return models.InlineKeyboardButton{Text: text, CallbackData: a.Data()}
}

func choice(text string, selected bool, a Action) models.InlineKeyboardButton {
	if selected {
		text = "✅ " + text
	}
	return button(text, a)
}

// Render derives the whole wizard message from the session state.
func Render(s *model.Session, to wizard.Recipient) View {
	var (
		b  strings.Builder
		kb keyboard
		v  View
	)

	b.WriteString("Estimation de Clôture\n")
	b.WriteString("Obtenez une estimation précise en 3 étapes simples\n\n")

	switch s.Form.Step {
	case model.StepSimulation:
		renderSimulation(&b, &kb, &s.Form)
	case model.StepContact:
		v.Link = renderContact(&b, &kb, &s.Form, to)
	default:
		renderProject(&b, &kb, &s.Form)
	}

	v.Text = strings.TrimRight(b.String(), "\n")
	v.Keyboard = &models.InlineKeyboardMarkup{InlineKeyboard: kb}
	return v
}

func renderProject(b *strings.Builder, kb *keyboard, f *model.FormState) {
	b.WriteString("🎯 Étape 1: Votre projet\n\n")
	b.WriteString("1. Votre situation\n")
	for _, p := range model.ParcelStatuses {
		fmt.Fprintf(b, "• %s : %s\n", p.ShortLabel(), p.Hint())
		kb.row(choice(p.ShortLabel(), f.ParcelStatus == p, Action{kindParcel, string(p)}))
	}

	if f.ParcelStatus == model.ParcelUnset {
		return
	}

	b.WriteString("\n2. Levé topographique\n")
	var row []models.InlineKeyboardButton
	for _, sv := range model.SurveyStatuses {
		fmt.Fprintf(b, "• %s : %s\n", sv.ButtonLabel(), sv.Hint())
		row = append(row, choice(sv.ButtonLabel(), f.SurveyStatus == sv, Action{kindSurvey, string(sv)}))
	}
	kb.row(row...)

	if !wizard.ProjectComplete(f) {
		fmt.Fprintf(b, "\nℹ️ %s\n", noticeSurveyRequired)
		return
	}

	b.WriteString("\n")
	fmt.Fprintf(b, "📌 Parcelle : %s\n", f.ParcelStatus.ShortLabel())
	if f.SurveyStatus != model.SurveyUnset {
		fmt.Fprintf(b, "📐 Levé topo : %s\n", f.SurveyStatus.Label())
	}
	kb.row(button("Continuer vers la simulation →", Action{kindNav, navNext}))
}

func renderSimulation(b *strings.Builder, kb *keyboard, f *model.FormState) {
	b.WriteString("🧮 Étape 2: Simulation\n\n")
	fmt.Fprintf(b, "📍 Localisation : %s\n", f.Locality)
	fmt.Fprintf(b, "🔺 Type de parcelle : %s\n", f.ParcelType)
	fmt.Fprintf(b, "📏 Périmètre sélectionné : %d ml\n", f.PerimeterMeters)
	fmt.Fprintf(b, "📐 Hauteur de clôture : %s\n\n", f.FenceHeight)

	estimate := wizard.Estimate(f)
	b.WriteString("Estimation du coût\n")
	fmt.Fprintf(b, "💰 %s\n", pricing.FormatPrice(estimate))
	fmt.Fprintf(b, "Pour %d ml • %s • %s\n", f.PerimeterMeters, f.FenceHeight, f.Locality)
	b.WriteString("Inclut fondations, murs, chaînage, enduit • TTC\n\n")

	b.WriteString("📋 Devis détaillé disponible (service payant)\n")
	b.WriteString("Pour un devis avec quantités exactes de tous les matériaux (ciment, fer, sable, briques, etc.), contactez-nous après cette estimation.\n\n")
	b.WriteString("⚠️ Terrain complexe ?\n")
	b.WriteString("Si votre terrain est en pente ou de forme irrégulière, contactez-nous directement pour une étude personnalisée.\n")

	kb.row(button("← Retour à l'étape 1", Action{kindNav, navBack}))

	for i := 0; i < len(model.Localities); i += 2 {
		var row []models.InlineKeyboardButton
		for j := i; j < i+2 && j < len(model.Localities); j++ {
			loc := model.Localities[j]
			row = append(row, choice(loc, f.Locality == loc, Action{kindLocality, strconv.Itoa(j)}))
		}
		kb.row(row...)
	}

	var types []models.InlineKeyboardButton
	for i, t := range model.ParcelTypes {
		types = append(types, choice(t, f.ParcelType == t, Action{kindType, strconv.Itoa(i)}))
	}
	kb.row(types...)

	kb.row(
		button("−10", Action{kindPerim, "-10"}),
		button("−1", Action{kindPerim, "-1"}),
		button(fmt.Sprintf("%d ml ✏️", f.PerimeterMeters), Action{kindPerim, "input"}),
		button("+1", Action{kindPerim, "1"}),
		button("+10", Action{kindPerim, "10"}),
	)
	kb.row(
		button("⬅️", Action{kindHeight, "-1"}),
		button(f.FenceHeight, Action{kindNoop, ""}),
		button("➡️", Action{kindHeight, "1"}),
	)
	kb.row(button("Obtenir mon estimation détaillée →", Action{kindNav, navNext}))
}

func renderContact(b *strings.Builder, kb *keyboard, f *model.FormState, to wizard.Recipient) string {
	b.WriteString("📋 Étape 3: Contact\n\n")
	b.WriteString("Récapitulatif de votre projet\n")
	fmt.Fprintf(b, "📌 Parcelle : %s\n", f.ParcelStatus.Label())
	fmt.Fprintf(b, "📐 Levé topo : %s\n", f.SurveyStatus.Label())
	fmt.Fprintf(b, "📍 Localité : %s\n", f.Locality)
	fmt.Fprintf(b, "🔺 Type parcelle : %s\n", f.ParcelType)
	fmt.Fprintf(b, "📏 Périmètre : %d ml\n", f.PerimeterMeters)
	fmt.Fprintf(b, "📐 Hauteur : %s\n\n", f.FenceHeight)

	b.WriteString("ESTIMATION FINALE\n")
	fmt.Fprintf(b, "💰 %s\n", pricing.FormatPrice(wizard.Estimate(f)))
	b.WriteString("Basé sur DQE validé • Estimation envoyée sous 24h\n\n")

	b.WriteString("Vos coordonnées\n")
	fmt.Fprintf(b, "Nom : %s\n", orDash(f.ContactName))
	fmt.Fprintf(b, "Téléphone : %s\n", orDash(f.ContactPhone))
	fmt.Fprintf(b, "Email : %s\n", orDash(f.ContactEmail))
	fmt.Fprintf(b, "Projet de construction : %s\n\n", f.ProjectType)

	kb.row(button("← Retour à la simulation", Action{kindNav, navBack}))
	kb.row(
		button("✏️ Nom", Action{kindInput, "name"}),
		button("✏️ Téléphone", Action{kindInput, "phone"}),
		button("✏️ Email", Action{kindInput, "email"}),
	)
	for i, p := range model.ProjectTypes {
		kb.row(choice(p, f.ProjectType == p, Action{kindProject, strconv.Itoa(i)}))
	}

	link, err := wizard.BuildLink(f, to)
	if err != nil {
		fmt.Fprintf(b, "⚠️ %s\n", noticeContactRequired)
		return ""
	}

	b.WriteString("✅ Toutes les informations sont complètes. Cliquez ci-dessous pour recevoir votre estimation.\n")
	b.WriteString("Vous serez redirigé vers WhatsApp. Réponse sous 24h.\n")
	kb.row(models.InlineKeyboardButton{Text: "📲 RECEVOIR MON ESTIMATION SUR WHATSAPP", URL: link})
	kb.row(button("🔄 Faire une nouvelle estimation", Action{kindNav, navRestart}))
	return link
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
