package wizard

import (
	"fmt"
	"strings"

	"ClotureBot/model"
	"ClotureBot/pricing"
)

const (
	DefaultLinkHost  = "wa.me"
	DefaultLinkPhone = "2290166815278"
)

// Recipient is the messaging account that receives the leads.
type Recipient struct {
	Host  string
	Phone string
}

func DefaultRecipient() Recipient {
	return Recipient{Host: DefaultLinkHost, Phone: DefaultLinkPhone}
}

// Request is the closing line of the lead message.
func Request(f *model.FormState) string {
	if f.ProjectType == model.ProjectTypeNone {
		return "Information seulement"
	}
	return "Intéressé par devis détaillé des matériaux"
}

// FormatMessage renders the lead message. The layout is read by the sales
// team as is; keep field order and section markers unchanged.
func FormatMessage(f *model.FormState) string {
	email := f.ContactEmail
	if email == "" {
		email = "Non fourni"
	}

	var b strings.Builder
	b.WriteString("*ESTIMATION CLÔTURE - EXO PLANETE GROUPE*\n")
	b.WriteString("\n")
	b.WriteString("*Informations client*\n")
	fmt.Fprintf(&b, "Nom : %s\n", f.ContactName)
	fmt.Fprintf(&b, "Téléphone : %s\n", f.ContactPhone)
	fmt.Fprintf(&b, "Email : %s\n", email)
	b.WriteString("\n")
	b.WriteString("*Critères du projet*\n")
	fmt.Fprintf(&b, "Parcelle : %s\n", f.ParcelStatus.Label())
	fmt.Fprintf(&b, "Levé topo : %s\n", f.SurveyStatus.Label())
	fmt.Fprintf(&b, "Localité : %s\n", f.Locality)
	fmt.Fprintf(&b, "Type parcelle : %s\n", f.ParcelType)
	fmt.Fprintf(&b, "Périmètre : %d ml\n", f.PerimeterMeters)
	fmt.Fprintf(&b, "Hauteur : %s\n", f.FenceHeight)
	fmt.Fprintf(&b, "Projet futur : %s\n", f.ProjectType)
	b.WriteString("\n")
	b.WriteString("*Estimation*\n")
	fmt.Fprintf(&b, "Coût estimé : %s\n", pricing.FormatPrice(Estimate(f)))
	b.WriteString("\n")
	b.WriteString("*Demande*\n")
	b.WriteString(Request(f) + "\n")
	b.WriteString("\n")
	b.WriteString("--- \n")
	b.WriteString("Envoyé via l'outil d'estimation en ligne")
	return b.String()
}

// BuildLink returns the deep link that opens the messaging app with the
// lead message pre-filled. It fails when the contact gate does not hold.
func BuildLink(f *model.FormState, to Recipient) (string, error) {
	if !ContactComplete(f) {
		return "", ErrContactIncomplete
	}
	return fmt.Sprintf("https://%s/%s?text=%s", to.Host, to.Phone, Escape(FormatMessage(f))), nil
}

// Escape percent-encodes every byte outside the unreserved set, keeping '/'.
// Spaces become %20.
func Escape(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeep(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func shouldKeep(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~', '/':
		return true
	}
	return false
}
