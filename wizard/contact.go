package wizard

import (
	"strings"

	"ClotureBot/model"
)

// ContactComplete reports whether name and phone are filled.
// Surrounding whitespace does not count as content.
func ContactComplete(f *model.FormState) bool {
	return strings.TrimSpace(f.ContactName) != "" &&
		strings.TrimSpace(f.ContactPhone) != ""
}

// singleLine folds every run of whitespace, line breaks included, into one
// space. Each contact field must stay on its own line of the lead message.
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func SetContactName(f *model.FormState, name string) {
	f.ContactName = singleLine(name)
}

func SetContactPhone(f *model.FormState, phone string) {
	f.ContactPhone = singleLine(phone)
}

func SetContactEmail(f *model.FormState, email string) {
	f.ContactEmail = singleLine(email)
}
