package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClotureBot/model"
	"ClotureBot/wizard"
)

func TestParseAction(t *testing.T) {
	a, err := ParseAction("perim:-10")
	require.NoError(t, err)
	assert.Equal(t, Action{Kind: "perim", Value: "-10"}, a)
	assert.Equal(t, "perim:-10", a.Data())

	for _, data := range []string{"", "perim", ":10"} {
		_, err := ParseAction(data)
		assert.ErrorIs(t, err, ErrBadCallback, "data %q", data)
	}
}

func TestApplyRejectsBadValues(t *testing.T) {
	tests := []struct {
		data string
		want error
	}{
		{"loc:10", wizard.ErrUnknownOption},
		{"loc:x", wizard.ErrUnknownOption},
		{"ptype:-1", wizard.ErrUnknownOption},
		{"project:5", wizard.ErrUnknownOption},
		{"parcel:loue", wizard.ErrUnknownOption},
		{"input:address", wizard.ErrUnknownOption},
		{"nav:sideways", wizard.ErrUnknownOption},
		{"perim:beaucoup", ErrBadCallback},
		{"height:up", ErrBadCallback},
		{"color:red", ErrBadCallback},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			s := model.NewSession(1)
			a, err := ParseAction(tt.data)
			require.NoError(t, err)

			_, err = Apply(s, a)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, model.NewFormState(), s.Form)
		})
	}
}

func TestApplyText(t *testing.T) {
	s := model.NewSession(1)

	handled, notice := ApplyText(s, "hello")
	assert.False(t, handled)
	assert.Empty(t, notice)

	s.Awaiting = model.InputEmail
	handled, notice = ApplyText(s, " awa@example.com ")
	assert.True(t, handled)
	assert.Empty(t, notice)
	assert.Equal(t, "awa@example.com", s.Form.ContactEmail)
	assert.Equal(t, model.InputNone, s.Awaiting)

	s.Awaiting = model.InputPerimeter
	handled, notice = ApplyText(s, "4")
	assert.True(t, handled)
	assert.Empty(t, notice)
	assert.Equal(t, model.MinPerimeter, s.Form.PerimeterMeters)
}

func TestPrompt(t *testing.T) {
	q, placeholder := Prompt(model.InputPhone)
	assert.Equal(t, "Votre numéro WhatsApp *", q)
	assert.Equal(t, "Ex: 01 23 45 67 89", placeholder)

	q, placeholder = Prompt(model.InputNone)
	assert.Empty(t, q)
	assert.Empty(t, placeholder)
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()
	assert.Equal(t, 0, store.Len())

	s := store.Get(7)
	assert.Same(t, s, store.Get(7))
	assert.Equal(t, model.NewFormState(), s.Form)
	assert.Equal(t, int64(7), s.ChatID)

	assert.NotSame(t, s, store.Get(8))
	assert.Equal(t, 2, store.Len())
}
