package handler

import (
	"context"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"ClotureBot/model"
	"ClotureBot/pricing"
	"ClotureBot/repo"
	"ClotureBot/wizard"
)

// Sender is the part of the Telegram client used by the handler.
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	EditMessageText(ctx context.Context, params *bot.EditMessageTextParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

const helpText = `Je calcule une estimation du coût de votre clôture en 3 étapes :
1. Votre projet (situation, levé topographique)
2. Simulation (ville, forme, périmètre, hauteur)
3. Contact, puis envoi de l'estimation sur WhatsApp

Commandes :
/start – Commencer une estimation
/estimate – Réafficher l'estimation en cours
/restart – Recommencer depuis le début
/help – Afficher cette aide`

type EstimateBotHandler struct {
	Sessions  *SessionStore
	Leads     repo.LeadStore
	Recipient wizard.Recipient

	now   func() time.Time
	newID func() string
}

func NewEstimateBotHandler(leads repo.LeadStore, recipient wizard.Recipient) *EstimateBotHandler {
	if leads == nil {
		leads = repo.NopLeadStore{}
	}
	return &EstimateBotHandler{
		Sessions:  NewSessionStore(),
		Leads:     leads,
		Recipient: recipient,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Handler is registered as the bot's default handler.
func (h *EstimateBotHandler) Handler(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.Handle(ctx, b, update)
}

func (h *EstimateBotHandler) Handle(ctx context.Context, s Sender, update *models.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, s, update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, s, update.Message)
	}
}

func (h *EstimateBotHandler) handleMessage(ctx context.Context, s Sender, msg *models.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	log.Debug().Int64("chat_id", chatID).Str("text", text).Msg("message received")

	sess := h.Sessions.Get(chatID)
	sess.Lock()
	defer sess.Unlock()

	if msg.From != nil {
		sess.Username = msg.From.Username
		if sess.Username == "" {
			sess.Username = msg.From.FirstName
		}
	}

	switch text {
	case "/start", "/restart":
		sess.Reset()
		log.Info().Int64("chat_id", chatID).Msg("estimate started")
		h.sendWizard(ctx, s, sess)
		return
	case "/estimate":
		h.sendWizard(ctx, s, sess)
		return
	case "/help":
		h.send(ctx, s, chatID, helpText)
		return
	}

	handled, notice := ApplyText(sess, msg.Text)
	if !handled {
		h.send(ctx, s, chatID, "Je n'ai pas compris. Utilisez /start ou /help.")
		return
	}
	if notice != "" {
		h.prompt(ctx, s, sess, notice)
		return
	}

	h.recordLead(ctx, sess)
	h.sendWizard(ctx, s, sess)
}

func (h *EstimateBotHandler) handleCallback(ctx context.Context, s Sender, cq *models.CallbackQuery) {
	chatID := cq.From.ID
	messageID := 0
	if cq.Message.Message != nil {
		chatID = cq.Message.Message.Chat.ID
		messageID = cq.Message.Message.ID
	}

	sess := h.Sessions.Get(chatID)
	sess.Lock()
	defer sess.Unlock()

	// Buttons of an older wizard message act on the live one, which is
	// adopted when none is known yet.
	if sess.MessageID == 0 {
		sess.MessageID = messageID
	}
	// A pending text prompt is abandoned by any button press.
	sess.Awaiting = model.InputNone

	before := sess.Form.Step
	notice := ""
	action, err := ParseAction(cq.Data)
	if err == nil {
		notice, err = Apply(sess, action)
	}
	if err != nil {
		log.Warn().Err(err).Int64("chat_id", chatID).Str("data", cq.Data).Msg("callback rejected")
	} else {
		log.Info().
			Int64("chat_id", chatID).
			Str("action", action.Kind).
			Str("value", action.Value).
			Stringer("step", sess.Form.Step).
			Msg("callback applied")
	}

	if _, err := s.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: cq.ID,
		Text:            notice,
	}); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error answering callback")
	}

	if sess.Awaiting != model.InputNone {
		question, _ := Prompt(sess.Awaiting)
		h.prompt(ctx, s, sess, question)
		return
	}

	if sess.Form.Step != before {
		log.Info().Int64("chat_id", chatID).Stringer("from", before).Stringer("to", sess.Form.Step).Msg("step changed")
	}

	h.recordLead(ctx, sess)
	h.editWizard(ctx, s, sess)
}

// sendWizard posts a fresh wizard message and makes it the live one.
func (h *EstimateBotHandler) sendWizard(ctx context.Context, s Sender, sess *model.Session) {
	v := Render(sess, h.Recipient)
	msg, err := s.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      sess.ChatID,
		Text:        v.Text,
		ReplyMarkup: v.Keyboard,
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", sess.ChatID).Msg("error sending wizard")
		return
	}
	if msg != nil {
		sess.MessageID = msg.ID
	}
}

// editWizard re-renders the live wizard message in place.
func (h *EstimateBotHandler) editWizard(ctx context.Context, s Sender, sess *model.Session) {
	if sess.MessageID == 0 {
		h.sendWizard(ctx, s, sess)
		return
	}
	v := Render(sess, h.Recipient)
	_, err := s.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      sess.ChatID,
		MessageID:   sess.MessageID,
		Text:        v.Text,
		ReplyMarkup: v.Keyboard,
	})
	if err != nil {
		// Telegram refuses edits that change nothing.
		log.Debug().Err(err).Int64("chat_id", sess.ChatID).Msg("wizard not edited")
	}
}

func (h *EstimateBotHandler) prompt(ctx context.Context, s Sender, sess *model.Session, question string) {
	_, placeholder := Prompt(sess.Awaiting)
	_, err := s.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: sess.ChatID,
		Text:   question,
		ReplyMarkup: &models.ForceReply{
			ForceReply:            true,
			InputFieldPlaceholder: placeholder,
		},
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", sess.ChatID).Msg("error sending prompt")
	}
}

func (h *EstimateBotHandler) send(ctx context.Context, s Sender, chatID int64, text string) {
	_, err := s.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("error sending message")
	}
}

// recordLead archives the deep link once it is available and whenever its
// content changes.
func (h *EstimateBotHandler) recordLead(ctx context.Context, sess *model.Session) {
	f := &sess.Form
	if f.Step != model.StepContact {
		return
	}
	link, err := wizard.BuildLink(f, h.Recipient)
	if err != nil || link == sess.LastLeadLink {
		return
	}

	lead := model.Lead{
		ID:              h.newID(),
		ChatID:          sess.ChatID,
		Username:        sess.Username,
		ParcelStatus:    string(f.ParcelStatus),
		SurveyStatus:    string(f.SurveyStatus),
		Locality:        f.Locality,
		ParcelType:      f.ParcelType,
		PerimeterMeters: f.PerimeterMeters,
		FenceHeight:     f.FenceHeight,
		ProjectType:     f.ProjectType,
		ContactName:     f.ContactName,
		ContactPhone:    f.ContactPhone,
		ContactEmail:    f.ContactEmail,
		Estimate:        pricing.Round(wizard.Estimate(f)),
		Link:            link,
		CreatedAt:       h.now().UTC(),
	}

	key, err := h.Leads.CreateLead(ctx, lead)
	if err != nil {
		log.Error().Err(err).Int64("chat_id", sess.ChatID).Msg("error archiving lead")
		return
	}
	sess.LastLeadLink = link
	log.Info().
		Int64("chat_id", sess.ChatID).
		Str("lead_id", lead.ID).
		Str("key", key).
		Int64("estimate", lead.Estimate).
		Msg("lead archived")
}
