package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Neeraj-Gupta12/PropBot/internal/catalog"
	"github.com/Neeraj-Gupta12/PropBot/internal/engine"
	"github.com/Neeraj-Gupta12/PropBot/internal/model"
	"github.com/Neeraj-Gupta12/PropBot/internal/nlp"
)

// ChatService answers chatbot messages: the interpreter classifies the text,
// query intents run through the same filter engine as every other entry
// point, and the reply copy phrases the extracted preferences back to the
// user.
type ChatService struct {
	store  *catalog.Store
	interp *nlp.Interpreter
	logger QueryLogger // optional
}

// NewChatService creates a chat service. logger may be nil.
func NewChatService(store *catalog.Store, interp *nlp.Interpreter, logger QueryLogger) *ChatService {
	return &ChatService{
		store:  store,
		interp: interp,
		logger: logger,
	}
}

// Respond interprets one message and returns the bot reply with matched
// properties (possibly empty, never nil). Blank input returns
// nlp.ErrInvalidInput.
func (s *ChatService) Respond(ctx context.Context, message string) (*model.ChatResponse, error) {
	intent, err := s.interp.Interpret(message)
	if err != nil {
		return nil, err
	}

	resp := &model.ChatResponse{Properties: []model.Property{}}

	switch intent.Kind {
	case model.IntentGreeting:
		if intent.Name != "" {
			resp.Message = fmt.Sprintf("Hello %s, I'm PropBot, your professional property assistant. How can I help you today?", capitalize(intent.Name))
		} else {
			resp.Message = "Hello! I'm PropBot, your professional property assistant. How can I help you today?"
		}
	case model.IntentIdentity:
		resp.Message = "I am PropBot, your professional property assistant developed by agent Mira. I can help you find properties based on your preferences."
	case model.IntentThanks:
		resp.Message = "You're welcome! Let me know if you need anything else."
	case model.IntentFarewell:
		resp.Message = "Goodbye! Have a great day!"
	case model.IntentHelp:
		resp.Message = "You can ask me to find properties by location, price, amenities, or any feature you want!"
	case model.IntentQuery:
		s.answerQuery(intent, message, resp)
	}

	if s.logger != nil {
		count := len(resp.Properties)
		go func() {
			_ = s.logger.LogChat(context.Background(), uuid.NewString(), message, intent.Kind, count)
		}()
	}

	return resp, nil
}

func (s *ChatService) answerQuery(intent *model.Intent, message string, resp *model.ChatResponse) {
	snap := s.store.Snapshot()

	if intent.KeywordScan {
		resp.Properties = engine.KeywordScan(snap, message)
		if len(resp.Properties) > 0 {
			resp.Message = "Here are some properties matching your query."
		} else {
			resp.Message = "Sorry, I couldn't find any properties matching your request. Please try different keywords."
		}
		return
	}

	resp.Properties = engine.Filter(snap, intent.Spec)
	resp.Message = preferenceMessage(intent)
}

// preferenceMessage phrases the extracted preferences back to the user, in
// the same shape as the original bot copy.
func preferenceMessage(intent *model.Intent) string {
	var b strings.Builder
	b.WriteString("Here are some properties matching your preferences")
	if intent.Location != "" {
		b.WriteString(" in " + intent.Location)
	}
	if intent.Bedrooms != nil {
		b.WriteString(fmt.Sprintf(" with %d bedrooms", *intent.Bedrooms))
	}
	if intent.Budget != nil {
		b.WriteString(" under $" + strconv.FormatFloat(*intent.Budget, 'f', -1, 64))
	}
	b.WriteString(".")
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
