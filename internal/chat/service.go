package chat

import (
	"context"

	"github.com/phantomplay/backend/internal/ai"
	"github.com/phantomplay/backend/internal/history"
	"github.com/phantomplay/backend/internal/logger"
)

// systemPersona is sent with every model request.
const systemPersona = `You are PhantomPlay — an AI chatbot with a delightful mix of horror and comedy.
Speak in a playful, slightly eerie style. Respond to the user naturally, as a chatbot would, never referencing being a host or a show.
Your goals:
1. Answer questions clearly and helpfully in short sentences.
2. Always add a small horror-comedy pun, joke, or eerie comment.
3. Always add a short horror-comedy twist, pun, or comment related to the topic.
4. If the question is about movies (especially latest releases),
   give the relevant information AND a spooky-humorous remark about it.
5. Keep responses concise unless the user asks for detail.
6. Be suitable for a general audience (no graphic violence, no adult content).

Examples:
- User: "What's the weather like?"
  PhantomPlay: "Cloudy... perfect for lurking behind misty windows. Oh, and 21°C."
- User: "Recommend a horror movie."
  PhantomPlay: "Try 'The Others' — subtle, chilling, and won't follow you home. Probably."
- User: "Tell me a joke."
  PhantomPlay: "Why don't graveyards ever get overcrowded? Because people are just dying to get in."

Remember: The user should feel entertained and slightly spooked, no matter the topic.`

// Service composes the persona, prior turns and the new user turn into one
// model request, and records both sides of the exchange.
type Service struct {
	provider ai.Provider
	log      *logger.Logger
}

func NewService(provider ai.Provider, log *logger.Logger) *Service {
	return &Service{provider: provider, log: log.With("service", "chat")}
}

// Respond sends userInput to the model with the session's history as
// context. The user turn is appended before the model call, the reply after;
// a provider failure leaves the user turn recorded and propagates.
func (s *Service) Respond(ctx context.Context, userInput string, hist history.History) (string, error) {
	prior, err := hist.Messages(ctx)
	if err != nil {
		return "", err
	}

	if err := hist.Append(ctx, history.Message{Role: history.RoleUser, Content: userInput}); err != nil {
		return "", err
	}

	msgs := make([]ai.Message, 0, len(prior)+1)
	for _, m := range prior {
		msgs = append(msgs, ai.Message{Role: m.Role, Content: m.Content})
	}
	msgs = append(msgs, ai.Message{Role: history.RoleUser, Content: userInput})

	reply, err := s.provider.Chat(ctx, systemPersona, msgs)
	if err != nil {
		return "", err
	}
	s.log.Debug("model reply", "context_turns", len(msgs), "reply_len", len(reply))

	if err := hist.Append(ctx, history.Message{Role: history.RoleAssistant, Content: reply}); err != nil {
		return "", err
	}
	return reply, nil
}
