// Package services – AdviceService
//
// This file implements AdviceService, the conversational side of the backend.
// Each chat turn validates the message, loads the session's recent history,
// asks the configured language model for a reply, and falls back to a canned
// gardening answer when the model is unreachable. When the user is asking for
// plant recommendations, the reply is scanned for catalog plants so the UI
// can render product-style cards, and a strip of recommended store products
// is attached.
//
// Observability: Chat is OpenTelemetry-instrumented; spans record the session
// identifier and whether the reply came from the model or the fallback.
package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/urbansprout/go-garden-backend/internal/ai"
	"github.com/urbansprout/go-garden-backend/internal/catalog"
	"github.com/urbansprout/go-garden-backend/internal/domain"
	"github.com/urbansprout/go-garden-backend/internal/repo"
	"github.com/urbansprout/go-garden-backend/internal/session"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Reply sources reported in ChatResult.Source.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// systemPrompt frames every model conversation. History and the new message
// are appended after it.
const systemPrompt = "You are UrbanSprout's gardening assistant. Give practical, " +
	"concise advice about growing plants at home: containers, balconies, small " +
	"gardens. When recommending plants, name specific varieties and mention how " +
	"long they take to grow. Keep answers under 120 words."

// fallbackReply is served when the model cannot be reached and the user asked
// a general question.
const fallbackReply = "I'm having trouble reaching my plant knowledge base right now. " +
	"Meanwhile: most kitchen herbs and salad greens want 4-6 hours of sun, " +
	"well-draining soil, and watering when the top inch of soil feels dry."

// fallbackRecommendation is served instead when the user asked for plant
// recommendations, and deliberately names catalog plants so mention
// extraction still yields cards.
const fallbackRecommendation = "I couldn't reach my plant knowledge base, but here are " +
	"reliable starters for most homes: Cherry Tomato (55-70 days), Lettuce " +
	"(30-45 days), Sweet Basil (25-35 days), and Fresh Mint (30-40 days). " +
	"All four are happy in containers."

// ChatResult is the outcome of one chat turn.
type ChatResult struct {
	// Reply is the assistant's answer text.
	Reply string
	// Source reports where the reply came from: "model" or "fallback".
	Source string
	// Plants are catalog plants mentioned in the reply, present only when the
	// message asked for recommendations.
	Plants []catalog.Plant
	// Products are recommended store items, present only alongside Plants.
	Products []domain.Product
}

// AdviceService runs chat turns against the model with session memory.
type AdviceService struct {
	// DB is the GORM handle used to look up recommended products.
	DB *gorm.DB
	// Generator produces model replies. A nil Generator always falls back.
	Generator ai.Generator
	// Sessions stores per-session conversation history.
	Sessions session.Store
	// Catalog backs plant mention extraction.
	Catalog *catalog.Catalog

	// MaxMessageRunes caps incoming messages by rune length. Zero disables
	// the cap.
	MaxMessageRunes int
	// MaxMentions caps extracted plant mentions per reply.
	MaxMentions int
	// MaxProducts caps the recommended product strip.
	MaxProducts int
}

// NewAdviceService constructs an AdviceService with default caps.
func NewAdviceService(db *gorm.DB, gen ai.Generator, store session.Store, c *catalog.Catalog) *AdviceService {
	return &AdviceService{
		DB:              db,
		Generator:       gen,
		Sessions:        store,
		Catalog:         c,
		MaxMessageRunes: 2000,
		MaxMentions:     4,
		MaxProducts:     4,
	}
}

// Chat runs one conversation turn for the session. The turn is appended to
// session history regardless of whether the reply came from the model or the
// fallback, so follow-up questions keep their context.
func (s *AdviceService) Chat(ctx context.Context, sessionID, message string) (*ChatResult, error) {
	tr := otel.Tracer("services/AdviceService")
	ctx, span := tr.Start(ctx, "Chat",
		trace.WithAttributes(attribute.String("session.id", sessionID)),
	)
	defer span.End()

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if s.MaxMessageRunes > 0 && utf8.RuneCountInString(message) > s.MaxMessageRunes {
		return nil, ErrMessageTooLong
	}

	wantsPlants := catalog.IsRecommendationRequest(message)
	span.SetAttributes(attribute.Bool("chat.recommendation_request", wantsPlants))

	history, err := s.Sessions.History(ctx, sessionID)
	if err != nil {
		// History is best-effort; a degraded session store should not take
		// the chat down.
		log.Warn().Err(err).Str("session_id", sessionID).Msg("session history unavailable")
		history = nil
	}

	reply, source := s.generate(ctx, history, message, wantsPlants)
	span.SetAttributes(attribute.String("chat.source", source))

	res := &ChatResult{Reply: reply, Source: source}
	if wantsPlants {
		res.Plants = s.Catalog.ExtractMentions(reply, s.MaxMentions)
		res.Products = s.recommendedProducts(ctx)
	}

	if aerr := s.Sessions.Append(ctx, sessionID,
		session.Turn{Role: session.RoleUser, Content: message},
		session.Turn{Role: session.RoleAssistant, Content: reply},
	); aerr != nil {
		log.Warn().Err(aerr).Str("session_id", sessionID).Msg("session append failed")
	}

	return res, nil
}

// generate asks the model for a reply, translating history into the wire
// message shape. Any model failure degrades to the canned fallback.
func (s *AdviceService) generate(ctx context.Context, history []session.Turn, message string, wantsPlants bool) (string, string) {
	if s.Generator == nil {
		return s.fallback(wantsPlants), SourceFallback
	}

	msgs := make([]ai.Message, 0, len(history)+2)
	msgs = append(msgs, ai.Message{Role: "system", Content: systemPrompt})
	for _, t := range history {
		msgs = append(msgs, ai.Message{Role: t.Role, Content: t.Content})
	}
	msgs = append(msgs, ai.Message{Role: session.RoleUser, Content: message})

	reply, err := s.Generator.Generate(ctx, msgs)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.Warn().Err(err).Msg("model generation failed, serving fallback")
		}
		return s.fallback(wantsPlants), SourceFallback
	}
	return strings.TrimSpace(reply), SourceModel
}

func (s *AdviceService) fallback(wantsPlants bool) string {
	if wantsPlants {
		return fallbackRecommendation
	}
	return fallbackReply
}

// recommendedProducts loads the store's recommended items, degrading to a
// small built-in pair when the database has none or is unavailable.
func (s *AdviceService) recommendedProducts(ctx context.Context) []domain.Product {
	if s.DB != nil {
		items, err := repo.ListRecommendedProducts(ctx, s.DB, s.MaxProducts)
		if err == nil && len(items) > 0 {
			return items
		}
		if err != nil {
			log.Warn().Err(err).Msg("recommended products lookup failed")
		}
	}
	return []domain.Product{
		{Name: "Organic Seed Starter Kit", Category: "kits", Price: 19.99, Recommended: true},
		{Name: "All-Purpose Potting Mix 20L", Category: "soil", Price: 9.99, Recommended: true},
	}
}
