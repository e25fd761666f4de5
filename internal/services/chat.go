package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/platform/openai"
	"github.com/mafqoodat/mafqoodat-backend/internal/repos"
	"github.com/mafqoodat/mafqoodat-backend/internal/search"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

// ChatMessage is one role-tagged turn of the conversation history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TurnResult is the assistant's answer to one conversational turn: the
// reply text plus any tool results the front-end renders as cards.
type TurnResult struct {
	Reply    string             `json:"reply"`
	Action   string             `json:"action"`
	Language string             `json:"language"`
	Results  []types.RankedItem `json:"results,omitempty"`
	Item     *types.RankedItem  `json:"item,omitempty"`
}

type ChatService interface {
	Turn(ctx context.Context, messages []ChatMessage) (TurnResult, error)
}

type chatService struct {
	log             *logger.Logger
	model           openai.Client
	resolver        *search.Resolver
	items           repos.ItemRepo
	storeConfigured bool
}

// NewChatService wires the conversational path. model may be nil (no API
// key): every turn then goes through the deterministic rule-based route.
// resolver must be configured with the chat policy (city required, cap 5).
func NewChatService(baseLog *logger.Logger, model openai.Client, resolver *search.Resolver, items repos.ItemRepo, storeConfigured bool) ChatService {
	return &chatService{
		log:             baseLog.With("service", "ChatService"),
		model:           model,
		resolver:        resolver,
		items:           items,
		storeConfigured: storeConfigured,
	}
}

// routeDecision is the structured routing verdict the model returns: which
// tool to invoke, if any, plus extracted arguments.
type routeDecision struct {
	Action string         `json:"action"`
	Args   search.ToolArgs `json:"args"`
	ItemID int64          `json:"item_id"`
	Reply  string         `json:"reply"`
}

const chatToolLimit = 5

func (s *chatService) Turn(ctx context.Context, messages []ChatMessage) (TurnResult, error) {
	text := lastUserMessage(messages)
	lang := detectLanguage(text)

	if strings.TrimSpace(text) == "" || strings.TrimSpace(text) == "." {
		return TurnResult{Reply: canned(lang, "smalltalk"), Action: "none", Language: lang}, nil
	}

	if s.model == nil {
		return s.ruleTurn(ctx, text, lang)
	}

	decision, err := s.route(ctx, text, lang)
	if err != nil {
		s.log.Warn("model routing failed, degrading to rule-based turn", "error", err)
		return s.ruleTurn(ctx, text, lang)
	}

	switch decision.Action {
	case "item_lookup":
		return s.itemLookupTurn(ctx, text, lang, decision.ItemID)
	case "search":
		return s.searchTurn(ctx, text, lang, decision.Args)
	default:
		reply := strings.TrimSpace(decision.Reply)
		if reply == "" {
			reply = s.phrase(ctx, lang, text, canned(lang, "smalltalk"), nil)
		}
		return TurnResult{Reply: reply, Action: "none", Language: lang}, nil
	}
}

// route asks the model for a structured tool decision, constrained by a
// strict schema so the answer always decodes.
func (s *chatService) route(ctx context.Context, text, lang string) (routeDecision, error) {
	system := strings.Join([]string{
		"You route user messages for a lost-and-found search assistant.",
		"Choose one action:",
		"- search: the user describes a lost or found object (even just an item name)",
		"- item_lookup: the user references a listing by number (\"item 123\", \"رقم 123\", \"#123\")",
		"- none: greetings, thanks, empty or off-topic messages",
		"For search, extract item, brand, color and city into args when present.",
		"For item_lookup, put the number into item_id.",
		"For none, write a short reply in the user's language (" + lang + ").",
		"Return ONLY JSON matching the schema.",
	}, "\n")

	schema := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"action": map[string]any{
				"type": "string",
				"enum": []any{"search", "item_lookup", "none"},
			},
			"args": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"item":  map[string]any{"type": "string"},
					"brand": map[string]any{"type": "string"},
					"color": map[string]any{"type": "string"},
					"city":  map[string]any{"type": "string"},
				},
				"required": []any{"item", "brand", "color", "city"},
			},
			"item_id": map[string]any{"type": "integer"},
			"reply":   map[string]any{"type": "string"},
		},
		"required": []any{"action", "args", "item_id", "reply"},
	}

	obj, err := s.model.GenerateJSON(ctx, system, text, "chat_route_v1", schema)
	if err != nil {
		return routeDecision{}, err
	}
	var out routeDecision
	b, _ := json.Marshal(obj)
	_ = json.Unmarshal(b, &out)
	out.Action = strings.TrimSpace(strings.ToLower(out.Action))
	return out, nil
}

// ruleTurn is the deterministic fallback: id references go to the lookup
// path, everything else through the resolver, with canned phrasing.
func (s *chatService) ruleTurn(ctx context.Context, text, lang string) (TurnResult, error) {
	if id, ok := search.ExtractItemID(text); ok {
		return s.itemLookupTurn(ctx, text, lang, id)
	}
	return s.searchTurn(ctx, text, lang, search.ToolArgs{})
}

func (s *chatService) itemLookupTurn(ctx context.Context, text, lang string, id int64) (TurnResult, error) {
	if id <= 0 {
		if extracted, ok := search.ExtractItemID(text); ok {
			id = extracted
		}
	}
	if id <= 0 {
		return TurnResult{Reply: canned(lang, "ask_details"), Action: "item_lookup", Language: lang}, nil
	}
	if !s.storeConfigured || s.items == nil {
		return TurnResult{Reply: canned(lang, "unavailable"), Action: "item_lookup", Language: lang}, nil
	}

	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return TurnResult{Reply: canned(lang, "item_missing"), Action: "item_lookup", Language: lang}, nil
		}
		s.log.Error("item lookup failed", "error", err, "item_id", id)
		return TurnResult{Reply: canned(lang, "unavailable"), Action: "item_lookup", Language: lang}, nil
	}

	reply := s.phrase(ctx, lang, text, canned(lang, "item_found"), []types.RankedItem{*item})
	return TurnResult{Reply: reply, Action: "item_lookup", Language: lang, Item: item}, nil
}

func (s *chatService) searchTurn(ctx context.Context, text, lang string, args search.ToolArgs) (TurnResult, error) {
	if !s.storeConfigured || s.resolver == nil {
		return TurnResult{Reply: canned(lang, "unavailable"), Action: "search", Language: lang}, nil
	}

	outcome, err := s.resolver.Resolve(ctx, search.Request{
		Utterance: text,
		Args:      args,
		Limit:     chatToolLimit,
	})
	if err != nil {
		return TurnResult{Reply: canned(lang, "unavailable"), Action: "search", Language: lang}, nil
	}

	switch outcome.Kind {
	case search.OutcomeMissingCity:
		return TurnResult{Reply: canned(lang, "ask_city"), Action: "search", Language: lang}, nil
	case search.OutcomeMissingKeywords:
		return TurnResult{Reply: canned(lang, "ask_details"), Action: "search", Language: lang}, nil
	case search.OutcomeNoMatches:
		reply := s.phrase(ctx, lang, text, canned(lang, "no_matches"), nil)
		if !strings.Contains(reply, "action:create_ad") {
			reply = canned(lang, "no_matches")
		}
		return TurnResult{Reply: reply, Action: "search", Language: lang}, nil
	default:
		reply := s.phrase(ctx, lang, text, canned(lang, "matches"), outcome.Items)
		return TurnResult{Reply: reply, Action: "search", Language: lang, Results: outcome.Items}, nil
	}
}

// phrase lets the model word the reply around the tool results; the canned
// text is both the fallback and the behavior contract it should follow.
func (s *chatService) phrase(ctx context.Context, lang, userText, fallback string, results []types.RankedItem) string {
	if s.model == nil {
		return fallback
	}
	var b strings.Builder
	b.WriteString("USER_MESSAGE:\n" + userText + "\n\n")
	if results != nil {
		raw, err := json.Marshal(results)
		if err == nil {
			b.WriteString("TOOL_RESULTS:\n" + string(raw) + "\n")
		}
	} else {
		b.WriteString("TOOL_RESULTS:\nnone\n")
	}
	reply, err := s.model.GenerateText(ctx, assistantSystemPrompts[lang], b.String())
	if err != nil || strings.TrimSpace(reply) == "" {
		s.log.Warn("model phrasing failed, using canned reply", "error", err)
		return fallback
	}
	return reply
}

func lastUserMessage(messages []ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}
