package openai

import (
	"context"
	"strings"

	"github.com/johnschneiider/Noxus/internal/metrics"
	"github.com/johnschneiider/Noxus/internal/observability"

	"github.com/openai/openai-go"
	openaiOption "github.com/openai/openai-go/option"
)

// systemPrompt fixes the assistant persona: friendly, concise, Spanish-only,
// phone-register replies of two to three sentences.
const systemPrompt = "Eres un asistente virtual amigable y profesional que habla en español. " +
	"Responde de manera concisa y natural, como si estuvieras hablando por teléfono. " +
	"Mantén las respuestas breves (máximo 2-3 frases) y claras. Siempre responde en español."

// Fixed apology strings. The reply generator never surfaces an error to the
// protocol: the call must keep flowing, so failures degrade to these.
const (
	FallbackNotConfigured = "Lo siento, el servicio de IA no está configurado correctamente."
	FallbackRequestFailed = "Lo siento, hubo un error al procesar tu solicitud. Por favor, intenta de nuevo."
)

// maxHistoryMessages bounds the conversation window sent with each request.
const maxHistoryMessages = 5

const maxReplyTokens = 200

// ChatMessage is one prior conversation entry in provider role vocabulary.
type ChatMessage struct {
	Role    string
	Content string
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatClient produces assistant replies via the OpenAI chat-completion API.
type ChatClient struct {
	apiKey string
	model  string
	logger *observability.Logger
}

func NewChatClient(apiKey, model string, logger *observability.Logger) *ChatClient {
	return &ChatClient{
		apiKey: apiKey,
		model:  model,
		logger: logger,
	}
}

// GenerateReply returns the assistant's next utterance for the given user
// utterance and bounded history. It never returns an error: an unconfigured
// client or a failed request degrades to a fixed apology string.
func (c *ChatClient) GenerateReply(ctx context.Context, utterance string, history []ChatMessage) string {
	if c.apiKey == "" {
		c.logger.Warn(ctx, "OpenAI API key not set, returning fallback reply")
		metrics.DegradedReplies.Inc()
		return FallbackNotConfigured
	}

	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(systemPrompt))
	for _, m := range history {
		if m.Role == RoleAssistant {
			messages = append(messages, openai.AssistantMessage(m.Content))
		} else {
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage(utterance))

	client := openai.NewClient(openaiOption.WithAPIKey(c.apiKey))
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.model),
		Messages:    messages,
		MaxTokens:   openai.Int(maxReplyTokens),
		Temperature: openai.Float(0.7),
	})
	if err != nil {
		c.logger.Error(ctx, "Chat completion request failed", err)
		metrics.DegradedReplies.Inc()
		return FallbackRequestFailed
	}
	if len(resp.Choices) == 0 {
		c.logger.Warn(ctx, "Chat completion returned no choices")
		metrics.DegradedReplies.Inc()
		return FallbackRequestFailed
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
