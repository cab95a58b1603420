package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	openaiclient "github.com/johnschneiider/Noxus/internal/clients/openai"
	"github.com/johnschneiider/Noxus/internal/metrics"
	"github.com/johnschneiider/Noxus/internal/observability"
	"github.com/johnschneiider/Noxus/internal/store"

	"github.com/google/uuid"
)

// ErrCallUnresolved means an utterance arrived but no Call record could be
// found or recovered to attach it to.
var ErrCallUnresolved = errors.New("could not resolve the call for this utterance")

// historyWindow bounds how many prior turns are forwarded to the reply
// generator.
const historyWindow = 5

// CallProcessor drives the conversation turn-taking protocol: it resolves
// which call a Twilio callback belongs to, records turns, asks the reply
// generator for the assistant's next utterance and produces the TwiML that
// tells Twilio what to speak and how long to listen.
type CallProcessor struct {
	store      Store
	placer     CallPlacer
	replies    ReplyGenerator
	webhookURL string
	logger     *observability.Logger
}

func New(store Store, placer CallPlacer, replies ReplyGenerator, webhookURL string,
	logger *observability.Logger) *CallProcessor {
	return &CallProcessor{
		store:      store,
		placer:     placer,
		replies:    replies,
		webhookURL: webhookURL,
		logger:     logger,
	}
}

// WebhookURL returns the turn callback URL registered with Twilio.
func (p *CallProcessor) WebhookURL() string {
	return p.webhookURL
}

// StartCallResult is what the operator gets back after initiating a call.
type StartCallResult struct {
	SID    string
	Status string
}

// StartCall places an outbound call and records it with estado "iniciada".
func (p *CallProcessor) StartCall(ctx context.Context, numeroDestino string) (StartCallResult, error) {
	result, err := p.placer.PlaceCall(ctx, numeroDestino, p.webhookURL)
	if err != nil {
		return StartCallResult{}, fmt.Errorf("failed to place call: %w", err)
	}

	_, err = p.store.CreateCall(ctx, store.CreateCallParams{
		SID:           result.SID,
		NumeroDestino: numeroDestino,
		NumeroOrigen:  p.placer.PhoneNumber(),
		Estado:        store.CallStatusIniciada,
	})
	if err != nil {
		return StartCallResult{}, fmt.Errorf("failed to record call: %w", err)
	}

	metrics.CallsInitiated.Inc()
	return StartCallResult{SID: result.SID, Status: result.Status}, nil
}

// TurnEvent is the payload of one turn callback, drawn from POST form or GET
// query parameters.
type TurnEvent struct {
	CallSID      string
	CallStatus   string
	SpeechResult string
	Digits       string
	From         string
	To           string
	RemoteAddr   string
}

// HandleTurn runs one protocol step and returns the TwiML document for
// Twilio. On error the caller converts to the terminal apology document; a
// non-nil error is never paired with a usable document.
func (p *CallProcessor) HandleTurn(ctx context.Context, event TurnEvent) (string, error) {
	call := p.resolveCall(ctx, event)

	if call != nil {
		ctx = observability.WithFields(ctx, observability.Field{Key: "call_sid", Value: call.SID})
	}

	if call != nil && event.CallStatus != "" {
		estado := MapCallbackStatus(event.CallStatus)
		if err := p.store.UpdateCallStatus(ctx, call.ID, estado); err != nil {
			return "", fmt.Errorf("failed to advance call status: %w", err)
		}
	}

	speech := strings.TrimSpace(event.SpeechResult)
	if speech == "" {
		// First turn, or the listen window elapsed with no input.
		doc, err := greetingDocument(p.webhookURL)
		if err != nil {
			return "", fmt.Errorf("failed to render greeting document: %w", err)
		}
		metrics.WebhookTurns.WithLabelValues("greeting").Inc()
		return doc, nil
	}

	if call == nil {
		// Last-resort recovery before giving up on the utterance.
		recovered, err := p.store.GetMostRecentActiveCall(ctx)
		if err != nil {
			p.logger.Error(ctx, "Utterance received but no call could be resolved", err)
			return "", ErrCallUnresolved
		}
		metrics.FallbackResolutions.Inc()
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "call_sid", Value: recovered.SID},
		), "Attributed utterance to most recent active call; CallSid was missing")
		call = &recovered
	}

	// History is read before the new turn is persisted so it holds exactly
	// the prior turns.
	prior, err := p.store.GetTurnsByCallID(ctx, call.ID)
	if err != nil {
		return "", fmt.Errorf("failed to load conversation history: %w", err)
	}

	if _, err := p.store.CreateTurn(ctx, call.ID, store.TurnSpeakerUsuario, speech); err != nil {
		return "", fmt.Errorf("failed to record user turn: %w", err)
	}

	history := historyFromTurns(prior)
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	reply := p.replies.GenerateReply(ctx, speech, history)

	if _, err := p.store.CreateTurn(ctx, call.ID, store.TurnSpeakerIA, reply); err != nil {
		return "", fmt.Errorf("failed to record assistant turn: %w", err)
	}

	doc, err := replyDocument(reply, p.webhookURL)
	if err != nil {
		return "", fmt.Errorf("failed to render reply document: %w", err)
	}
	metrics.WebhookTurns.WithLabelValues("reply").Inc()
	return doc, nil
}

// resolveCall finds the Call a callback belongs to. Preference order: the
// provider SID, then the most recent active call, then lazy creation when the
// event carries identifying numbers. Returns nil when nothing worked; the
// greeting path tolerates that.
func (p *CallProcessor) resolveCall(ctx context.Context, event TurnEvent) *store.Call {
	if event.CallSID != "" {
		call, err := p.store.GetCallBySID(ctx, event.CallSID)
		if err == nil {
			return &call
		}
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "Call lookup by SID failed", err)
			return nil
		}
	} else {
		call, err := p.store.GetMostRecentActiveCall(ctx)
		if err == nil {
			metrics.FallbackResolutions.Inc()
			p.logger.Warn(observability.WithFields(ctx,
				observability.Field{Key: "call_sid", Value: call.SID},
			), "Callback without CallSid resolved to most recent active call")
			return &call
		}
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "Most-recent-active lookup failed", err)
			return nil
		}
	}

	if event.CallSID == "" && event.To == "" {
		return nil
	}

	sid := event.CallSID
	if sid == "" {
		sid = synthesizeSID(event.RemoteAddr)
	}
	call, err := p.store.CreateCall(ctx, store.CreateCallParams{
		SID:           sid,
		NumeroDestino: event.To,
		NumeroOrigen:  event.From,
		Estado:        store.CallStatusIniciada,
	})
	if err != nil {
		p.logger.Error(ctx, "Failed to lazily create call from callback", err)
		return nil
	}
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "call_sid", Value: call.SID},
	), "Created call record from callback")
	return &call
}

// synthesizeSID builds a placeholder identifier for calls Twilio never named.
func synthesizeSID(remoteAddr string) string {
	if remoteAddr == "" {
		return "TEMP_" + uuid.New().String()
	}
	return "TEMP_" + remoteAddr
}

// HandleStatus applies the terminal status callback: it sets the final
// estado and duration and assembles the persisted transcript. Unlike the
// turn callback, an unknown SID is an error here.
func (p *CallProcessor) HandleStatus(ctx context.Context, callSID, callStatus, callDuration string) error {
	call, err := p.store.GetCallBySID(ctx, callSID)
	if err != nil {
		return err
	}

	estado := MapTerminalStatus(callStatus)

	duracion := 0
	if callDuration != "" {
		if parsed, err := strconv.Atoi(callDuration); err == nil {
			duracion = parsed
		}
	}

	turns, err := p.store.GetTurnsByCallID(ctx, call.ID)
	if err != nil {
		return fmt.Errorf("failed to load turns for transcript: %w", err)
	}

	err = p.store.FinalizeCall(ctx, call.ID, store.FinalizeCallParams{
		Estado:        estado,
		Duracion:      duracion,
		Transcripcion: BuildTranscript(turns),
	})
	if err != nil {
		return err
	}

	finalEstado := call.Estado
	if estado != nil {
		finalEstado = *estado
	}
	metrics.CallsFinalized.WithLabelValues(finalEstado).Inc()
	return nil
}

// recentCallsLimit caps the dashboard listing.
const recentCallsLimit = 10

// GetCallDetail returns one call with its conversation turns.
func (p *CallProcessor) GetCallDetail(ctx context.Context, id uuid.UUID) (store.Call, []store.Turn, error) {
	call, err := p.store.GetCallByID(ctx, id)
	if err != nil {
		return store.Call{}, nil, err
	}
	turns, err := p.store.GetTurnsByCallID(ctx, call.ID)
	if err != nil {
		return store.Call{}, nil, err
	}
	return call, turns, nil
}

// RecentCalls returns the most recently created calls, newest first.
func (p *CallProcessor) RecentCalls(ctx context.Context) ([]store.Call, error) {
	return p.store.ListRecentCalls(ctx, recentCallsLimit)
}

// MapCallbackStatus maps a Twilio lifecycle status onto the persisted
// vocabulary. Unrecognized statuses default to en_progreso.
func MapCallbackStatus(callStatus string) string {
	switch callStatus {
	case "ringing":
		return store.CallStatusIniciada
	case "in-progress":
		return store.CallStatusEnProgreso
	case "completed":
		return store.CallStatusCompletada
	case "failed", "busy", "no-answer":
		return store.CallStatusFallida
	case "canceled":
		return store.CallStatusCancelada
	default:
		return store.CallStatusEnProgreso
	}
}

// MapTerminalStatus maps terminal Twilio statuses; nil means the status is
// outside the terminal vocabulary and the stored estado must be retained.
func MapTerminalStatus(callStatus string) *string {
	var estado string
	switch callStatus {
	case "completed":
		estado = store.CallStatusCompletada
	case "failed", "busy", "no-answer":
		estado = store.CallStatusFallida
	case "canceled":
		estado = store.CallStatusCancelada
	default:
		return nil
	}
	return &estado
}

// Display labels used in the persisted transcript.
const (
	labelUsuario = "Usuario"
	labelIA      = "IA"
)

// BuildTranscript renders the turns in creation order as "<label>: <text>"
// lines.
func BuildTranscript(turns []store.Turn) string {
	lines := make([]string, 0, len(turns))
	for _, turn := range turns {
		label := labelIA
		if turn.Tipo == store.TurnSpeakerUsuario {
			label = labelUsuario
		}
		lines = append(lines, label+": "+turn.Contenido)
	}
	return strings.Join(lines, "\n")
}

// historyFromTurns maps persisted turns to provider role vocabulary.
func historyFromTurns(turns []store.Turn) []openaiclient.ChatMessage {
	history := make([]openaiclient.ChatMessage, 0, len(turns))
	for _, turn := range turns {
		role := openaiclient.RoleAssistant
		if turn.Tipo == store.TurnSpeakerUsuario {
			role = openaiclient.RoleUser
		}
		history = append(history, openaiclient.ChatMessage{Role: role, Content: turn.Contenido})
	}
	return history
}
