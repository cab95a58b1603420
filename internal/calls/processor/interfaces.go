package processor

import (
	"context"

	openaiclient "github.com/johnschneiider/Noxus/internal/clients/openai"
	twilioclient "github.com/johnschneiider/Noxus/internal/clients/twilio"
	"github.com/johnschneiider/Noxus/internal/store"

	"github.com/google/uuid"
)

// Store defines the database operations required by CallProcessor
type Store interface {
	CreateCall(ctx context.Context, params store.CreateCallParams) (store.Call, error)
	GetCallBySID(ctx context.Context, sid string) (store.Call, error)
	GetCallByID(ctx context.Context, id uuid.UUID) (store.Call, error)
	GetMostRecentActiveCall(ctx context.Context) (store.Call, error)
	UpdateCallStatus(ctx context.Context, id uuid.UUID, estado string) error
	FinalizeCall(ctx context.Context, id uuid.UUID, params store.FinalizeCallParams) error
	ListRecentCalls(ctx context.Context, limit int) ([]store.Call, error)
	CreateTurn(ctx context.Context, llamadaID uuid.UUID, tipo, contenido string) (store.Turn, error)
	GetTurnsByCallID(ctx context.Context, llamadaID uuid.UUID) ([]store.Turn, error)
}

// CallPlacer defines the telephony operations required by CallProcessor
type CallPlacer interface {
	PlaceCall(ctx context.Context, numeroDestino, webhookURL string) (twilioclient.CallResult, error)
	PhoneNumber() string
}

// ReplyGenerator defines the chat-completion operations required by CallProcessor
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, utterance string, history []openaiclient.ChatMessage) string
}
