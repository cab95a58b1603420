package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Turn speaker vocabulary, persisted as-is.
const (
	TurnSpeakerUsuario = "usuario"
	TurnSpeakerIA      = "ia"
)

// Turn is one utterance within a call's conversation. Append-only; ordering
// is by the insert timestamp.
type Turn struct {
	ID        uuid.UUID `db:"id"`
	LlamadaID uuid.UUID `db:"llamada_id"`
	Tipo      string    `db:"tipo"`
	Contenido string    `db:"contenido"`
	Timestamp time.Time `db:"timestamp"`
}

const sqlCreateTurn = `
INSERT INTO mensajes_conversacion (llamada_id, tipo, contenido)
VALUES ($1, $2, $3)
RETURNING id, llamada_id, tipo, contenido, timestamp`

func (s *Store) CreateTurn(ctx context.Context, llamadaID uuid.UUID, tipo, contenido string) (Turn, error) {
	var turn Turn
	err := s.db.GetContext(ctx, &turn, sqlCreateTurn, llamadaID, tipo, contenido)
	if err != nil {
		s.logger.Error(ctx, "failed to create turn", err)
		return Turn{}, fmt.Errorf("failed to create turn: %w", err)
	}
	return turn, nil
}

const sqlGetTurnsByCallID = `
SELECT * FROM mensajes_conversacion WHERE llamada_id = $1 ORDER BY timestamp ASC`

func (s *Store) GetTurnsByCallID(ctx context.Context, llamadaID uuid.UUID) ([]Turn, error) {
	var turns []Turn
	err := s.db.SelectContext(ctx, &turns, sqlGetTurnsByCallID, llamadaID)
	if err != nil {
		s.logger.Error(ctx, "failed to get turns by call ID", err)
		return nil, fmt.Errorf("failed to get turns by call ID: %w", err)
	}
	return turns, nil
}
