package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Call status vocabulary. These tokens are persisted and exposed over the
// API, so they must not change.
const (
	CallStatusIniciada   = "iniciada"
	CallStatusEnProgreso = "en_progreso"
	CallStatusCompletada = "completada"
	CallStatusFallida    = "fallida"
	CallStatusCancelada  = "cancelada"
)

// Call is one outbound telephony session, keyed by the Twilio-assigned SID.
type Call struct {
	ID            uuid.UUID    `db:"id"`
	SID           string       `db:"sid"`
	NumeroDestino string       `db:"numero_destino"`
	NumeroOrigen  string       `db:"numero_origen"`
	Estado        string       `db:"estado"`
	Duracion      int          `db:"duracion"`
	FechaCreacion time.Time    `db:"fecha_creacion"`
	FechaInicio   sql.NullTime `db:"fecha_inicio"`
	FechaFin      sql.NullTime `db:"fecha_fin"`
	Transcripcion string       `db:"transcripcion"`
	Notas         string       `db:"notas"`
}

// CreateCallParams holds the fields required to create a Call
type CreateCallParams struct {
	SID           string
	NumeroDestino string
	NumeroOrigen  string
	Estado        string
}

const sqlCreateCall = `
INSERT INTO llamadas (sid, numero_destino, numero_origen, estado)
VALUES ($1, $2, $3, $4)
RETURNING id, sid, numero_destino, numero_origen, estado, duracion,
          fecha_creacion, fecha_inicio, fecha_fin, transcripcion, notas`

func (s *Store) CreateCall(ctx context.Context, params CreateCallParams) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlCreateCall,
		params.SID, params.NumeroDestino, params.NumeroOrigen, params.Estado)
	if err != nil {
		s.logger.Error(ctx, "failed to create call", err)
		return Call{}, fmt.Errorf("failed to create call: %w", err)
	}
	return call, nil
}

const sqlGetCallBySID = `
SELECT * FROM llamadas WHERE sid = $1`

func (s *Store) GetCallBySID(ctx context.Context, sid string) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlGetCallBySID, sid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Call{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get call by SID", err)
		return Call{}, fmt.Errorf("failed to get call by SID: %w", err)
	}
	return call, nil
}

const sqlGetCallByID = `
SELECT * FROM llamadas WHERE id = $1`

func (s *Store) GetCallByID(ctx context.Context, id uuid.UUID) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlGetCallByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Call{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get call by ID", err)
		return Call{}, fmt.Errorf("failed to get call by ID: %w", err)
	}
	return call, nil
}

const sqlGetMostRecentActiveCall = `
SELECT * FROM llamadas
WHERE estado IN ($1, $2)
ORDER BY fecha_creacion DESC
LIMIT 1`

// GetMostRecentActiveCall returns the newest call still in an active status.
// Used as a last-resort correlation when Twilio omits the CallSid.
func (s *Store) GetMostRecentActiveCall(ctx context.Context) (Call, error) {
	var call Call
	err := s.db.GetContext(ctx, &call, sqlGetMostRecentActiveCall,
		CallStatusIniciada, CallStatusEnProgreso)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Call{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get most recent active call", err)
		return Call{}, fmt.Errorf("failed to get most recent active call: %w", err)
	}
	return call, nil
}

const sqlUpdateCallStatus = `
UPDATE llamadas
SET estado = $1,
    fecha_inicio = CASE WHEN $1 = 'en_progreso'
                        THEN COALESCE(fecha_inicio, now())
                        ELSE fecha_inicio END
WHERE id = $2`

func (s *Store) UpdateCallStatus(ctx context.Context, id uuid.UUID, estado string) error {
	result, err := s.db.ExecContext(ctx, sqlUpdateCallStatus, estado, id)
	if err != nil {
		s.logger.Error(ctx, "failed to update call status", err)
		return fmt.Errorf("failed to update call status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// FinalizeCallParams holds the terminal fields written by the status callback.
// Estado is nil when Twilio reported a status outside the terminal vocabulary,
// in which case the previous status is retained.
type FinalizeCallParams struct {
	Estado        *string
	Duracion      int
	Transcripcion string
}

const sqlFinalizeCall = `
UPDATE llamadas
SET estado        = COALESCE($1, estado),
    duracion      = $2,
    transcripcion = $3,
    fecha_fin     = CASE WHEN $1 IS NOT NULL
                         THEN COALESCE(fecha_fin, now())
                         ELSE fecha_fin END
WHERE id = $4`

func (s *Store) FinalizeCall(ctx context.Context, id uuid.UUID, params FinalizeCallParams) error {
	result, err := s.db.ExecContext(ctx, sqlFinalizeCall,
		params.Estado, params.Duracion, params.Transcripcion, id)
	if err != nil {
		s.logger.Error(ctx, "failed to finalize call", err)
		return fmt.Errorf("failed to finalize call: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		s.logger.Error(ctx, "failed to get rows affected", err)
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

const sqlListRecentCalls = `
SELECT * FROM llamadas
ORDER BY fecha_creacion DESC
LIMIT $1`

func (s *Store) ListRecentCalls(ctx context.Context, limit int) ([]Call, error) {
	var calls []Call
	err := s.db.SelectContext(ctx, &calls, sqlListRecentCalls, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list recent calls", err)
		return nil, fmt.Errorf("failed to list recent calls: %w", err)
	}
	return calls, nil
}
