package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/johnschneiider/Noxus/internal/apierrors"
	"github.com/johnschneiider/Noxus/internal/calls/processor"
	"github.com/johnschneiider/Noxus/internal/metrics"
	"github.com/johnschneiider/Noxus/internal/observability"
	"github.com/johnschneiider/Noxus/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const twimlContentType = "text/xml; charset=utf-8"

type Handler struct {
	processor *processor.CallProcessor
	logger    *observability.Logger
}

func New(callProcessor *processor.CallProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: callProcessor,
		logger:    logger,
	}
}

// HandleStartCall initiates an outbound call from the form field
// numero_destino.
func (h Handler) HandleStartCall(c *gin.Context) {
	ctx := c.Request.Context()

	numeroDestino := strings.TrimSpace(c.PostForm("numero_destino"))
	if numeroDestino == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Número de destino requerido"})
		return
	}

	result, err := h.processor.StartCall(ctx, numeroDestino)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"llamada_sid": result.SID,
		"estado":      result.Status,
		"mensaje":     "Llamada iniciada correctamente",
	})
}

// HandleWebhook is the turn callback Twilio invokes once per utterance (and
// once when the call is answered). Whatever happens inside, the response is
// a valid TwiML document: a malformed or non-200 response would leave the
// live call in an undefined state.
func (h Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	event := processor.TurnEvent{
		CallSID:      formOrQuery(c, "CallSid"),
		CallStatus:   formOrQuery(c, "CallStatus"),
		SpeechResult: formOrQuery(c, "SpeechResult"),
		Digits:       formOrQuery(c, "Digits"),
		From:         formOrQuery(c, "From"),
		To:           formOrQuery(c, "To"),
		RemoteAddr:   c.ClientIP(),
	}

	doc, err := h.processor.HandleTurn(ctx, event)
	if err != nil {
		h.logger.Error(ctx, "Turn handling failed, responding with apology document", err)
		metrics.WebhookTurns.WithLabelValues("error").Inc()
		doc = processor.ApologyDocument()
	}

	c.Header("Content-Type", twimlContentType)
	c.String(http.StatusOK, doc)
}

// HandleWebhookTest returns a static diagnostic document that always hangs up.
func (h Handler) HandleWebhookTest(c *gin.Context) {
	c.Header("Content-Type", twimlContentType)
	c.String(http.StatusOK, processor.TestDocument())
}

// HandleWebhookStatus is the terminal-status callback. Plain-text responses
// per the provider contract.
func (h Handler) HandleWebhookStatus(c *gin.Context) {
	ctx := c.Request.Context()

	callSID := c.PostForm("CallSid")
	callStatus := c.PostForm("CallStatus")
	callDuration := c.DefaultPostForm("CallDuration", "0")

	err := h.processor.HandleStatus(ctx, callSID, callStatus, callDuration)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.String(http.StatusNotFound, "Llamada no encontrada")
			return
		}
		h.logger.Error(ctx, "Status callback handling failed", err)
		c.String(http.StatusInternalServerError, "Error: %s", err.Error())
		return
	}

	c.String(http.StatusOK, "OK")
}

// HandleGetCall renders one call with its turns; unknown or malformed ids
// redirect to the listing.
func (h Handler) HandleGetCall(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	call, turns, err := h.processor.GetCallDetail(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"llamada":  callResponseFrom(call),
		"mensajes": turnResponsesFrom(turns),
	})
}

// HandleListCalls renders the 10 most recently created calls.
func (h Handler) HandleListCalls(c *gin.Context) {
	ctx := c.Request.Context()

	calls, err := h.processor.RecentCalls(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	responses := make([]callResponse, 0, len(calls))
	for _, call := range calls {
		responses = append(responses, callResponseFrom(call))
	}
	c.JSON(http.StatusOK, gin.H{"llamadas": responses})
}

// formOrQuery reads a parameter from POST form or GET query; Twilio uses both.
func formOrQuery(c *gin.Context, key string) string {
	if v := c.PostForm(key); v != "" {
		return v
	}
	return c.Query(key)
}

type callResponse struct {
	ID            uuid.UUID  `json:"id"`
	SID           string     `json:"sid"`
	NumeroDestino string     `json:"numero_destino"`
	NumeroOrigen  string     `json:"numero_origen"`
	Estado        string     `json:"estado"`
	Duracion      int        `json:"duracion"`
	FechaCreacion time.Time  `json:"fecha_creacion"`
	FechaInicio   *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin      *time.Time `json:"fecha_fin,omitempty"`
	Transcripcion string     `json:"transcripcion"`
	Notas         string     `json:"notas"`
}

type turnResponse struct {
	ID        uuid.UUID `json:"id"`
	Tipo      string    `json:"tipo"`
	Contenido string    `json:"contenido"`
	Timestamp time.Time `json:"timestamp"`
}

func callResponseFrom(call store.Call) callResponse {
	return callResponse{
		ID:            call.ID,
		SID:           call.SID,
		NumeroDestino: call.NumeroDestino,
		NumeroOrigen:  call.NumeroOrigen,
		Estado:        call.Estado,
		Duracion:      call.Duracion,
		FechaCreacion: call.FechaCreacion,
		FechaInicio:   nullableTime(call.FechaInicio),
		FechaFin:      nullableTime(call.FechaFin),
		Transcripcion: call.Transcripcion,
		Notas:         call.Notas,
	}
}

func turnResponsesFrom(turns []store.Turn) []turnResponse {
	responses := make([]turnResponse, 0, len(turns))
	for _, turn := range turns {
		responses = append(responses, turnResponse{
			ID:        turn.ID,
			Tipo:      turn.Tipo,
			Contenido: turn.Contenido,
			Timestamp: turn.Timestamp,
		})
	}
	return responses
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
