package apierrors

import (
	"errors"

	twilioclient "github.com/johnschneiider/Noxus/internal/clients/twilio"
	"github.com/johnschneiider/Noxus/internal/store"
)

// MapError converts domain errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	case errors.Is(err, twilioclient.ErrNotConfigured):
		return ConfigurationError("Twilio no está configurado", err)

	case errors.Is(err, twilioclient.ErrInsecureWebhookURL):
		return BadRequest(CodeConfigurationError,
			"BASE_URL debe ser una URL pública HTTPS. Twilio requiere una URL accesible públicamente para los webhooks.")

	case errors.Is(err, twilioclient.ErrCallRejected):
		return &APIError{
			StatusCode: 500,
			Code:       CodeProviderRejected,
			Message:    "Error de Twilio al crear la llamada. Verifica que el número de destino sea válido y esté verificado en tu cuenta de Twilio.",
			Internal:   err,
		}

	case errors.Is(err, store.ErrNotFound):
		return NotFound("Recurso no encontrado")

	default:
		return InternalError(err)
	}
}
