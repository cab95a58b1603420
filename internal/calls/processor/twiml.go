package processor

import (
	"github.com/twilio/twilio-go/twiml"
)

// Voice and language used on every spoken element.
const (
	sayLanguage = "es-ES"
	sayVoice    = "Polly.Lupe"
)

// speechTimeoutSeconds is how long Twilio listens for speech before giving up
// and following the elements after the Gather.
const speechTimeoutSeconds = "10"

// Spoken lines, all Spanish per the assistant persona.
const (
	greetingMessage  = "Hola, soy tu asistente virtual. ¿En qué puedo ayudarte?"
	retryMessage     = "No escuché tu respuesta. Por favor, intenta de nuevo."
	followUpMessage  = "¿Algo más en lo que pueda ayudarte?"
	closingMessage   = "Gracias por llamar. Hasta luego."
	apologyMessage   = "Lo siento, hubo un error. Por favor, intenta más tarde."
	testProbeMessage = "Hola, este es un mensaje de prueba desde el servidor. ¿Puedes escucharme?"
)

// apologyFallbackDocument is returned if TwiML rendering itself fails. Twilio
// treats a malformed response as a protocol violation, so the terminal path
// can never depend on the renderer succeeding.
const apologyFallbackDocument = `<?xml version="1.0" encoding="UTF-8"?><Response><Say language="es-ES" voice="Polly.Lupe">` +
	apologyMessage + `</Say><Hangup/></Response>`

func say(message string) *twiml.VoiceSay {
	return &twiml.VoiceSay{
		Message:  message,
		Language: sayLanguage,
		Voice:    sayVoice,
	}
}

func gatherSpeech(webhookURL string, inner ...twiml.Element) *twiml.VoiceGather {
	return &twiml.VoiceGather{
		Input:         "speech",
		Language:      sayLanguage,
		SpeechTimeout: "auto",
		Action:        webhookURL,
		Method:        "POST",
		Timeout:       speechTimeoutSeconds,
		FinishOnKey:   "#",
		InnerElements: inner,
	}
}

// greetingDocument speaks the greeting and listens for the first utterance.
// On silence the retry prompt plays and the webhook is re-invoked.
func greetingDocument(webhookURL string) (string, error) {
	return twiml.Voice([]twiml.Element{
		say(greetingMessage),
		&twiml.VoicePause{Length: "1"},
		gatherSpeech(webhookURL),
		say(retryMessage),
		&twiml.VoiceRedirect{Url: webhookURL, Method: "POST"},
	})
}

// replyDocument speaks the assistant reply and listens again. On silence the
// closing line plays and the call hangs up.
func replyDocument(reply, webhookURL string) (string, error) {
	return twiml.Voice([]twiml.Element{
		&twiml.VoicePause{Length: "1"},
		say(reply),
		&twiml.VoicePause{Length: "1"},
		gatherSpeech(webhookURL, say(followUpMessage)),
		&twiml.VoicePause{Length: "2"},
		say(closingMessage),
		&twiml.VoiceHangup{},
	})
}

// ApologyDocument is the terminal speak-and-hangup response emitted for any
// protocol failure. It is always syntactically valid.
func ApologyDocument() string {
	doc, err := twiml.Voice([]twiml.Element{
		say(apologyMessage),
		&twiml.VoiceHangup{},
	})
	if err != nil {
		return apologyFallbackDocument
	}
	return doc
}

// TestDocument is the static diagnostic response: speak and hang up.
func TestDocument() string {
	doc, err := twiml.Voice([]twiml.Element{
		say(testProbeMessage),
		&twiml.VoiceHangup{},
	})
	if err != nil {
		return apologyFallbackDocument
	}
	return doc
}
