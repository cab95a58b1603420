package processor

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
)

// assertWellFormed parses the document so a malformed response to Twilio is
// caught here rather than mid-call.
func assertWellFormed(t *testing.T, doc string) {
	t.Helper()
	decoder := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			t.Fatalf("document is not well-formed XML: %v\n%s", err, doc)
		}
	}
}

func TestGreetingDocument(t *testing.T) {
	doc, err := greetingDocument(testWebhookURL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	assertWellFormed(t, doc)

	for _, want := range []string{
		greetingMessage,
		retryMessage,
		`voice="Polly.Lupe"`,
		`language="es-ES"`,
		`input="speech"`,
		`speechTimeout="auto"`,
		`timeout="10"`,
		`finishOnKey="#"`,
		testWebhookURL,
		"<Redirect",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("expected document to contain %q, got:\n%s", want, doc)
		}
	}
}

func TestReplyDocument(t *testing.T) {
	doc, err := replyDocument("Claro, con gusto.", testWebhookURL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	assertWellFormed(t, doc)

	for _, want := range []string{
		"Claro, con gusto.",
		followUpMessage,
		closingMessage,
		`timeout="10"`,
		"<Hangup",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("expected document to contain %q, got:\n%s", want, doc)
		}
	}
}

func TestApologyDocument(t *testing.T) {
	doc := ApologyDocument()

	assertWellFormed(t, doc)

	if !strings.Contains(doc, apologyMessage) {
		t.Errorf("expected apology line, got:\n%s", doc)
	}
	if !strings.Contains(doc, "<Hangup") {
		t.Errorf("expected hangup, got:\n%s", doc)
	}
	if strings.Contains(doc, "<Gather") {
		t.Errorf("apology document must not listen for more input, got:\n%s", doc)
	}
}

func TestTestDocument(t *testing.T) {
	doc := TestDocument()

	assertWellFormed(t, doc)

	if !strings.Contains(doc, testProbeMessage) {
		t.Errorf("expected test message, got:\n%s", doc)
	}
	if !strings.Contains(doc, "<Hangup") {
		t.Errorf("expected hangup, got:\n%s", doc)
	}
}

func TestApologyFallbackDocumentIsWellFormed(t *testing.T) {
	assertWellFormed(t, apologyFallbackDocument)
}
