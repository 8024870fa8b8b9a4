package json

import (
	"context"
	"testing"

	"github.com/zoobzio/halfshift"
)

type note struct {
	ID   string `json:"id"`
	Body string `json:"body"`
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/json" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/json")
	}
}

func TestCiphertextSurvivesCodec(t *testing.T) {
	c := New()
	pair := halfshift.ShiftPair{Shift1: 3, Shift2: 2}
	body := "Meet at the North gate, 10:30!"

	original := note{ID: "n-1", Body: halfshift.EncryptText(body, pair)}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored note
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored.Body != original.Body {
		t.Errorf("ciphertext changed by codec: got %q, want %q", restored.Body, original.Body)
	}
	if got := halfshift.DecryptText(restored.Body, pair); got != body {
		t.Errorf("DecryptText() = %q, want %q", got, body)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var v note
	if err := New().Unmarshal([]byte("invalid json"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}

func TestMarshalNil(t *testing.T) {
	data, err := New().Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "null")
	}
}

type sealedNote struct {
	ID   string `json:"id"`
	Body string `json:"body" store.encrypt:"halfshift" load.decrypt:"halfshift"`
}

func (n sealedNote) Clone() sealedNote { return n }

func TestSealed(t *testing.T) {
	pair := halfshift.ShiftPair{Shift1: 3, Shift2: 2}
	proc, err := Sealed[sealedNote](pair)
	if err != nil {
		t.Fatalf("Sealed() error: %v", err)
	}

	data, err := proc.Store(context.Background(), &sealedNote{ID: "ANz", Body: "ANz"})
	if err != nil {
		t.Fatalf("Store() error: %v", err)
	}

	var stored sealedNote
	if err := New().Unmarshal(data, &stored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if stored.ID != "ANz" || stored.Body != "KRr" {
		t.Errorf("stored = %+v, want ID ANz and Body KRr", stored)
	}

	restored, err := proc.Load(context.Background(), data)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if restored.Body != "ANz" {
		t.Errorf("Load() Body = %q, want %q", restored.Body, "ANz")
	}
}
