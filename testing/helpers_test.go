package testing

import (
	"testing"

	"github.com/zoobzio/halfshift"
)

func TestTestPair(t *testing.T) {
	pair := TestPair(t)
	if pair.Shift1 != 3 || pair.Shift2 != 2 {
		t.Errorf("TestPair() = %+v, want {3 2}", pair)
	}
}

func TestTestEncryptor(t *testing.T) {
	enc := TestEncryptor(t)
	if enc == nil {
		t.Fatal("TestEncryptor() should not return nil")
	}

	ciphertext, err := enc.Encrypt([]byte("ANz"))
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}
	if string(ciphertext) != "KRr" {
		t.Errorf("Encrypt(ANz) = %q, want %q", ciphertext, "KRr")
	}

	plaintext, err := enc.Decrypt(ciphertext)
	if err != nil {
		t.Fatalf("Decrypt() error: %v", err)
	}
	if string(plaintext) != "ANz" {
		t.Errorf("round-trip failed: got %q", plaintext)
	}
}

func TestSecretNote_Clone(t *testing.T) {
	original := SecretNote{ID: "1", Title: "t", Body: "b", Tags: []string{"a", "b"}, Note: "n"}
	cloned := original.Clone()

	cloned.Tags[0] = "modified"
	if original.Tags[0] != "a" {
		t.Error("Clone() did not create independent Tags")
	}
	if cloned.ID != original.ID || cloned.Title != original.Title || cloned.Body != original.Body || cloned.Note != original.Note {
		t.Error("Clone() should copy all fields")
	}
}

func TestSecretNote_Clone_NilTags(t *testing.T) {
	if (SecretNote{}).Clone().Tags != nil {
		t.Error("Clone() should preserve nil Tags")
	}
}

func TestSecretNote_Processable(t *testing.T) {
	var _ halfshift.Cloner[SecretNote] = SecretNote{}
	var _ halfshift.Cloner[SimpleNote] = SimpleNote{}
}
