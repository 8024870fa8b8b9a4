package halfshift

import (
	"context"
	"testing"
	"unicode/utf8"
)

const sampleText = "Hello, World! 2024"

var roundTripTexts = []string{
	"",
	"A",
	"z",
	sampleText,
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqrstuvwxyz",
	"The quick brown fox jumps over the lazy dog.\n\tTabs, newlines & symbols: ~!@#$%^&*()_+{}|:\"<>?",
	"naïve café, Ωmega, 日本語 and emoji 🙂 stay put",
	"caf\xe9",
	"caf\xe9 ANz \xff\xfe\x80 end",
}

func TestTransform_Scenarios(t *testing.T) {
	pair := ShiftPair{Shift1: 3, Shift2: 2}

	tests := []struct {
		plain     string
		encrypted string
	}{
		{"A", "K"},
		{"N", "R"},
		{"z", "r"},
		{"ANz", "KRr"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := EncryptText(tt.plain, pair); got != tt.encrypted {
			t.Errorf("EncryptText(%q) = %q, want %q", tt.plain, got, tt.encrypted)
		}
		if got := DecryptText(tt.encrypted, pair); got != tt.plain {
			t.Errorf("DecryptText(%q) = %q, want %q", tt.encrypted, got, tt.plain)
		}
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	for s1 := -50; s1 <= 50; s1++ {
		for s2 := -50; s2 <= 50; s2++ {
			pair := ShiftPair{Shift1: s1, Shift2: s2}
			for _, text := range roundTripTexts {
				got := DecryptText(EncryptText(text, pair), pair)
				if got != text {
					t.Fatalf("round trip with %+v: got %q, want %q", pair, got, text)
				}
			}
		}
	}
}

func TestTransform_NonLettersUnchanged(t *testing.T) {
	text := "0123456789 !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~ é 日"
	pairs := []ShiftPair{{3, 2}, {-7, 11}, {0, 0}, {100, -100}}

	for _, pair := range pairs {
		for _, dir := range []Direction{Encrypt, Decrypt} {
			if got := Transform(text, pair, dir); got != text {
				t.Errorf("Transform(%q, %+v, %s) = %q, want unchanged", text, pair, dir, got)
			}
		}
	}
}

func TestTransform_InvalidUTF8Unchanged(t *testing.T) {
	pair := ShiftPair{Shift1: 3, Shift2: 2}
	text := "caf\xe9 ANz \xff"

	for _, dir := range []Direction{Encrypt, Decrypt} {
		out := Transform(text, pair, dir)
		if len(out) != len(text) {
			t.Fatalf("Transform(%q, %s) changed length: %d -> %d", text, dir, len(text), len(out))
		}
		for i := 0; i < len(text); i++ {
			if _, ok := ClassifyLetter(rune(text[i])); ok {
				continue
			}
			if out[i] != text[i] {
				t.Errorf("Transform(%q, %s) byte %d = %#x, want %#x", text, dir, i, out[i], text[i])
			}
		}
	}

	if got := EncryptText(text, pair); got != "igl\xe9 KRr \xff" {
		t.Errorf("EncryptText(%q) = %q, want %q", text, got, "igl\xe9 KRr \xff")
	}
}

func TestTransform_UnknownDirectionEncrypts(t *testing.T) {
	pair := ShiftPair{Shift1: 3, Shift2: 2}
	if got := Transform("ANz", pair, ""); got != "KRr" {
		t.Errorf("Transform(%q, \"\") = %q, want %q", "ANz", got, "KRr")
	}
}

func TestTransform_PreservesShape(t *testing.T) {
	pair := ShiftPair{Shift1: 5, Shift2: -9}

	for _, text := range roundTripTexts {
		out := EncryptText(text, pair)
		if utf8.RuneCountInString(out) != utf8.RuneCountInString(text) {
			t.Fatalf("length changed: %q -> %q", text, out)
		}

		in, got := []rune(text), []rune(out)
		for i := range in {
			li, isLetter := ClassifyLetter(in[i])
			lo, outLetter := ClassifyLetter(got[i])
			if isLetter != outLetter {
				t.Fatalf("letter/non-letter changed at %d: %q -> %q", i, in[i], got[i])
			}
			if !isLetter {
				if in[i] != got[i] {
					t.Fatalf("non-letter changed at %d: %q -> %q", i, in[i], got[i])
				}
				continue
			}
			if li.Upper != lo.Upper {
				t.Fatalf("case changed at %d: %q -> %q", i, in[i], got[i])
			}
			if li.Half() != lo.Half() {
				t.Fatalf("half changed at %d: %q -> %q", i, in[i], got[i])
			}
		}
	}
}

func TestTransform_Deterministic(t *testing.T) {
	pair := ShiftPair{Shift1: 4, Shift2: 7}
	first := EncryptText(sampleText, pair)
	for i := 0; i < 10; i++ {
		if got := EncryptText(sampleText, pair); got != first {
			t.Fatalf("EncryptText not deterministic: %q vs %q", got, first)
		}
	}
}

func TestTransformBytes_MatchesTransform(t *testing.T) {
	pair := ShiftPair{Shift1: -4, Shift2: 9}

	for _, text := range roundTripTexts {
		for _, dir := range []Direction{Encrypt, Decrypt} {
			want := Transform(text, pair, dir)
			got := string(TransformBytes([]byte(text), pair, dir))
			if got != want {
				t.Errorf("TransformBytes(%q, %s) = %q, want %q", text, dir, got, want)
			}
		}
	}
}

func TestTransformBytes_DoesNotModifyInput(t *testing.T) {
	in := []byte("Hello")
	_ = TransformBytes(in, ShiftPair{Shift1: 3, Shift2: 2}, Encrypt)
	if string(in) != "Hello" {
		t.Errorf("input modified: %q", in)
	}
}

func TestCipher_EncryptDecrypt(t *testing.T) {
	ctx := context.Background()
	c := NewCipher(ShiftPair{Shift1: 3, Shift2: 2})

	if c.Pair() != (ShiftPair{Shift1: 3, Shift2: 2}) {
		t.Errorf("Pair() = %+v", c.Pair())
	}

	enc := c.Encrypt(ctx, "ANz")
	if enc != "KRr" {
		t.Errorf("Encrypt() = %q, want %q", enc, "KRr")
	}
	if dec := c.Decrypt(ctx, enc); dec != "ANz" {
		t.Errorf("Decrypt() = %q, want %q", dec, "ANz")
	}
}

func TestCipher_RoundTrip(t *testing.T) {
	c := NewCipher(ShiftPair{Shift1: 13, Shift2: -26})
	report := c.RoundTrip(context.Background(), sampleText)

	if !report.Result.OK() {
		t.Fatalf("RoundTrip() result = %v", report.Result)
	}
	if report.Original != sampleText || report.Decrypted != sampleText {
		t.Errorf("RoundTrip() report = %+v", report)
	}
	if report.Encrypted != EncryptText(sampleText, c.Pair()) {
		t.Errorf("Encrypted = %q", report.Encrypted)
	}
	if report.FirstMismatch != -1 {
		t.Errorf("FirstMismatch = %d, want -1", report.FirstMismatch)
	}
}

func TestCipher_ZeroValue(t *testing.T) {
	var c Cipher
	if got := c.Encrypt(context.Background(), "Hello"); got != "Hello" {
		t.Errorf("zero Cipher Encrypt() = %q, want identity", got)
	}
}

func TestCountLetters(t *testing.T) {
	if n := countLetters(sampleText); n != 10 {
		t.Errorf("countLetters(%q) = %d, want 10", sampleText, n)
	}
}
