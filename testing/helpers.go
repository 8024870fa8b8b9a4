// Package testing provides test utilities for halfshift.
package testing

import (
	"testing"

	"github.com/zoobzio/halfshift"
)

// TestPair returns the shift pair used throughout the examples (3, 2).
func TestPair(tb testing.TB) halfshift.ShiftPair {
	tb.Helper()
	return halfshift.ShiftPair{Shift1: 3, Shift2: 2}
}

// TestEncryptor returns a half-shift encryptor configured with TestPair.
func TestEncryptor(tb testing.TB) halfshift.Encryptor {
	tb.Helper()
	return halfshift.HalfShift(TestPair(tb))
}

// SimpleNote is a test type with no transformation tags.
type SimpleNote struct {
	ID   string `json:"id" yaml:"id" msgpack:"id" bson:"id" xml:"id"`
	Body string `json:"body" yaml:"body" msgpack:"body" bson:"body" xml:"body"`
}

// Clone implements Cloner[SimpleNote].
func (n SimpleNote) Clone() SimpleNote { return n }

// SecretNote is a test type whose body, title and tags are enciphered at rest.
type SecretNote struct {
	ID    string   `json:"id" yaml:"id" msgpack:"id" bson:"id" xml:"id"`
	Title string   `json:"title" yaml:"title" msgpack:"title" bson:"title" xml:"title" store.encrypt:"halfshift" load.decrypt:"halfshift"`
	Body  string   `json:"body" yaml:"body" msgpack:"body" bson:"body" xml:"body" store.encrypt:"halfshift" load.decrypt:"halfshift"`
	Tags  []string `json:"tags" yaml:"tags" msgpack:"tags" bson:"tags" xml:"tag" store.encrypt:"halfshift" load.decrypt:"halfshift"`
	Note  string   `json:"note" yaml:"note" msgpack:"note" bson:"note" xml:"note"`
}

// Clone implements Cloner[SecretNote].
func (n SecretNote) Clone() SecretNote {
	var tags []string
	if n.Tags != nil {
		tags = make([]string, len(n.Tags))
		copy(tags, n.Tags)
	}
	return SecretNote{
		ID:    n.ID,
		Title: n.Title,
		Body:  n.Body,
		Tags:  tags,
		Note:  n.Note,
	}
}
