package halfshift_test

import (
	"testing"

	"github.com/zoobzio/halfshift"
	"github.com/zoobzio/halfshift/json"
	"github.com/zoobzio/halfshift/yaml"
)

type CacheTestNote struct {
	Body string `json:"body" yaml:"body" store.encrypt:"halfshift" load.decrypt:"halfshift"`
}

func (n CacheTestNote) Clone() CacheTestNote { return n }

func TestUse_Caching(t *testing.T) {
	halfshift.Reset()

	s1, err := halfshift.Use[CacheTestNote](json.New())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	s2, err := halfshift.Use[CacheTestNote](json.New())
	if err != nil {
		t.Fatalf("Use() error: %v", err)
	}

	if s1 != s2 {
		t.Error("Use() should return cached processor")
	}
}

func TestUse_DifferentCodecs(t *testing.T) {
	halfshift.Reset()

	s1, _ := halfshift.Use[CacheTestNote](json.New())
	s2, _ := halfshift.Use[CacheTestNote](yaml.New())

	if s1 == s2 {
		t.Error("different content types should get different processors")
	}
}

func TestReset(t *testing.T) {
	s1, _ := halfshift.Use[CacheTestNote](json.New())

	halfshift.Reset()

	s2, _ := halfshift.Use[CacheTestNote](json.New())

	if s1 == s2 {
		t.Error("Reset() should clear cache, new processor expected")
	}
}
