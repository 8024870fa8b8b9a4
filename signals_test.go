package halfshift

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestEmitCipherCreated(_ *testing.T) {
	// Should not panic
	emitCipherCreated(context.Background(), ShiftPair{Shift1: 3, Shift2: 2})
}

func TestEmitTransform(_ *testing.T) {
	for _, dir := range []Direction{Encrypt, Decrypt} {
		emitTransformStart(context.Background(), dir, 18)
		emitTransformComplete(context.Background(), dir, 18, 10, time.Millisecond)
	}
}

func TestEmitVerifyComplete(_ *testing.T) {
	emitVerifyComplete(context.Background(), Success, -1)
	emitVerifyComplete(context.Background(), Mismatch, 4)
}

func TestEmitProcessorCreated(_ *testing.T) {
	emitProcessorCreated(context.Background(), "application/json", "TestType")
}

func TestEmitStore(_ *testing.T) {
	emitStoreStart(context.Background(), "application/json", "TestType")
	emitStoreComplete(context.Background(), "application/json", "TestType", 1024, 100*time.Millisecond, 2, nil)
	emitStoreComplete(context.Background(), "application/json", "TestType", 0, 100*time.Millisecond, 0, errors.New("test error"))
}

func TestEmitLoad(_ *testing.T) {
	emitLoadStart(context.Background(), "application/json", "TestType")
	emitLoadComplete(context.Background(), "application/json", "TestType", 100*time.Millisecond, 3, nil)
	emitLoadComplete(context.Background(), "application/json", "TestType", 100*time.Millisecond, 0, errors.New("test error"))
}

func TestSignalVariables(t *testing.T) {
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalCipherCreated", SignalCipherCreated},
		{"SignalEncryptStart", SignalEncryptStart},
		{"SignalEncryptComplete", SignalEncryptComplete},
		{"SignalDecryptStart", SignalDecryptStart},
		{"SignalDecryptComplete", SignalDecryptComplete},
		{"SignalVerifyComplete", SignalVerifyComplete},
		{"SignalProcessorCreated", SignalProcessorCreated},
		{"SignalStoreStart", SignalStoreStart},
		{"SignalStoreComplete", SignalStoreComplete},
		{"SignalLoadStart", SignalLoadStart},
		{"SignalLoadComplete", SignalLoadComplete},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}
