package halfshift

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for cipher and processor events.
var (
	SignalCipherCreated    = capitan.NewSignal("halfshift.cipher.created", "Cipher instantiated")
	SignalEncryptStart     = capitan.NewSignal("halfshift.encrypt.start", "Encrypt operation beginning")
	SignalEncryptComplete  = capitan.NewSignal("halfshift.encrypt.complete", "Encrypt operation finished")
	SignalDecryptStart     = capitan.NewSignal("halfshift.decrypt.start", "Decrypt operation beginning")
	SignalDecryptComplete  = capitan.NewSignal("halfshift.decrypt.complete", "Decrypt operation finished")
	SignalVerifyComplete   = capitan.NewSignal("halfshift.verify.complete", "Round-trip verification finished")
	SignalProcessorCreated = capitan.NewSignal("halfshift.processor.created", "Processor instantiated")
	SignalStoreStart       = capitan.NewSignal("halfshift.store.start", "Store operation beginning")
	SignalStoreComplete    = capitan.NewSignal("halfshift.store.complete", "Store operation finished")
	SignalLoadStart        = capitan.NewSignal("halfshift.load.start", "Load operation beginning")
	SignalLoadComplete     = capitan.NewSignal("halfshift.load.complete", "Load operation finished")
)

// Keys for typed event data.
var (
	KeyShift1         = capitan.NewIntKey("shift1")
	KeyShift2         = capitan.NewIntKey("shift2")
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeySize           = capitan.NewIntKey("size")
	KeyLetters        = capitan.NewIntKey("letters")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyError          = capitan.NewErrorKey("error")
	KeyResult         = capitan.NewStringKey("result")
	KeyMismatchIndex  = capitan.NewIntKey("mismatch_index")
	KeyEncryptedCount = capitan.NewIntKey("encrypted_count")
	KeyDecryptedCount = capitan.NewIntKey("decrypted_count")
)

// emitCipherCreated emits an event when a cipher is created.
func emitCipherCreated(ctx context.Context, pair ShiftPair) {
	capitan.Emit(ctx, SignalCipherCreated,
		KeyShift1.Field(pair.Shift1),
		KeyShift2.Field(pair.Shift2),
	)
}

// emitTransformStart emits the start event for the direction.
func emitTransformStart(ctx context.Context, dir Direction, size int) {
	signal := SignalEncryptStart
	if dir == Decrypt {
		signal = SignalDecryptStart
	}
	capitan.Emit(ctx, signal, KeySize.Field(size))
}

// emitTransformComplete emits the complete event for the direction.
func emitTransformComplete(ctx context.Context, dir Direction, size, letters int, duration time.Duration) {
	signal := SignalEncryptComplete
	if dir == Decrypt {
		signal = SignalDecryptComplete
	}
	capitan.Emit(ctx, signal,
		KeySize.Field(size),
		KeyLetters.Field(letters),
		KeyDuration.Field(duration),
	)
}

// emitVerifyComplete emits the verification outcome. Mismatches are
// reported at error severity.
func emitVerifyComplete(ctx context.Context, result VerificationResult, mismatchIndex int) {
	fields := []capitan.Field{
		KeyResult.Field(result.String()),
		KeyMismatchIndex.Field(mismatchIndex),
	}
	if !result.OK() {
		fields = append(fields, KeyError.Field(ErrRoundTrip))
		capitan.Error(ctx, SignalVerifyComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalVerifyComplete, fields...)
	}
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitStoreStart emits an event when store begins.
func emitStoreStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalStoreStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitStoreComplete emits an event when store finishes.
func emitStoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, encrypted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyEncryptedCount.Field(encrypted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStoreComplete, fields...)
	}
}

// emitLoadStart emits an event when load begins.
func emitLoadStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitLoadComplete emits an event when load finishes.
func emitLoadComplete(ctx context.Context, contentType, typeName string, duration time.Duration, decrypted int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyDecryptedCount.Field(decrypted),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}
