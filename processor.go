package halfshift

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// Struct tags understood by the processor.
const (
	tagStoreEncrypt = "store.encrypt"
	tagLoadDecrypt  = "load.decrypt"
)

func init() {
	sentinel.Tag(tagStoreEncrypt)
	sentinel.Tag(tagLoadDecrypt)
}

// Processor applies the cipher to tagged fields at storage boundaries.
// Store encrypts fields tagged store.encrypt and marshals; Load unmarshals
// and decrypts fields tagged load.decrypt.
//
// Processors are safe for concurrent use. SetEncryptor may be called at any
// time to swap shifts; validation runs once, on the first operation.
type Processor[T Cloner[T]] struct {
	codec Codec

	mu         sync.RWMutex
	encryptors map[EncryptAlgo]Encryptor

	validateOnce sync.Once
	validateErr  error

	// immutable after construction
	storeFields []processorFieldPlan
	loadFields  []processorFieldPlan
	typeName    string
}

// processorFieldPlan describes how to reach and transform a single field.
type processorFieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // dotted field name for error messages
	algo       EncryptAlgo
	isBytes    bool  // []byte rather than string
	isSlice    bool  // []string
	isMap      bool  // map[K]string
	ptrIndices []int // positions in index where a pointer must be dereferenced
}

// typeFieldPlans holds the scanned plans for one type.
type typeFieldPlans struct {
	typeName    string
	storeFields []processorFieldPlan
	loadFields  []processorFieldPlan
}

var planCache sync.Map // reflect.Type -> *typeFieldPlans

// getOrBuildPlans returns the cached plans for T, scanning on first use.
func getOrBuildPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := planCache.Load(typ); ok {
		return cached.(*typeFieldPlans), nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	actual, _ := planCache.LoadOrStore(typ, plans)
	return actual.(*typeFieldPlans), nil
}

// NewProcessor creates a Processor for type T.
//
// Encryptors must be registered with SetEncryptor before Store or Load is
// used on a type with tagged fields. Tags naming an unknown algorithm fail
// here with ErrInvalidTag.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:       codec,
		encryptors:  make(map[EncryptAlgo]Encryptor),
		storeFields: plans.storeFields,
		loadFields:  plans.loadFields,
		typeName:    plans.typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// SetEncryptor registers an encryptor for the given algorithm.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetEncryptor(algo EncryptAlgo, enc Encryptor) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.encryptors[algo] = enc
	return p
}

// Validate checks that every tagged field has a registered encryptor.
// It also runs automatically on the first Store or Load.
func (p *Processor[T]) Validate() error {
	return p.ensureValidated()
}

func (p *Processor[T]) ensureValidated() error {
	p.validateOnce.Do(func() {
		p.mu.RLock()
		defer p.mu.RUnlock()
		p.validateErr = p.validateCapabilities()
	})
	return p.validateErr
}

// validateCapabilities skips a direction when T implements its override.
func (p *Processor[T]) validateCapabilities() error {
	var zero T
	_, hasEncryptable := any(&zero).(Encryptable)
	_, hasDecryptable := any(&zero).(Decryptable)

	if !hasEncryptable {
		for _, plan := range p.storeFields {
			if _, ok := p.encryptors[plan.algo]; !ok {
				return newConfigError(ErrMissingEncryptor, string(plan.algo), plan.name)
			}
		}
	}

	if !hasDecryptable {
		for _, plan := range p.loadFields {
			if _, ok := p.encryptors[plan.algo]; !ok {
				return newConfigError(ErrMissingEncryptor, string(plan.algo), plan.name)
			}
		}
	}

	return nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	meta := sentinel.Scan[T]()
	plans := &typeFieldPlans{typeName: meta.TypeName}

	if err := buildFieldPlansRecursive(plans, meta, nil, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive walks fields, descending into nested structs and
// pointers to structs.
func buildFieldPlansRecursive(plans *typeFieldPlans, meta sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range meta.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			continue
		}

		base := processorFieldPlan{
			index:      fullIndex,
			name:       fullName,
			isBytes:    isBytes,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
			ptrIndices: ptrIndices,
		}

		if val, ok := field.Tags[tagStoreEncrypt]; ok {
			if !IsValidEncryptAlgo(EncryptAlgo(val)) {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plan := base
			plan.algo = EncryptAlgo(val)
			plans.storeFields = append(plans.storeFields, plan)
		}

		if val, ok := field.Tags[tagLoadDecrypt]; ok {
			if !IsValidEncryptAlgo(EncryptAlgo(val)) {
				return newConfigError(ErrInvalidTag, val, fullName)
			}
			plan := base
			plan.algo = EncryptAlgo(val)
			plans.loadFields = append(plans.loadFields, plan)
		}
	}

	return nil
}

// scanNestedType returns metadata for a nested struct type, preferring
// sentinel's cache.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return &meta
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseCipherTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return &meta
}

// parseCipherTags extracts the processor's tags from a struct tag.
func parseCipherTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, name := range []string{tagStoreEncrypt, tagLoadDecrypt} {
		if val, ok := tag.Lookup(name); ok {
			tags[name] = val
		}
	}
	return tags
}

// Store encrypts tagged fields of a clone of obj and marshals the result.
// obj itself is left untouched.
func (p *Processor[T]) Store(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitStoreStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitStoreComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.storeFields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if e, ok := any(&clone).(Encryptable); ok {
		if err := e.Encrypt(p.encryptors); err != nil {
			retErr = newTransformError(ErrEncrypt, "encrypt", p.typeName, err)
			return nil, retErr
		}
	} else if err := p.apply(&clone, p.storeFields, Encrypt); err != nil {
		retErr = err
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Load unmarshals data and decrypts tagged fields.
func (p *Processor[T]) Load(ctx context.Context, data []byte) (*T, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitLoadStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitLoadComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.loadFields), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if d, ok := any(&obj).(Decryptable); ok {
		if err := d.Decrypt(p.encryptors); err != nil {
			retErr = newTransformError(ErrDecrypt, "decrypt", p.typeName, err)
			return nil, retErr
		}
		return &obj, nil
	}

	if err := p.apply(&obj, p.loadFields, Decrypt); err != nil {
		retErr = err
		return nil, retErr
	}

	return &obj, nil
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// apply runs the registered encryptor over every planned field.
// The caller must hold p.mu.
func (p *Processor[T]) apply(obj *T, plans []processorFieldPlan, dir Direction) error {
	rv := reflect.ValueOf(obj).Elem()

	sentinelErr, op := ErrEncrypt, "encrypt"
	if dir == Decrypt {
		sentinelErr, op = ErrDecrypt, "decrypt"
	}

	for _, plan := range plans {
		enc := p.encryptors[plan.algo]
		run := enc.Encrypt
		if dir == Decrypt {
			run = enc.Decrypt
		}

		field, ok := p.getField(rv, plan)
		if !ok {
			continue
		}

		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if !elem.CanSet() {
					continue
				}
				out, err := run([]byte(elem.String()))
				if err != nil {
					return newTransformError(sentinelErr, op, fmt.Sprintf("%s[%d]", plan.name, i), err)
				}
				elem.SetString(string(out))
			}
			continue
		}

		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				out, err := run([]byte(v.String()))
				if err != nil {
					return newTransformError(sentinelErr, op, fmt.Sprintf("%s[%v]", plan.name, k.Interface()), err)
				}
				field.SetMapIndex(k, reflect.ValueOf(string(out)).Convert(field.Type().Elem()))
			}
			continue
		}

		if !field.CanSet() {
			continue
		}

		var in []byte
		if plan.isBytes {
			in = field.Bytes()
		} else {
			in = []byte(field.String())
		}

		out, err := run(in)
		if err != nil {
			return newTransformError(sentinelErr, op, plan.name, err)
		}

		if plan.isBytes {
			field.SetBytes(out)
		} else {
			field.SetString(string(out))
		}
	}

	return nil
}

// getField navigates a field path, dereferencing pointers as needed.
// It reports false when a pointer on the path is nil.
func (p *Processor[T]) getField(rv reflect.Value, plan processorFieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	current := rv
	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
