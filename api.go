// Package halfshift implements a reversible two-shift substitution cipher
// that keeps every letter inside its own half of the alphabet.
//
// The cipher is an educational scheme, not a secure one. It takes two
// integers (a ShiftPair) and moves each ASCII letter within its half
// (A-M, N-Z, a-m, n-z) by an amount chosen by the letter's case and half:
//
//	A-M: encrypt -s1       decrypt +s1
//	N-Z: encrypt +s2²      decrypt -s2²
//	a-m: encrypt +s1·s2    decrypt -s1·s2
//	n-z: encrypt +(s1+s2)  decrypt -(s1+s2)
//
// Offsets are reduced modulo 13, so each half is closed under its rule and
// decryption exactly inverts encryption for any shifts. Everything that is
// not an ASCII letter passes through unchanged.
//
// # Basic Usage
//
//	pair, err := halfshift.ParseShiftPair("3", "2")
//	if err != nil {
//	    return err // wraps halfshift.ErrInvalidShift
//	}
//
//	enc := halfshift.EncryptText("Hello, World!", pair)
//	dec := halfshift.DecryptText(enc, pair)
//	fmt.Println(halfshift.Verify("Hello, World!", dec)) // encryption and decryption successful
//
// Cipher wraps the same functions and emits capitan signals:
//
//	c := halfshift.NewCipher(pair)
//	report := c.RoundTrip(ctx, text)
//	if !report.Result.OK() { ... }
//
// # Field Processing
//
// Processor applies the cipher to tagged struct fields at storage
// boundaries:
//
//	type Note struct {
//	    ID   string `json:"id"`
//	    Body string `json:"body" store.encrypt:"halfshift" load.decrypt:"halfshift"`
//	}
//
//	func (n Note) Clone() Note { return n }
//
//	proc, _ := halfshift.NewProcessor[Note](json.New())
//	proc.SetEncryptor(halfshift.EncryptHalfShift, halfshift.HalfShift(pair))
//
//	data, _ := proc.Store(ctx, &note) // Body encrypted
//	note, _ := proc.Load(ctx, data)   // Body decrypted
//
// # Codec Providers
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package halfshift
