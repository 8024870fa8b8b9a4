package halfshift

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Processor.
//
// Store encrypts a clone so the caller's value is never mutated. For types
// containing pointers, slices, or maps, the clone must copy them too:
//
//	func (n Note) Clone() Note {
//	    tags := make([]string, len(n.Tags))
//	    copy(tags, n.Tags)
//	    return Note{ID: n.ID, Body: n.Body, Tags: tags}
//	}
//
// Plain value types can return the receiver:
//
//	func (n Note) Clone() Note { return n }
type Cloner[T any] interface {
	Clone() T
}
