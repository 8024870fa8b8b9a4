package halfshift

// halfSize is the number of letters in each half of the alphabet.
// Offsets are reduced modulo halfSize so a letter never leaves its half.
const halfSize = 13

// Direction selects which sign convention each shift rule uses.
type Direction string

const (
	// Encrypt applies the forward rules.
	Encrypt Direction = "encrypt"

	// Decrypt applies the inverse rules.
	Decrypt Direction = "decrypt"
)

// Half identifies which half of a case's alphabet a letter belongs to.
type Half int

const (
	// FirstHalf covers A-M and a-m.
	FirstHalf Half = iota

	// SecondHalf covers N-Z and n-z.
	SecondHalf
)

func (h Half) String() string {
	if h == SecondHalf {
		return "second"
	}
	return "first"
}

// ShiftPair holds the two integer parameters that drive every rule.
// Any sign and magnitude is accepted.
type ShiftPair struct {
	Shift1 int
	Shift2 int
}

// Letter is an ASCII letter decomposed into case and alphabet position.
type Letter struct {
	Upper    bool
	Position int // 0-25 from the start of the case's alphabet
}

// Half returns the half of the alphabet the letter falls in.
func (l Letter) Half() Half {
	if l.Position >= halfSize {
		return SecondHalf
	}
	return FirstHalf
}

// Offset returns the letter's position within its half (0-12).
func (l Letter) Offset() int {
	return l.Position % halfSize
}

// Rune returns the character for the letter.
func (l Letter) Rune() rune {
	if l.Upper {
		return 'A' + rune(l.Position)
	}
	return 'a' + rune(l.Position)
}

// ClassifyLetter reports whether r is an ASCII letter and, if so, its
// decomposition. Every other rune, including non-ASCII letters, is a
// non-letter.
func ClassifyLetter(r rune) (Letter, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Letter{Upper: true, Position: int(r - 'A')}, true
	case r >= 'a' && r <= 'z':
		return Letter{Upper: false, Position: int(r - 'a')}, true
	default:
		return Letter{}, false
	}
}

// TransformLetter moves l within its half according to the rule selected by
// its case and half. Case and half are always preserved.
//
//	upper first:  encrypt -s1      decrypt +s1
//	upper second: encrypt +s2*s2   decrypt -s2*s2
//	lower first:  encrypt +s1*s2   decrypt -s1*s2
//	lower second: encrypt +(s1+s2) decrypt -(s1+s2)
//
// Any dir other than Decrypt is treated as Encrypt.
func TransformLetter(l Letter, pair ShiftPair, dir Direction) Letter {
	delta := ruleDelta(l.Upper, l.Half(), pair)
	if dir == Decrypt {
		delta = -delta
	}

	base := 0
	if l.Half() == SecondHalf {
		base = halfSize
	}

	return Letter{
		Upper:    l.Upper,
		Position: base + mod13(l.Offset()+delta),
	}
}

// ruleDelta returns the encrypt-direction shift for a case and half,
// already reduced to [0,13). Each operand is reduced before multiplying
// so large shifts cannot overflow.
func ruleDelta(upper bool, half Half, pair ShiftPair) int {
	s1 := mod13(pair.Shift1)
	s2 := mod13(pair.Shift2)

	switch {
	case upper && half == FirstHalf:
		return mod13(-s1)
	case upper:
		return mod13(s2 * s2)
	case half == FirstHalf:
		return mod13(s1 * s2)
	default:
		return mod13(s1 + s2)
	}
}

// mod13 is a modulo that always lands in [0,13), including for negative n.
func mod13(n int) int {
	return ((n % halfSize) + halfSize) % halfSize
}
