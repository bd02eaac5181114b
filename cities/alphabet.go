package cities

import "fmt"

// Count is the fixed number of cities in every route.
const Count = 36

// Symbols lists the alphabet in index order: 'A'..'Z' → 0..25, '0'..'9' → 26..35.
const Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// invalidIndex marks bytes outside the alphabet in the index table.
const invalidIndex int8 = -1

// Alphabet holds the immutable symbol↔index and symbol↔complement lookup
// tables. Build it once with NewAlphabet (or use Default) and pass it by
// reference; no method mutates it, so concurrent readers need no locking.
type Alphabet struct {
	index      [256]int8 // symbol → index, invalidIndex for foreign bytes
	complement [256]byte // symbol → mirrored symbol, 0 for foreign bytes
}

// std is the process-wide default alphabet, built during package init.
var std = NewAlphabet()

// NewAlphabet builds the lookup tables.
//
// Complexity: O(256).
func NewAlphabet() *Alphabet {
	a := &Alphabet{}

	var i int
	for i = range a.index {
		a.index[i] = invalidIndex
	}
	for i = 0; i < Count; i++ {
		a.index[Symbols[i]] = int8(i)
		a.complement[Symbols[i]] = Symbols[Count-1-i]
	}

	return a
}

// Default returns the shared alphabet built at package init.
func Default() *Alphabet { return std }

// Index returns the dense index of symbol, or -1 when symbol is not part of
// the alphabet. It is the allocation-free form of IndexOf for hot loops.
func (a *Alphabet) Index(symbol byte) int {
	return int(a.index[symbol])
}

// IndexOf returns the dense index of symbol in [0, Count).
// Foreign bytes yield ErrInvalidSymbol.
//
// Complexity: O(1).
func (a *Alphabet) IndexOf(symbol byte) (int, error) {
	idx := a.index[symbol]
	if idx == invalidIndex {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}

	return int(idx), nil
}

// Complement returns the mirrored symbol, or 0 for foreign bytes.
func (a *Alphabet) Complement(symbol byte) byte {
	return a.complement[symbol]
}

// ComplementOf returns the symbol at the mirrored alphabet position:
// ComplementOf(Symbols[i]) == Symbols[Count-1-i]. It is an involution,
// ComplementOf(ComplementOf(s)) == s for every valid s.
//
// Complexity: O(1).
func (a *Alphabet) ComplementOf(symbol byte) (byte, error) {
	c := a.complement[symbol]
	if c == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, symbol)
	}

	return c, nil
}

// SymbolAt is the inverse of IndexOf.
func (a *Alphabet) SymbolAt(index int) (byte, error) {
	if index < 0 || index >= Count {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	return Symbols[index], nil
}

// ValidateRoute checks that symbols is a permutation of the alphabet:
// exactly Count symbols, each valid, none repeated.
//
// Complexity: O(Count) time, O(1) space.
func (a *Alphabet) ValidateRoute(symbols []byte) error {
	if len(symbols) != Count {
		return fmt.Errorf("%w: got %d symbols, want %d", ErrRouteLength, len(symbols), Count)
	}

	var (
		seen Set
		pos  int
		idx  int
	)
	for pos = 0; pos < Count; pos++ {
		idx = a.Index(symbols[pos])
		if idx < 0 {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, symbols[pos], pos)
		}
		if seen.Has(idx) {
			return fmt.Errorf("%w: %q at position %d", ErrDuplicateSymbol, symbols[pos], pos)
		}
		seen = seen.With(idx)
	}

	return nil
}

// IndexOf looks symbol up in the default alphabet.
func IndexOf(symbol byte) (int, error) { return std.IndexOf(symbol) }

// ComplementOf looks symbol up in the default alphabet.
func ComplementOf(symbol byte) (byte, error) { return std.ComplementOf(symbol) }
