package token

import "slices"

// List is an ordered token stream split into a processed prefix and a
// pending suffix. The boundary only moves forward; tokens may be inserted at
// the front of the pending view.
type List struct {
	tokens []Token
	head   int
}

// Snapshot is a saved copy of a List, used to undo a failed claim.
type Snapshot struct {
	tokens []Token
	head   int
}

// NewList returns a list with every token pending.
func NewList(tokens ...Token) *List {
	return &List{tokens: slices.Clone(tokens)}
}

// Consume moves up to n pending tokens into the processed view and returns
// them.
func (l *List) Consume(n int) []Token {
	n = min(n, l.Len())
	out := slices.Clone(l.tokens[l.head : l.head+n])
	l.head += n

	return out
}

// Empty reports whether no tokens are pending.
func (l *List) Empty() bool {
	return l.Len() == 0
}

// Erase removes the pending token at index i.
func (l *List) Erase(i int) {
	if i < 0 || i >= l.Len() {
		return
	}

	l.tokens = slices.Delete(l.tokens, l.head+i, l.head+i+1)
}

// Front returns the first pending token.
func (l *List) Front() (Token, bool) {
	if l.Empty() {
		return Token{}, false
	}

	return l.tokens[l.head], true
}

// Index returns the position within the pending view of the first token
// satisfying match, or -1.
func (l *List) Index(match func(Token) bool) int {
	return slices.IndexFunc(l.Pending(), match)
}

// InsertFront places tokens at the front of the pending view.
func (l *List) InsertFront(tokens ...Token) {
	l.tokens = slices.Insert(l.tokens, l.head, tokens...)
}

// Len returns the number of pending tokens.
func (l *List) Len() int {
	return len(l.tokens) - l.head
}

// Pending returns the tokens not yet consumed.
func (l *List) Pending() []Token {
	return l.tokens[l.head:]
}

// Processed returns the tokens already consumed, in consumption order.
func (l *List) Processed() []Token {
	return l.tokens[:l.head]
}

// ReplaceFront swaps the first pending token for tokens.
func (l *List) ReplaceFront(tokens ...Token) {
	if l.Empty() {
		l.InsertFront(tokens...)
		return
	}

	l.tokens = slices.Replace(l.tokens, l.head, l.head+1, tokens...)
}

// Restore returns the list to a saved state.
func (l *List) Restore(s Snapshot) {
	l.tokens = slices.Clone(s.tokens)
	l.head = s.head
}

// Snapshot saves the current state.
func (l *List) Snapshot() Snapshot {
	return Snapshot{tokens: slices.Clone(l.tokens), head: l.head}
}
