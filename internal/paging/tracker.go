package paging

// Token identifies one issued page request. Tokens increase monotonically.
type Token uint64

// Tracker issues request tokens and decides which completions are current.
// Only the most recently issued token is current; anything older is stale.
// It is not safe for concurrent use and is meant to live on the UI loop.
type Tracker struct {
	latest Token
}

// Issue returns a new token that supersedes every earlier one
func (t *Tracker) Issue() Token {
	t.latest++
	return t.latest
}

// IsCurrent reports whether tok is the latest issued token
func (t *Tracker) IsCurrent(tok Token) bool {
	return tok != 0 && tok == t.latest
}

// Latest returns the most recently issued token, zero before the first Issue
func (t *Tracker) Latest() Token {
	return t.latest
}
