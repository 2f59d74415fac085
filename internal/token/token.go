package token

import (
	"polymath/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Is reports whether the token has the given kind.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsLeftBracket reports whether the token opens a group.
func (t Token) IsLeftBracket() bool { return t.Kind.IsLeftBracket() }

// IsRightBracket reports whether the token closes a group.
func (t Token) IsRightBracket() bool { return t.Kind.IsRightBracket() }

// IsComma reports whether the token is a bare ',' symbol, the table column separator.
func (t Token) IsComma() bool { return t.Kind == Symbol && t.Text == "," }

// IsPipe reports whether the token text is a single '|', of any kind.
func (t Token) IsPipe() bool { return t.Text == "|" }

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")@" + t.Span.String()
}
