package treefmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"polymath/internal/mathml"
	"polymath/internal/source"
	"polymath/internal/token"
)

// TokenOptions controls pretty token output.
type TokenOptions struct {
	Color bool
}

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind     string      `json:"kind"`
	Category string      `json:"category"`
	Text     string      `json:"text"`
	Span     source.Span `json:"span"`
	Renders  string      `json:"renders,omitempty"`
}

var categoryColors = map[token.Category]*color.Color{
	token.CatStructural:     color.New(color.FgMagenta, color.Bold),
	token.CatNumber:         color.New(color.FgCyan),
	token.CatText:           color.New(color.FgGreen),
	token.CatGreek:          color.New(color.FgYellow),
	token.CatFunction:       color.New(color.FgBlue),
	token.CatLeftBracket:    color.New(color.FgHiBlack, color.Bold),
	token.CatRightBracket:   color.New(color.FgHiBlack, color.Bold),
	token.CatUnaryOperator:  color.New(color.FgRed),
	token.CatBinaryOperator: color.New(color.FgRed, color.Bold),
}

// FormatTokensPretty prints one token per line:
//
//	  1: Number       "12"   1:1-1:3  number
//
// The text column is padded by display width so wide runes stay aligned.
func FormatTokensPretty(w io.Writer, tokens []token.Token, text *source.Text, opts TokenOptions) error {
	textWidth := 0
	for _, tok := range tokens {
		if n := runewidth.StringWidth(strconv.Quote(tok.Text)); n > textWidth {
			textWidth = n
		}
	}

	for i, tok := range tokens {
		kind := fmt.Sprintf("%-18s", tok.Kind.String())
		if opts.Color {
			if c, ok := categoryColors[tok.Kind.Category()]; ok {
				kind = c.Sprint(kind)
			}
		}
		quoted := strconv.Quote(tok.Text)
		pad := strings.Repeat(" ", textWidth-runewidth.StringWidth(quoted))

		start, end := text.Resolve(tok.Span)
		line := fmt.Sprintf("%3d: %s %s%s  %s-%s  %s", i+1, kind, quoted, pad, start, end, tok.Kind.Category())
		if r := mathml.Describe(tok.Kind); r != "" {
			line += "  → " + r
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the token list as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:     tok.Kind.String(),
			Category: tok.Kind.Category().String(),
			Text:     tok.Text,
			Span:     tok.Span,
			Renders:  mathml.Describe(tok.Kind),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// TokensLine is the one-line form used in trace dumps: Kind(text) Kind(text) ...
func TokensLine(tokens []token.Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Kind.String())
		sb.WriteByte('(')
		sb.WriteString(tok.Text)
		sb.WriteByte(')')
	}
	return sb.String()
}
