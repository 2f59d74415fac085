package fuzztests

import (
	"testing"

	"polymath/internal/lexer"
	"polymath/internal/testkit"
)

func FuzzLexerCoverage(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		src := clampInput(input)
		toks := lexer.Tokenize(src)
		if err := testkit.CheckTokenCoverage(src, toks); err != nil {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(src, 200))
		}
	})
}
