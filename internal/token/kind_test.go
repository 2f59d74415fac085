package token_test

import (
	"testing"

	"polymath/internal/token"
)

func TestKindCategories(t *testing.T) {
	cases := []struct {
		k    token.Kind
		want token.Category
	}{
		{token.None, token.CatNone},
		{token.Division, token.CatStructural},
		{token.Hat, token.CatStructural},
		{token.Number, token.CatNumber},
		{token.Text, token.CatText},
		{token.Symbol, token.CatSymbol},
		{token.GreekAlpha, token.CatGreek},
		{token.GreekUOmega, token.CatGreek},
		{token.OpPlus, token.CatOperation},
		{token.OpBigCup, token.CatOperation},
		{token.MiscLim, token.CatMisc},
		{token.RelProp, token.CatRelational},
		{token.ArrowTo, token.CatArrow},
		{token.LogicModels, token.CatLogical},
		{token.FuncG, token.CatFunction},
		{token.LColonBrace, token.CatLeftBracket},
		{token.RAngle, token.CatRightBracket},
		{token.UnarySqrt, token.CatUnaryOperator},
		{token.BinaryColor, token.CatBinaryOperator},
	}
	for _, c := range cases {
		if got := c.k.Category(); got != c.want {
			t.Errorf("%v.Category() = %v, want %v", c.k, got, c.want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !token.LAngle.IsLeftBracket() || token.LAngle.IsRightBracket() {
		t.Fatalf("LAngle should be a left bracket only")
	}
	if !token.RColonBrace.IsRightBracket() {
		t.Fatalf("RColonBrace should be a right bracket")
	}
	if !token.UnaryAbs.IsUnary() || token.UnaryAbs.IsBinary() {
		t.Fatalf("abs should be unary only")
	}
	if !token.BinaryRoot.IsBinary() {
		t.Fatalf("root should be binary")
	}
	for _, k := range []token.Kind{token.OpSum, token.OpProd, token.OpBigWedge, token.OpBigCap, token.OpBigCup, token.MiscLim} {
		if !k.IsBigOperator() {
			t.Errorf("%v should be a big operator", k)
		}
	}
	if token.OpBigVee.IsBigOperator() || token.OpPlus.IsBigOperator() {
		t.Errorf("BigVee and Plus are not big operators")
	}
}

func TestEveryKindNamed(t *testing.T) {
	for k := token.None; k <= token.BinaryColor; k++ {
		if !k.Valid() {
			continue
		}
		if k.String() == "Kind(?)" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestTokenHelpers(t *testing.T) {
	comma := token.Token{Kind: token.Symbol, Text: ","}
	if !comma.IsComma() {
		t.Fatalf("expected comma")
	}
	if (token.Token{Kind: token.Text, Text: ","}).IsComma() {
		t.Fatalf("text token is not a separator comma")
	}
	if !(token.Token{Kind: token.Text, Text: "|"}).IsPipe() {
		t.Fatalf("pipe check is kind-agnostic")
	}
}
