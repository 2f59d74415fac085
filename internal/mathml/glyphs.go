package mathml

import "polymath/internal/token"

// glyphs maps symbolic kinds to the character reference placed inside
// their element. Gamma shares beta's code point and otimes is lexed as
// times; both are kept for output compatibility.
var glyphs = map[token.Kind]string{
	token.GreekAlpha:      "&#x3B1;",
	token.GreekBeta:       "&#x3B2;",
	token.GreekGamma:      "&#x3B2;",
	token.GreekUGamma:     "&#x393;",
	token.GreekDelta:      "&#x3B4;",
	token.GreekUDelta:     "&#x394;",
	token.GreekEpsilon:    "&#x3B5;",
	token.GreekVarEpsilon: "&#x25B;",
	token.GreekZeta:       "&#x3B6;",
	token.GreekEta:        "&#x3B7;",
	token.GreekTheta:      "&#x3B8;",
	token.GreekUTheta:     "&#x398;",
	token.GreekVarTheta:   "&#x3D1;",
	token.GreekIota:       "&#x3B9;",
	token.GreekKappa:      "&#x3BA;",
	token.GreekLambda:     "&#x3BB;",
	token.GreekULambda:    "&#x39B;",
	token.GreekMu:         "&#x3BC;",
	token.GreekNu:         "&#x3BD;",
	token.GreekXi:         "&#x3BE;",
	token.GreekUXi:        "&#x39E;",
	token.GreekPi:         "&#x3C0;",
	token.GreekUPi:        "&#x3A0;",
	token.GreekRho:        "&#x3C1;",
	token.GreekSigma:      "&#x3C3;",
	token.GreekUSigma:     "&#x3A3;",
	token.GreekTau:        "&#x3C4;",
	token.GreekUpsilon:    "&#x3C5;",
	token.GreekPhi:        "&#x3D5;",
	token.GreekUPhi:       "&#x3A6;",
	token.GreekVarPhi:     "&#x3C6;",
	token.GreekChi:        "&#x3C7;",
	token.GreekPsi:        "&#x3C8;",
	token.GreekUPsi:       "&#x3A8;",
	token.GreekOmega:      "&#x3C9;",
	token.GreekUOmega:     "&#x3A9;",

	token.OpPlus:      "+",
	token.OpMinus:     "-",
	token.OpCDot:      "&#x22C5;",
	token.OpAst:       "&#x2217;",
	token.OpStar:      "&#x22C6;",
	token.OpSlash:     "/",
	token.OpBackslash: `\`,
	token.OpTimes:     "&#xD7;",
	token.OpDiv:       "&#xF7;",
	token.OpLTimes:    "&#x22C9;",
	token.OpRTimes:    "&#x22CA;",
	token.OpBowtie:    "&#x22C8;",
	token.OpCirc:      "&#x2218;",
	token.OpOPlus:     "&#x2295;",
	token.OpOTimes:    "&#x2297;",
	token.OpODot:      "&#x2299;",
	token.OpSum:       "&#x2211;",
	token.OpProd:      "&#x220F;",
	token.OpWedge:     "&#x2227;",
	token.OpBigWedge:  "&#x22C0;",
	token.OpVee:       "&#x2228;",
	token.OpBigVee:    "&#x22C1;",
	token.OpCap:       "&#x2229;",
	token.OpBigCap:    "&#x22C2;",
	token.OpCup:       "&#x222A;",
	token.OpBigCup:    "&#x22C3;",

	token.MiscInt:       "&#x222B;",
	token.MiscOInt:      "&#x222E;",
	token.MiscDel:       "&#x2202;",
	token.MiscGrad:      "&#x2207;",
	token.MiscPlusMinus: "&#xB1;",
	token.MiscEmptySet:  "&#x2205;",
	token.MiscInfinity:  "&#x221E;",
	token.MiscAleph:     "&#x2135;",
	token.MiscTherefore: "&#x2234;",
	token.MiscBecause:   "&#x2235;",
	token.MiscLDots:     "...",
	token.MiscCDots:     "&#x22EF;",
	token.MiscVDots:     "&#x22EE;",
	token.MiscDDots:     "&#x22F1;",
	token.MiscAngle:     "&#x2220;",
	token.MiscFrown:     "&#x2322;",
	token.MiscTriangle:  "&#x25B3;",
	token.MiscDiamond:   "&#x22C4;",
	token.MiscSquare:    "&#x25A1;",
	token.MiscLFloor:    "&#x230A;",
	token.MiscRFloor:    "&#x230B;",
	token.MiscLCeiling:  "&#x2308;",
	token.MiscRCeiling:  "&#x2309;",
	token.MiscLim:       "lim",
	token.MiscCC:        "&#x2102;",
	token.MiscNN:        "&#x2115;",
	token.MiscQQ:        "&#x211A;",
	token.MiscRR:        "&#x211D;",
	token.MiscZZ:        "&#x2124;",

	token.RelEquals:    "=",
	token.RelNotEquals: "&#x2260;",
	token.RelLt:        "&lt;",
	token.RelGt:        "&gt;",
	token.RelLte:       "&#x2264;",
	token.RelGte:       "&#x2265;",
	token.RelPrec:      "&#x227A;",
	token.RelPrecEq:    "&#x2AAF;",
	token.RelSucc:      "&#x227B;",
	token.RelSuccEq:    "&#x2AB0;",
	token.RelIn:        "&#x2208;",
	token.RelNotIn:     "&#x2209;",
	token.RelSub:       "&#x2282;",
	token.RelSubEq:     "&#x2286;",
	token.RelSup:       "&#x2283;",
	token.RelSupEq:     "&#x2287;",
	token.RelEquiv:     "&#x2261;",
	token.RelCong:      "&#x2245;",
	token.RelApprox:    "&#x2248;",
	token.RelProp:      "&#x221D;",

	token.ArrowUp:               "&#x2191;",
	token.ArrowDown:             "&#x2193;",
	token.ArrowRight:            "&#x2192;",
	token.ArrowTo:               "&#x2192;",
	token.ArrowRightTail:        "&#x21A3;",
	token.ArrowRightTwoHead:     "&#x21A0;",
	token.ArrowRightTwoHeadTail: "&#x2916;",
	token.ArrowMapsTo:           "&#x21A6;",
	token.ArrowLeft:             "&#x2190;",
	token.ArrowLeftRight:        "&#x2194;",
	token.ArrowDoubleRight:      "&#x21D2;",
	token.ArrowDoubleLeft:       "&#x21D0;",
	token.ArrowDoubleLeftRight:  "&#x21D4;",

	token.LogicNot:     "&#xAC;",
	token.LogicImplies: "&#x21D2;",
	token.LogicIff:     "&#x21D4;",
	token.LogicForAll:  "&#x2200;",
	token.LogicExists:  "&#x2203;",
	token.LogicBot:     "&#x22A5;",
	token.LogicTop:     "&#x22A4;",
	token.LogicVDash:   "&#x22A2;",
	token.LogicModels:  "&#x22A8;",
}

// fixed holds kinds rendered as a complete fragment instead of one element.
// The "and"/"or"/"if" fragment keeps its misspelled closing element.
var fixed = map[token.Kind]string{
	token.RelMlt:              "<mi>m</mi><mo>&lt;</mo>",
	token.RelMgt:              "<mi>m</mi><mo>&gt;</mo>",
	token.MiscDoublePipes:     "<mrow><mo>&#x2223;</mo></mrow><mrow><mo>&#x2223;</mo></mrow>",
	token.MiscDoublePipesQuad: "<mrow><mo>|</mo><mo>&#xA0;&#xA0;</mo><mo>|</mo></mrow>",
	token.LogicAnd:            `<mrow><mspace width="1ex" /><mtext>and</mtext><msapce with="1ex" /></mrow>`,
	token.LogicOr:             `<mrow><mspace width="1ex" /><mtext>or</mtext><msapce with="1ex" /></mrow>`,
	token.LogicIf:             `<mrow><mspace width="1ex" /><mtext>if</mtext><msapce with="1ex" /></mrow>`,
}

var functionNames = map[token.Kind]string{
	token.FuncSin: "sin", token.FuncCos: "cos", token.FuncTan: "tan",
	token.FuncSec: "sec", token.FuncCsc: "csc", token.FuncCot: "cot",
	token.FuncArcsin: "arcsin", token.FuncArccos: "arccos", token.FuncArctan: "arctan",
	token.FuncSinh: "sinh", token.FuncCosh: "cosh", token.FuncTanh: "tanh",
	token.FuncSech: "sech", token.FuncCsch: "csch", token.FuncCoth: "coth",
	token.FuncExp: "exp", token.FuncLog: "log", token.FuncLn: "ln",
	token.FuncDet: "det", token.FuncDim: "dim", token.FuncMod: "mod",
	token.FuncGcd: "gcd", token.FuncLcm: "lcm", token.FuncLub: "lub",
	token.FuncGlb: "glb", token.FuncMin: "min", token.FuncMax: "max",
	token.FuncF: "f", token.FuncG: "g",
}

var leftDelims = map[token.Kind]string{
	token.LParen:      "<mo>(</mo>",
	token.LBracket:    "<mo>[</mo>",
	token.LBrace:      "<mo>{</mo>",
	token.LColonBrace: "",
	token.LAngle:      "<mo><</mo>",
}

var rightDelims = map[token.Kind]string{
	token.RParen:      "<mo>)</mo>",
	token.RBracket:    "<mo>]</mo>",
	token.RBrace:      "<mo>}</mo>",
	token.RColonBrace: "",
	token.RAngle:      "<mo>></mo>",
}

type accent struct {
	under bool
	mark  string
}

var accents = map[token.Kind]accent{
	token.UnaryHat:    {false, "^"},
	token.UnaryBar:    {false, "&#xAF;"},
	token.UnaryVec:    {false, "&#x2192;"},
	token.UnaryTilde:  {false, "~"},
	token.UnaryDot:    {false, "."},
	token.UnaryDDot:   {false, ".."},
	token.UnaryOBrace: {false, "&#x23DE;"},
	token.UnaryUl:     {true, "&#x332;"},
	token.UnaryUBrace: {true, "&#x23DF;"},
}

var fences = map[token.Kind][2]string{
	token.UnaryAbs:   {"|", "|"},
	token.UnaryFloor: {"&#x230A;", "&#x230B;"},
	token.UnaryCeil:  {"&#x2308;", "&#x2309;"},
	token.UnaryNorm:  {"&#x2225;", "&#x2225;"},
}
