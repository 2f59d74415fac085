package lexer

import "polymath/internal/token"

// pattern is one spelling of a token kind.
type pattern struct {
	text string
	kind token.Kind
}

// table is an ordered list of spellings. The first prefix match wins, so a
// short spelling listed before a longer one shadows it ("*" before "**").
// Reordering entries changes tokenization of existing inputs.
type table struct {
	name     string
	patterns []pattern
}

func (t table) match(c *Cursor) (pattern, bool) {
	for _, p := range t.patterns {
		if c.HasPrefix(p.text) {
			return p, true
		}
	}
	return pattern{}, false
}

var unaryTable = table{"unary", []pattern{
	{"hat", token.UnaryHat},
	{"bar", token.UnaryBar},
	{"overline", token.UnaryBar},
	{"ul", token.UnaryUl},
	{"underline", token.UnaryUl},
	{"vec", token.UnaryVec},
	{"tilde", token.UnaryTilde},
	{"dot", token.UnaryDot},
	{"ddot", token.UnaryDDot},
	{"ubrace", token.UnaryUBrace},
	{"underbrace", token.UnaryUBrace},
	{"obrace", token.UnaryOBrace},
	{"overbrace", token.UnaryOBrace},
	{"cancel", token.UnaryCancel},
	{"sqrt", token.UnarySqrt},
	{"text", token.UnaryText},
	{"abs", token.UnaryAbs},
	{"floor", token.UnaryFloor},
	{"ceil", token.UnaryCeil},
	{"norm", token.UnaryNorm},
}}

var binaryTable = table{"binary", []pattern{
	{"root", token.BinaryRoot},
	{"overset", token.BinaryOverset},
	{"underset", token.BinaryUnderset},
	{"color", token.BinaryColor},
}}

var arrowTable = table{"arrow", []pattern{
	{"uarr", token.ArrowUp},
	{"uparrow", token.ArrowUp},
	{"darr", token.ArrowDown},
	{"downarrow", token.ArrowDown},
	{"rarr", token.ArrowRight},
	{"rightarrow", token.ArrowRight},
	{"->", token.ArrowTo},
	{"to", token.ArrowTo},
	{">->", token.ArrowRightTail},
	{"rightarrowtail", token.ArrowRightTail},
	{"->>", token.ArrowRightTwoHead},
	{"twoheadrightarrow", token.ArrowRightTwoHead},
	{">->>", token.ArrowRightTwoHeadTail},
	{"twoheadrightarrowtail", token.ArrowRightTwoHeadTail},
	{"|->", token.ArrowMapsTo},
	{"mapsto", token.ArrowMapsTo},
	{"larr", token.ArrowLeft},
	{"leftarrow", token.ArrowLeft},
	{"harr", token.ArrowLeftRight},
	{"leftrightarrow", token.ArrowLeftRight},
	{"rArr", token.ArrowDoubleRight},
	{"Rightarrow", token.ArrowDoubleRight},
	{"lArr", token.ArrowDoubleLeft},
	{"Leftarrow", token.ArrowDoubleLeft},
	{"hArr", token.ArrowDoubleLeftRight},
	{"Leftrightarrow", token.ArrowDoubleLeftRight},
}}

// "ox"/"otimes" produce OpTimes and "vvv"/"bigvee" are never matched;
// both are kept for output compatibility.
var operationTable = table{"operation", []pattern{
	{"*", token.OpCDot},
	{"cdot", token.OpCDot},
	{"**", token.OpAst},
	{"ast", token.OpAst},
	{"***", token.OpStar},
	{"star", token.OpStar},
	{"//", token.OpSlash},
	{`\\`, token.OpBackslash},
	{"backslash", token.OpBackslash},
	{"setminus", token.OpBackslash},
	{"xx", token.OpTimes},
	{"times", token.OpTimes},
	{"-:", token.OpDiv},
	{"div", token.OpDiv},
	{"|><", token.OpLTimes},
	{"ltimes", token.OpLTimes},
	{"><|", token.OpRTimes},
	{"rtimes", token.OpRTimes},
	{"|><|", token.OpBowtie},
	{"bowtie", token.OpBowtie},
	{"@", token.OpCirc},
	{"circ", token.OpCirc},
	{"o+", token.OpOPlus},
	{"oplus", token.OpOPlus},
	{"ox", token.OpTimes},
	{"otimes", token.OpTimes},
	{"o.", token.OpODot},
	{"sum", token.OpSum},
	{"prod", token.OpProd},
	{"^^^", token.OpBigWedge},
	{"bigwedge", token.OpBigWedge},
	{"^^", token.OpWedge},
	{"wedge", token.OpWedge},
	{"vv", token.OpVee},
	{"vee", token.OpVee},
	{"nnn", token.OpBigCap},
	{"bigcap", token.OpBigCap},
	{"nn", token.OpCap},
	{"cap", token.OpCap},
	{"uuu", token.OpBigCup},
	{"bigcup", token.OpBigCup},
	{"uu", token.OpCup},
	{"cup", token.OpCup},
	{"+", token.OpPlus},
	{"-", token.OpMinus},
}}

var greekTable = table{"greek", []pattern{
	{"alpha", token.GreekAlpha},
	{"beta", token.GreekBeta},
	{"gamma", token.GreekGamma},
	{"Gamma", token.GreekUGamma},
	{"delta", token.GreekDelta},
	{"Delta", token.GreekUDelta},
	{"epsilon", token.GreekEpsilon},
	{"varepsilon", token.GreekVarEpsilon},
	{"zeta", token.GreekZeta},
	{"eta", token.GreekEta},
	{"theta", token.GreekTheta},
	{"Theta", token.GreekUTheta},
	{"vartheta", token.GreekVarTheta},
	{"iota", token.GreekIota},
	{"kappa", token.GreekKappa},
	{"lambda", token.GreekLambda},
	{"Lambda", token.GreekULambda},
	{"mu", token.GreekMu},
	{"nu", token.GreekNu},
	{"xi", token.GreekXi},
	{"Xi", token.GreekUXi},
	{"pi", token.GreekPi},
	{"Pi", token.GreekUPi},
	{"rho", token.GreekRho},
	{"sigma", token.GreekSigma},
	{"Sigma", token.GreekUSigma},
	{"tau", token.GreekTau},
	{"upsilon", token.GreekUpsilon},
	{"phi", token.GreekPhi},
	{"Phi", token.GreekUPhi},
	{"varphi", token.GreekVarPhi},
	{"chi", token.GreekChi},
	{"psi", token.GreekPsi},
	{"Psi", token.GreekUPsi},
	{"omega", token.GreekOmega},
	{"Omega", token.GreekUOmega},
}}

var miscTable = table{"misc", []pattern{
	{"int", token.MiscInt},
	{"oint", token.MiscOInt},
	{"del", token.MiscDel},
	{"partial", token.MiscDel},
	{"grad", token.MiscGrad},
	{"nabla", token.MiscGrad},
	{"+-", token.MiscPlusMinus},
	{"pm", token.MiscPlusMinus},
	{"O/", token.MiscEmptySet},
	{"emptyset", token.MiscEmptySet},
	{"oo", token.MiscInfinity},
	{"infty", token.MiscInfinity},
	{"aleph", token.MiscAleph},
	{":.", token.MiscTherefore},
	{"therefore", token.MiscTherefore},
	{":'", token.MiscBecause},
	{"because", token.MiscBecause},
	{"|...|", token.MiscLDots},
	{"|ldots|", token.MiscLDots},
	{"|cdots|", token.MiscCDots},
	{"vdots", token.MiscVDots},
	{"ddots", token.MiscDDots},
	{`|\ |`, token.MiscDoublePipes},
	{"|quad|", token.MiscDoublePipesQuad},
	{"/_", token.MiscAngle},
	{"angle", token.MiscAngle},
	{"frown", token.MiscFrown},
	{`/_\`, token.MiscTriangle},
	{"triangle", token.MiscTriangle},
	{"diamond", token.MiscDiamond},
	{"square", token.MiscSquare},
	{"|__", token.MiscLFloor},
	{"lfloor", token.MiscLFloor},
	{"__|", token.MiscRFloor},
	{"rfloor", token.MiscRFloor},
	{"|~", token.MiscLCeiling},
	{"lceiling", token.MiscLCeiling},
	{"~|", token.MiscRCeiling},
	{"rceiling", token.MiscRCeiling},
	{"lim", token.MiscLim},
	{"CC", token.MiscCC},
	{"NN", token.MiscNN},
	{"QQ", token.MiscQQ},
	{"RR", token.MiscRR},
	{"ZZ", token.MiscZZ},
}}

// "in" produces RelNotIn; see the note on operationTable.
var relationalTable = table{"relational", []pattern{
	{"=", token.RelEquals},
	{"!=", token.RelNotEquals},
	{"ne", token.RelNotEquals},
	{"<", token.RelLt},
	{"lt", token.RelLt},
	{">", token.RelGt},
	{"gt", token.RelGt},
	{"<=", token.RelLte},
	{"le", token.RelLte},
	{">=", token.RelGte},
	{"ge", token.RelGte},
	{"mlt", token.RelMlt},
	{"ll", token.RelMlt},
	{"mgt", token.RelMgt},
	{"gg", token.RelMgt},
	{"-<", token.RelPrec},
	{"prec", token.RelPrec},
	{"-<=", token.RelPrecEq},
	{"preceq", token.RelPrecEq},
	{">-", token.RelSucc},
	{"subb", token.RelSucc},
	{">-=", token.RelSuccEq},
	{"succeq", token.RelSuccEq},
	{"in", token.RelNotIn},
	{"!in", token.RelNotIn},
	{"notin", token.RelNotIn},
	{"sub", token.RelSub},
	{"subset", token.RelSub},
	{"sup", token.RelSup},
	{"supset", token.RelSup},
	{"sube", token.RelSubEq},
	{"subseteq", token.RelSubEq},
	{"supe", token.RelSupEq},
	{"supseteq", token.RelSupEq},
	{"-=", token.RelEquiv},
	{"equiv", token.RelEquiv},
	{"~=", token.RelCong},
	{"cong", token.RelCong},
	{"~~", token.RelApprox},
	{"approx", token.RelApprox},
	{"prop", token.RelProp},
	{"propto", token.RelProp},
}}

var logicalTable = table{"logical", []pattern{
	{"and", token.LogicAnd},
	{"or", token.LogicOr},
	{"not", token.LogicNot},
	{"neq", token.LogicNot},
	{"=>", token.LogicImplies},
	{"implies", token.LogicImplies},
	{"if", token.LogicIf},
	{"<=>", token.LogicIff},
	{"iff", token.LogicIff},
	{"AA", token.LogicForAll},
	{"forall", token.LogicForAll},
	{"EE", token.LogicExists},
	{"exists", token.LogicExists},
	{"_|_", token.LogicBot},
	{"bot", token.LogicBot},
	{"TT", token.LogicTop},
	{"top", token.LogicTop},
	{"|--", token.LogicVDash},
	{"vdash", token.LogicVDash},
	{"|==", token.LogicModels},
	{"models", token.LogicModels},
}}

var functionTable = table{"function", []pattern{
	{"sin", token.FuncSin},
	{"cos", token.FuncCos},
	{"tan", token.FuncTan},
	{"sec", token.FuncSec},
	{"csc", token.FuncCsc},
	{"cot", token.FuncCot},
	{"arcsin", token.FuncArcsin},
	{"arccos", token.FuncArccos},
	{"arctan", token.FuncArctan},
	{"sinh", token.FuncSinh},
	{"cosh", token.FuncCosh},
	{"tanh", token.FuncTanh},
	{"sech", token.FuncSech},
	{"csch", token.FuncCsch},
	{"coth", token.FuncCoth},
	{"exp", token.FuncExp},
	{"log", token.FuncLog},
	{"ln", token.FuncLn},
	{"det", token.FuncDet},
	{"dim", token.FuncDim},
	{"mod", token.FuncMod},
	{"gcd", token.FuncGcd},
	{"lcm", token.FuncLcm},
	{"lub", token.FuncLub},
	{"glb", token.FuncGlb},
	{"min", token.FuncMin},
	{"max", token.FuncMax},
	{"f", token.FuncF},
	{"g", token.FuncG},
}}

var leftBracketTable = table{"lbrace", []pattern{
	{"{:", token.LColonBrace},
	{"(", token.LParen},
	{"[", token.LBracket},
	{"{", token.LBrace},
	{"<<", token.LAngle},
	{"langle", token.LAngle},
}}

var rightBracketTable = table{"rbrace", []pattern{
	{":}", token.RColonBrace},
	{")", token.RParen},
	{"]", token.RBracket},
	{"}", token.RBrace},
	{">>", token.RAngle},
	{"rangle", token.RAngle},
}}

// tables lists the pattern groups in the order the lexer consults them.
var tables = []table{
	unaryTable,
	binaryTable,
	arrowTable,
	operationTable,
	greekTable,
	miscTable,
	relationalTable,
	logicalTable,
	functionTable,
	leftBracketTable,
	rightBracketTable,
}
