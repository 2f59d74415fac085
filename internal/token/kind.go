package token

// Kind represents the category and member of a source token.
type Kind uint16

const (
	// None is the empty operand synthesized at end of input.
	None Kind = iota

	// Division is the structural '/' (fraction bar).
	Division // /
	// Underscore is the structural '_' (subscript).
	Underscore // _
	// Hat is the structural '^' (superscript).
	Hat // ^

	// Number is a numeric literal.
	Number
	// Text is a double-quoted text literal.
	Text
	// Symbol is any single scalar value no table recognizes.
	Symbol

	greekBegin
	GreekAlpha   // alpha
	GreekBeta    // beta
	GreekGamma   // gamma
	GreekUGamma  // Gamma
	GreekDelta   // delta
	GreekUDelta  // Delta
	GreekEpsilon // epsilon
	GreekVarEpsilon
	GreekZeta
	GreekEta
	GreekTheta
	GreekUTheta
	GreekVarTheta
	GreekIota
	GreekKappa
	GreekLambda
	GreekULambda
	GreekMu
	GreekNu
	GreekXi
	GreekUXi
	GreekPi
	GreekUPi
	GreekRho
	GreekSigma
	GreekUSigma
	GreekTau
	GreekUpsilon
	GreekPhi
	GreekUPhi
	GreekVarPhi
	GreekChi
	GreekPsi
	GreekUPsi
	GreekOmega
	GreekUOmega
	greekEnd

	opBegin
	OpPlus  // +
	OpMinus // -
	OpCDot  // *
	OpAst   // **
	OpStar  // ***
	OpSlash // //
	OpBackslash
	OpTimes // xx
	OpDiv   // -:
	OpLTimes
	OpRTimes
	OpBowtie
	OpCirc
	OpOPlus
	OpOTimes
	OpODot
	OpSum  // sum
	OpProd // prod
	OpWedge
	OpBigWedge
	OpVee
	OpBigVee
	OpCap
	OpBigCap
	OpCup
	OpBigCup
	opEnd

	miscBegin
	MiscInt
	MiscOInt
	MiscDel
	MiscGrad
	MiscPlusMinus
	MiscEmptySet
	MiscInfinity
	MiscAleph
	MiscTherefore
	MiscBecause
	MiscLDots
	MiscCDots
	MiscVDots
	MiscDDots
	MiscDoublePipes
	MiscDoublePipesQuad
	MiscAngle
	MiscFrown
	MiscTriangle
	MiscDiamond
	MiscSquare
	MiscLFloor
	MiscRFloor
	MiscLCeiling
	MiscRCeiling
	MiscLim // lim
	MiscCC
	MiscNN
	MiscQQ
	MiscRR
	MiscZZ
	miscEnd

	relBegin
	RelEquals // =
	RelNotEquals
	RelLt
	RelGt
	RelLte
	RelGte
	RelMlt
	RelMgt
	RelPrec
	RelPrecEq
	RelSucc
	RelSuccEq
	RelIn
	RelNotIn
	RelSub
	RelSup
	RelSubEq
	RelSupEq
	RelEquiv
	RelCong
	RelApprox
	RelProp
	relEnd

	arrowBegin
	ArrowUp
	ArrowDown
	ArrowRight
	ArrowTo
	ArrowRightTail
	ArrowRightTwoHead
	ArrowRightTwoHeadTail
	ArrowMapsTo
	ArrowLeft
	ArrowLeftRight
	ArrowDoubleRight
	ArrowDoubleLeft
	ArrowDoubleLeftRight
	arrowEnd

	logicBegin
	LogicAnd
	LogicOr
	LogicNot
	LogicImplies
	LogicIf
	LogicIff
	LogicForAll
	LogicExists
	LogicBot
	LogicTop
	LogicVDash
	LogicModels
	logicEnd

	funcBegin
	FuncSin
	FuncCos
	FuncTan
	FuncSec
	FuncCsc
	FuncCot
	FuncArcsin
	FuncArccos
	FuncArctan
	FuncSinh
	FuncCosh
	FuncTanh
	FuncSech
	FuncCsch
	FuncCoth
	FuncExp
	FuncLog
	FuncLn
	FuncDet
	FuncDim
	FuncMod
	FuncGcd
	FuncLcm
	FuncLub
	FuncGlb
	FuncMin
	FuncMax
	FuncF
	FuncG
	funcEnd

	lbracketBegin
	LParen      // (
	LBracket    // [
	LBrace      // {
	LColonBrace // {:
	LAngle      // <<
	lbracketEnd

	rbracketBegin
	RParen      // )
	RBracket    // ]
	RBrace      // }
	RColonBrace // :}
	RAngle      // >>
	rbracketEnd

	unaryBegin
	UnaryHat
	UnaryBar
	UnaryUl
	UnaryVec
	UnaryTilde
	UnaryDot
	UnaryDDot
	UnaryUBrace
	UnaryOBrace
	UnaryCancel
	UnarySqrt
	UnaryText
	UnaryAbs
	UnaryFloor
	UnaryCeil
	UnaryNorm
	unaryEnd

	binaryBegin
	BinaryRoot
	BinaryOverset
	BinaryUnderset
	BinaryColor
	binaryEnd
)

// Category groups kinds the way the lexer tables and the renderer see them.
type Category uint8

const (
	CatNone Category = iota
	CatStructural
	CatNumber
	CatText
	CatSymbol
	CatGreek
	CatOperation
	CatMisc
	CatRelational
	CatArrow
	CatLogical
	CatFunction
	CatLeftBracket
	CatRightBracket
	CatUnaryOperator
	CatBinaryOperator
)

var categoryNames = [...]string{
	CatNone:           "None",
	CatStructural:     "Structural",
	CatNumber:         "Number",
	CatText:           "Text",
	CatSymbol:         "Symbol",
	CatGreek:          "Greek",
	CatOperation:      "Operation",
	CatMisc:           "Misc",
	CatRelational:     "Relational",
	CatArrow:          "Arrow",
	CatLogical:        "Logical",
	CatFunction:       "Function",
	CatLeftBracket:    "LeftBracket",
	CatRightBracket:   "RightBracket",
	CatUnaryOperator:  "UnaryOperator",
	CatBinaryOperator: "BinaryOperator",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(?)"
}

func in(k, begin, end Kind) bool {
	return k > begin && k < end
}

// Category reports which category k belongs to.
func (k Kind) Category() Category {
	switch {
	case k == None:
		return CatNone
	case k == Division, k == Underscore, k == Hat:
		return CatStructural
	case k == Number:
		return CatNumber
	case k == Text:
		return CatText
	case k == Symbol:
		return CatSymbol
	case in(k, greekBegin, greekEnd):
		return CatGreek
	case in(k, opBegin, opEnd):
		return CatOperation
	case in(k, miscBegin, miscEnd):
		return CatMisc
	case in(k, relBegin, relEnd):
		return CatRelational
	case in(k, arrowBegin, arrowEnd):
		return CatArrow
	case in(k, logicBegin, logicEnd):
		return CatLogical
	case in(k, funcBegin, funcEnd):
		return CatFunction
	case in(k, lbracketBegin, lbracketEnd):
		return CatLeftBracket
	case in(k, rbracketBegin, rbracketEnd):
		return CatRightBracket
	case in(k, unaryBegin, unaryEnd):
		return CatUnaryOperator
	case in(k, binaryBegin, binaryEnd):
		return CatBinaryOperator
	}
	return CatNone
}

// IsLeftBracket reports whether k opens a group.
func (k Kind) IsLeftBracket() bool { return in(k, lbracketBegin, lbracketEnd) }

// IsRightBracket reports whether k closes a group.
func (k Kind) IsRightBracket() bool { return in(k, rbracketBegin, rbracketEnd) }

// IsUnary reports whether k is a unary operator (one operand).
func (k Kind) IsUnary() bool { return in(k, unaryBegin, unaryEnd) }

// IsBinary reports whether k is a binary operator (two operands).
func (k Kind) IsBinary() bool { return in(k, binaryBegin, binaryEnd) }

// IsBigOperator reports whether sub/superscripts of k go under/over it.
func (k Kind) IsBigOperator() bool {
	switch k {
	case OpSum, OpProd, OpBigWedge, OpBigCap, OpBigCup, MiscLim:
		return true
	default:
		return false
	}
}

// Valid reports whether k is a real member and not a range marker.
func (k Kind) Valid() bool {
	return k == None || k.Category() != CatNone
}
