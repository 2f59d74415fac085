package token

var kindNames = map[Kind]string{
	None:       "None",
	Division:   "Division",
	Underscore: "Underscore",
	Hat:        "Hat",
	Number:     "Number",
	Text:       "Text",
	Symbol:     "Symbol",

	GreekAlpha: "Alpha", GreekBeta: "Beta", GreekGamma: "Gamma", GreekUGamma: "UGamma",
	GreekDelta: "Delta", GreekUDelta: "UDelta", GreekEpsilon: "Epsilon", GreekVarEpsilon: "VarEpsilon",
	GreekZeta: "Zeta", GreekEta: "Eta", GreekTheta: "Theta", GreekUTheta: "UTheta",
	GreekVarTheta: "VarTheta", GreekIota: "Iota", GreekKappa: "Kappa", GreekLambda: "Lambda",
	GreekULambda: "ULambda", GreekMu: "Mu", GreekNu: "Nu", GreekXi: "Xi", GreekUXi: "UXi",
	GreekPi: "Pi", GreekUPi: "UPi", GreekRho: "Rho", GreekSigma: "Sigma", GreekUSigma: "USigma",
	GreekTau: "Tau", GreekUpsilon: "Upsilon", GreekPhi: "Phi", GreekUPhi: "UPhi",
	GreekVarPhi: "VarPhi", GreekChi: "Chi", GreekPsi: "Psi", GreekUPsi: "UPsi",
	GreekOmega: "Omega", GreekUOmega: "UOmega",

	OpPlus: "Plus", OpMinus: "Minus", OpCDot: "CDot", OpAst: "Ast", OpStar: "Star",
	OpSlash: "Slash", OpBackslash: "Backslash", OpTimes: "Times", OpDiv: "Div",
	OpLTimes: "LTimes", OpRTimes: "RTimes", OpBowtie: "Bowtie", OpCirc: "Circ",
	OpOPlus: "OPlus", OpOTimes: "OTimes", OpODot: "ODot", OpSum: "Sum", OpProd: "Prod",
	OpWedge: "Wedge", OpBigWedge: "BigWedge", OpVee: "Vee", OpBigVee: "BigVee",
	OpCap: "Cap", OpBigCap: "BigCap", OpCup: "Cup", OpBigCup: "BigCup",

	MiscInt: "Int", MiscOInt: "OInt", MiscDel: "Del", MiscGrad: "Grad",
	MiscPlusMinus: "PlusMinus", MiscEmptySet: "EmptySet", MiscInfinity: "Infinity",
	MiscAleph: "Aleph", MiscTherefore: "Therefore", MiscBecause: "Because",
	MiscLDots: "LDots", MiscCDots: "CDots", MiscVDots: "VDots", MiscDDots: "DDots",
	MiscDoublePipes: "DoublePipes", MiscDoublePipesQuad: "DoublePipesQuad",
	MiscAngle: "Angle", MiscFrown: "Frown", MiscTriangle: "Triangle", MiscDiamond: "Diamond",
	MiscSquare: "Square", MiscLFloor: "LFloor", MiscRFloor: "RFloor",
	MiscLCeiling: "LCeiling", MiscRCeiling: "RCeiling", MiscLim: "Lim",
	MiscCC: "CC", MiscNN: "NN", MiscQQ: "QQ", MiscRR: "RR", MiscZZ: "ZZ",

	RelEquals: "Equals", RelNotEquals: "NotEquals", RelLt: "Lt", RelGt: "Gt",
	RelLte: "Lte", RelGte: "Gte", RelMlt: "Mlt", RelMgt: "Mgt", RelPrec: "Prec",
	RelPrecEq: "PrecEq", RelSucc: "Succ", RelSuccEq: "SuccEq", RelIn: "In",
	RelNotIn: "NotIn", RelSub: "Sub", RelSup: "Sup", RelSubEq: "SubEq", RelSupEq: "SupEq",
	RelEquiv: "Equiv", RelCong: "Cong", RelApprox: "Approx", RelProp: "Prop",

	ArrowUp: "UpArrow", ArrowDown: "DownArrow", ArrowRight: "RightArrow", ArrowTo: "ToArrow",
	ArrowRightTail: "RightArrowTail", ArrowRightTwoHead: "TwoHeadRightArrow",
	ArrowRightTwoHeadTail: "TwoHeadRightArrowTail", ArrowMapsTo: "MapsTo",
	ArrowLeft: "LeftArrow", ArrowLeftRight: "LeftRightArrow",
	ArrowDoubleRight: "DoubleRightArrow", ArrowDoubleLeft: "DoubleLeftArrow",
	ArrowDoubleLeftRight: "DoubleLeftRightArrow",

	LogicAnd: "And", LogicOr: "Or", LogicNot: "Not", LogicImplies: "Implies",
	LogicIf: "If", LogicIff: "Iff", LogicForAll: "ForAll", LogicExists: "Exists",
	LogicBot: "Bot", LogicTop: "Top", LogicVDash: "VDash", LogicModels: "Models",

	FuncSin: "Sin", FuncCos: "Cos", FuncTan: "Tan", FuncSec: "Sec", FuncCsc: "Csc",
	FuncCot: "Cot", FuncArcsin: "Arcsin", FuncArccos: "Arccos", FuncArctan: "Arctan",
	FuncSinh: "Sinh", FuncCosh: "Cosh", FuncTanh: "Tanh", FuncSech: "Sech",
	FuncCsch: "Csch", FuncCoth: "Coth", FuncExp: "Exp", FuncLog: "Log", FuncLn: "Ln",
	FuncDet: "Det", FuncDim: "Dim", FuncMod: "Mod", FuncGcd: "Gcd", FuncLcm: "Lcm",
	FuncLub: "Lub", FuncGlb: "Glb", FuncMin: "Min", FuncMax: "Max", FuncF: "F", FuncG: "G",

	LParen: "LParen", LBracket: "LBracket", LBrace: "LBrace", LColonBrace: "LColonBrace", LAngle: "LAngle",
	RParen: "RParen", RBracket: "RBracket", RBrace: "RBrace", RColonBrace: "RColonBrace", RAngle: "RAngle",

	UnaryHat: "UHat", UnaryBar: "Bar", UnaryUl: "Ul", UnaryVec: "Vec", UnaryTilde: "Tilde",
	UnaryDot: "Dot", UnaryDDot: "DDot", UnaryUBrace: "UBrace", UnaryOBrace: "OBrace",
	UnaryCancel: "Cancel", UnarySqrt: "Sqrt", UnaryText: "UText", UnaryAbs: "Abs",
	UnaryFloor: "Floor", UnaryCeil: "Ceil", UnaryNorm: "Norm",

	BinaryRoot: "Root", BinaryOverset: "Overset", BinaryUnderset: "Underset", BinaryColor: "Color",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}
