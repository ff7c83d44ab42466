package ggtex

import "strings"

// Symbol is a named escape that substitutes a fixed glyph, such as \alpha.
type Symbol int

// Symbols in matching order. The order is significant: MatchSymbol accepts
// the first name that matches textually, so a name that is a prefix of a
// later one (cdot, cdots) shadows it.
const (
	SymbolAlpha Symbol = iota
	SymbolBeta
	SymbolGamma
	SymbolDelta
	SymbolEpsilon
	SymbolZeta
	SymbolEta
	SymbolTheta
	SymbolVartheta
	SymbolIota
	SymbolKappa
	SymbolLambda
	SymbolMu
	SymbolNu
	SymbolXi
	SymbolPi
	SymbolRho
	SymbolSigma
	SymbolVarsigma
	SymbolTau
	SymbolUpsilon
	SymbolPhi
	SymbolChi
	SymbolPsi
	SymbolOmega
	SymbolUpperGamma
	SymbolUpperDelta
	SymbolUpperTheta
	SymbolUpperLambda
	SymbolUpperXi
	SymbolUpperPi
	SymbolUpperSigma
	SymbolUpperUpsilon
	SymbolUpperPhi
	SymbolUpperPsi
	SymbolUpperOmega
	SymbolForall
	SymbolExists
	SymbolNi
	SymbolCong
	SymbolNeq
	SymbolEquiv
	SymbolApprox
	SymbolAleph
	SymbolIm
	SymbolRe
	SymbolWp
	SymbolOtimes
	SymbolOplus
	SymbolOslash
	SymbolCap
	SymbolCup
	SymbolSupseteq
	SymbolSupset
	SymbolSubseteq
	SymbolSubset
	SymbolInt
	SymbolIn
	SymbolO
	SymbolRfloor
	SymbolLceil
	SymbolNabla
	SymbolLfloor
	SymbolCdot
	SymbolLdots
	SymbolPerp
	SymbolNeg
	SymbolPrime
	SymbolWedge
	SymbolTimes
	SymbolNull
	SymbolRceil
	SymbolSurd
	SymbolMid
	SymbolVee
	SymbolVarpi
	SymbolCopyright
	SymbolLangle
	SymbolRangle
	SymbolNothing
	SymbolSim
	SymbolLeq
	SymbolInfty
	SymbolClubsuit
	SymbolDiamondsuit
	SymbolHeartsuit
	SymbolSpadesuit
	SymbolLeftrightarrow
	SymbolLeftarrow
	SymbolUparrow
	SymbolRightarrow
	SymbolDownarrow
	SymbolCirc
	SymbolPm
	SymbolGeq
	SymbolPropto
	SymbolPartial
	SymbolDiv
	SymbolCdots

	numSymbols
)

// symbolTable holds the control-sequence name and glyph of every symbol,
// indexed by Symbol. SymbolNothing has neither and is never matched.
var symbolTable = [numSymbols]struct {
	name  string
	glyph string
}{
	SymbolAlpha:          {"alpha", "α"},
	SymbolBeta:           {"beta", "β"},
	SymbolGamma:          {"gamma", "γ"},
	SymbolDelta:          {"delta", "δ"},
	SymbolEpsilon:        {"epsilon", "ε"},
	SymbolZeta:           {"zeta", "ζ"},
	SymbolEta:            {"eta", "η"},
	SymbolTheta:          {"theta", "θ"},
	SymbolVartheta:       {"vartheta", "ϑ"},
	SymbolIota:           {"iota", "ι"},
	SymbolKappa:          {"kappa", "κ"},
	SymbolLambda:         {"lambda", "λ"},
	SymbolMu:             {"mu", "μ"},
	SymbolNu:             {"nu", "ν"},
	SymbolXi:             {"xi", "ξ"},
	SymbolPi:             {"pi", "π"},
	SymbolRho:            {"rho", "ρ"},
	SymbolSigma:          {"sigma", "σ"},
	SymbolVarsigma:       {"varsigma", "ς"},
	SymbolTau:            {"tau", "τ"},
	SymbolUpsilon:        {"upsilon", "υ"},
	SymbolPhi:            {"phi", "φ"},
	SymbolChi:            {"chi", "χ"},
	SymbolPsi:            {"psi", "ψ"},
	SymbolOmega:          {"omega", "ω"},
	SymbolUpperGamma:     {"Gamma", "Γ"},
	SymbolUpperDelta:     {"Delta", "Δ"},
	SymbolUpperTheta:     {"Theta", "Θ"},
	SymbolUpperLambda:    {"Lambda", "Λ"},
	SymbolUpperXi:        {"Xi", "Ξ"},
	SymbolUpperPi:        {"Pi", "Π"},
	SymbolUpperSigma:     {"Sigma", "Σ"},
	SymbolUpperUpsilon:   {"Upsilon", "Υ"},
	SymbolUpperPhi:       {"Phi", "Φ"},
	SymbolUpperPsi:       {"Psi", "Ψ"},
	SymbolUpperOmega:     {"Omega", "Ω"},
	SymbolForall:         {"forall", "∀"},
	SymbolExists:         {"exists", "∃"},
	SymbolNi:             {"ni", "∋"},
	SymbolCong:           {"cong", "≅"},
	SymbolNeq:            {"neq", "≠"},
	SymbolEquiv:          {"equiv", "≡"},
	SymbolApprox:         {"approx", "≈"},
	SymbolAleph:          {"aleph", "ℵ"},
	SymbolIm:             {"Im", "ℑ"},
	SymbolRe:             {"Re", "ℜ"},
	SymbolWp:             {"wp", "℘"},
	SymbolOtimes:         {"otimes", "⊗"},
	SymbolOplus:          {"oplus", "⊕"},
	SymbolOslash:         {"oslash", "⊘"},
	SymbolCap:            {"cap", "∩"},
	SymbolCup:            {"cup", "∪"},
	SymbolSupseteq:       {"supseteq", "⊇"},
	SymbolSupset:         {"supset", "⊃"},
	SymbolSubseteq:       {"subseteq", "⊆"},
	SymbolSubset:         {"subset", "⊂"},
	SymbolInt:            {"int_", "∫"},
	SymbolIn:             {"in_", "∈"},
	SymbolO:              {"o", "○"},
	SymbolRfloor:         {"rfloor", "⌋"},
	SymbolLceil:          {"lceil", "⌈"},
	SymbolNabla:          {"nabla", "∇"},
	SymbolLfloor:         {"lfloor", "⌊"},
	SymbolCdot:           {"cdot", "⋅"},
	SymbolLdots:          {"ldots", "…"},
	SymbolPerp:           {"perp", "⊥"},
	SymbolNeg:            {"neg", "¬"},
	SymbolPrime:          {"prime", "′"},
	SymbolWedge:          {"wedge", "∧"},
	SymbolTimes:          {"times", "×"},
	SymbolNull:           {"Null", "∅"},
	SymbolRceil:          {"rceil", "⌉"},
	SymbolSurd:           {"surd", "√"},
	SymbolMid:            {"mid", "|"},
	SymbolVee:            {"vee", "∨"},
	SymbolVarpi:          {"varpi", "ϖ"},
	SymbolCopyright:      {"copyright", "©"},
	SymbolLangle:         {"langle", "⟨"},
	SymbolRangle:         {"rangle", "⟩"},
	SymbolNothing:        {"", ""},
	SymbolSim:            {"sim", "∼"},
	SymbolLeq:            {"leq", "≤"},
	SymbolInfty:          {"infty", "∞"},
	SymbolClubsuit:       {"clubsuit", "♣"},
	SymbolDiamondsuit:    {"diamondsuit", "♢"},
	SymbolHeartsuit:      {"heartsuit", "♡"},
	SymbolSpadesuit:      {"spadesuit", "♠"},
	SymbolLeftrightarrow: {"leftrightarrow", "↔"},
	SymbolLeftarrow:      {"leftarrow", "←"},
	SymbolUparrow:        {"uparrow", "↑"},
	SymbolRightarrow:     {"rightarrow", "→"},
	SymbolDownarrow:      {"downarrow", "↓"},
	SymbolCirc:           {"circ", "∘"},
	SymbolPm:             {"pm", "±"},
	SymbolGeq:            {"geq", "≥"},
	SymbolPropto:         {"propto", "∝"},
	SymbolPartial:        {"partial", "∂"},
	SymbolDiv:            {"div", "÷"},
	SymbolCdots:          {"cdots", "⋯"},
}

// String returns the control-sequence name of s without the backslash,
// or "nothing" for SymbolNothing.
func (s Symbol) String() string {
	if s < 0 || s >= numSymbols || s == SymbolNothing {
		return "nothing"
	}
	return symbolTable[s].name
}

// Symbols returns every matchable symbol in matching order.
func Symbols() []Symbol {
	out := make([]Symbol, 0, numSymbols-1)
	for s := Symbol(0); s < numSymbols; s++ {
		if s != SymbolNothing {
			out = append(out, s)
		}
	}
	return out
}

// MatchSymbol looks for a symbol name at expr[pos:], which follows the
// escape character. It returns the first symbol in table order whose name
// matches and the cursor advanced past the name. If nothing matches it
// returns SymbolNothing and pos unchanged.
func MatchSymbol(expr string, pos int) (Symbol, int) {
	if pos < 0 || pos > len(expr) {
		return SymbolNothing, pos
	}
	rest := expr[pos:]
	for s := Symbol(0); s < numSymbols; s++ {
		name := symbolTable[s].name
		if name == "" {
			continue
		}
		if strings.HasPrefix(rest, name) {
			return s, pos + len(name)
		}
	}
	return SymbolNothing, pos
}

// TranslateSymbol returns the glyph string for s, or "" for SymbolNothing
// and out-of-range values.
//
// Every symbol maps to its standard Unicode character. Labels written for
// older TeX-like label renderers may draw differently: the card suits
// (\clubsuit, \diamondsuit, \heartsuit, \spadesuit) used to be consumed
// without output, and \cong, \approx, \aleph, \oslash, \neg, \times,
// \langle and \rangle used to map to other code points.
func TranslateSymbol(s Symbol) string {
	if s < 0 || s >= numSymbols {
		return ""
	}
	return symbolTable[s].glyph
}
