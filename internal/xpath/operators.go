package xpath

// Arithmetic: (Number, Number) -> Number. Div renders the XPath keyword
// " div ", since XPath 1.0 reserves "/" for node-path navigation.

func Add(a, b Expr) (Expr, error) { return numberOp("+", " + ", a, b) }
func Sub(a, b Expr) (Expr, error) { return numberOp("-", " - ", a, b) }
func Mul(a, b Expr) (Expr, error) { return numberOp("*", " * ", a, b) }
func Div(a, b Expr) (Expr, error) { return numberOp("div", " div ", a, b) }

func MustAdd(a, b Expr) Expr { return Must(Add(a, b)) }
func MustSub(a, b Expr) Expr { return Must(Sub(a, b)) }
func MustMul(a, b Expr) Expr { return Must(Mul(a, b)) }
func MustDiv(a, b Expr) Expr { return Must(Div(a, b)) }

func numberOp(op, sym string, a, b Expr) (Expr, error) {
	if a == nil || b == nil {
		return nil, missingOperand(op)
	}
	if !compatible(a.Kind(), Number) || !compatible(b.Kind(), Number) {
		return nil, wrongKind(op, Number, a, b)
	}
	return lit(Number, a.Render()+sym+b.Render()), nil
}

// Comparison.
//
// Eq/Ne accept either (Number-like, Number-like) or (Text, Text) operand
// pairs; Lt/Le/Gt/Ge require both operands to be Number-like. Number-like
// means Number, Int or Any: count-selected and int() results compare
// directly against integer literals without an intervening number() cast.
// An Any operand also counts as Text for Eq/Ne.

func isNumberLike(k Kind) bool { return k == Number || k == Int || k == Any }

func Eq(a, b Expr) (Expr, error) { return equalityOp(" = ", a, b) }
func Ne(a, b Expr) (Expr, error) { return equalityOp(" != ", a, b) }

func MustEq(a, b Expr) Expr { return Must(Eq(a, b)) }
func MustNe(a, b Expr) Expr { return Must(Ne(a, b)) }

func equalityOp(sym string, a, b Expr) (Expr, error) {
	if a == nil || b == nil {
		return nil, missingOperand("eq/ne")
	}
	ak, bk := a.Kind(), b.Kind()
	numeric := isNumberLike(ak) && isNumberLike(bk)
	textual := (ak == Text || ak == Any) && (bk == Text || bk == Any)
	if !numeric && !textual {
		return nil, wrongKind("eq/ne", Number, a, b)
	}
	return lit(Bool, a.Render()+sym+b.Render()), nil
}

func Lt(a, b Expr) (Expr, error) { return numberCompareOp(" < ", a, b) }
func Le(a, b Expr) (Expr, error) { return numberCompareOp(" <= ", a, b) }
func Gt(a, b Expr) (Expr, error) { return numberCompareOp(" > ", a, b) }
func Ge(a, b Expr) (Expr, error) { return numberCompareOp(" >= ", a, b) }

func MustLt(a, b Expr) Expr { return Must(Lt(a, b)) }
func MustLe(a, b Expr) Expr { return Must(Le(a, b)) }
func MustGt(a, b Expr) Expr { return Must(Gt(a, b)) }
func MustGe(a, b Expr) Expr { return Must(Ge(a, b)) }

func numberCompareOp(sym string, a, b Expr) (Expr, error) {
	if a == nil || b == nil {
		return nil, missingOperand("compare")
	}
	if !isNumberLike(a.Kind()) || !isNumberLike(b.Kind()) {
		return nil, wrongKind("compare", Number, a, b)
	}
	return lit(Bool, a.Render()+sym+b.Render()), nil
}

// Logical: (Bool, Bool) -> Bool.

func And_(a, b Expr) (Expr, error) { return boolOp(" and ", a, b) }
func Or_(a, b Expr) (Expr, error)  { return boolOp(" or ", a, b) }

func MustAnd(a, b Expr) Expr { return Must(And_(a, b)) }
func MustOr(a, b Expr) Expr  { return Must(Or_(a, b)) }

func boolOp(sym string, a, b Expr) (Expr, error) {
	if a == nil || b == nil {
		return nil, missingOperand("and/or")
	}
	if !compatible(a.Kind(), Bool) || !compatible(b.Kind(), Bool) {
		return nil, wrongKind("and/or", Bool, a, b)
	}
	return lit(Bool, a.Render()+sym+b.Render()), nil
}

func Not_(a Expr) (Expr, error) {
	if a == nil {
		return nil, missingOperand("not")
	}
	if !compatible(a.Kind(), Bool) {
		return nil, wrongKind("not", Bool, a)
	}
	return lit(Bool, "not("+a.Render()+")"), nil
}

func MustNot(a Expr) Expr { return Must(Not_(a)) }
