package xpath

// Function nodes. Each renders "name(args...)" with ", " between arguments.

// Abs_ renders abs(X). Number -> Number.
func Abs_(x Expr) (Expr, error) {
	if x == nil {
		return nil, missingOperand("abs")
	}
	if !compatible(x.Kind(), Number) {
		return nil, wrongKind("abs", Number, x)
	}
	return lit(Number, "abs("+x.Render()+")"), nil
}

func MustAbs(x Expr) Expr { return Must(Abs_(x)) }

// Round_ renders round(X, N). (Number, Number) -> Number.
func Round_(x, places Expr) (Expr, error) {
	if x == nil || places == nil {
		return nil, missingOperand("round")
	}
	if !compatible(x.Kind(), Number) || !compatible(places.Kind(), Number) {
		return nil, wrongKind("round", Number, x, places)
	}
	return lit(Number, "round("+x.Render()+", "+places.Render()+")"), nil
}

func MustRound(x, places Expr) Expr { return Must(Round_(x, places)) }

// IntF renders int(X). Any -> Int.
func IntF(x Expr) (Expr, error) {
	if x == nil {
		return nil, missingOperand("int")
	}
	return lit(Int, "int("+x.Render()+")"), nil
}

func MustIntF(x Expr) Expr { return Must(IntF(x)) }

// Number_ renders number(X). Any -> Number.
func Number_(x Expr) (Expr, error) {
	if x == nil {
		return nil, missingOperand("number")
	}
	return lit(Number, "number("+x.Render()+")"), nil
}

func MustNumber(x Expr) Expr { return Must(Number_(x)) }

// Pow_ renders pow(X, Y). (Number, Number) -> Number.
func Pow_(x, y Expr) (Expr, error) {
	if x == nil || y == nil {
		return nil, missingOperand("pow")
	}
	if !compatible(x.Kind(), Number) || !compatible(y.Kind(), Number) {
		return nil, wrongKind("pow", Number, x, y)
	}
	return lit(Number, "pow("+x.Render()+", "+y.Render()+")"), nil
}

func MustPow(x, y Expr) Expr { return Must(Pow_(x, y)) }

// Boolean_ renders boolean(X). Any -> Bool.
func Boolean_(x Expr) (Expr, error) {
	if x == nil {
		return nil, missingOperand("boolean")
	}
	return lit(Bool, "boolean("+x.Render()+")"), nil
}

func MustBoolean(x Expr) Expr { return Must(Boolean_(x)) }

// Coalesce renders coalesce(A, B). It is the sole polymorphic node in the
// algebra: its Kind is Any, so it is accepted wherever Bool/Int/Number/Text
// is expected. The scoring-rule DSL spells this `a ^ b`; Go has no operator
// overloading, so Coalesce is the only spelling here.
func Coalesce(a, b Expr) (Expr, error) {
	if a == nil || b == nil {
		return nil, missingOperand("coalesce")
	}
	return lit(Any, "coalesce("+a.Render()+", "+b.Render()+")"), nil
}

func MustCoalesce(a, b Expr) Expr { return Must(Coalesce(a, b)) }

// Selected renders selected(ARR, STR). (Text, Text) -> Bool.
func Selected(arr, s Expr) (Expr, error) {
	if arr == nil || s == nil {
		return nil, missingOperand("selected")
	}
	if !compatible(arr.Kind(), Text) || !compatible(s.Kind(), Text) {
		return nil, wrongKind("selected", Text, arr, s)
	}
	return lit(Bool, "selected("+arr.Render()+", "+s.Render()+")"), nil
}

func MustSelected(arr, s Expr) Expr { return Must(Selected(arr, s)) }

// If_ renders if(C, T, E). C must be Bool; the result Kind is T's Kind when
// T and E agree, else Any.
func If_(c, t, e Expr) (Expr, error) {
	if c == nil || t == nil || e == nil {
		return nil, missingOperand("if")
	}
	if !compatible(c.Kind(), Bool) {
		return nil, wrongKind("if", Bool, c)
	}
	resultKind := Any
	if t.Kind() == e.Kind() {
		resultKind = t.Kind()
	}
	return lit(resultKind, "if("+c.Render()+", "+t.Render()+", "+e.Render()+")"), nil
}

func MustIf(c, t, e Expr) Expr { return Must(If_(c, t, e)) }

// CountSelected renders count-selected(Q). The scoring-rule lowering
// needs it for MULTI questions (counting selected choices); it is an
// ODK/XForms extension function exactly like Selected, so it lives in
// the same algebra rather than being hand-assembled as a raw string.
func CountSelected(q Expr) (Expr, error) {
	if q == nil {
		return nil, missingOperand("count-selected")
	}
	if !compatible(q.Kind(), Text) {
		return nil, wrongKind("count-selected", Text, q)
	}
	return lit(Int, "count-selected("+q.Render()+")"), nil
}

func MustCountSelected(q Expr) Expr { return Must(CountSelected(q)) }
