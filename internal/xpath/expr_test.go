package xpath

import "testing"

func TestLiteralRendering(t *testing.T) {
	cases := []struct {
		name string
		expr Expr
		want string
	}{
		{"bool true", Bool_(true), "true()"},
		{"bool false", Bool_(false), "false()"},
		{"int", Int_(42), "42"},
		{"number whole", Num(10), "10"},
		{"number fractional", Num(2.5), "2.5"},
		{"string", Str_("Red"), "'Red'"},
		{"var", Var("S1_Q1"), "${S1_Q1}"},
		{"self", Self_(), "."},
	}
	for _, c := range cases {
		if got := c.expr.Render(); got != c.want {
			t.Errorf("%s: Render() = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestDivRendersKeyword(t *testing.T) {
	got := MustDiv(MustNumber(Var("num")), MustNumber(Var("den")))
	want := "number(${num}) div number(${den})"
	if got.Render() != want {
		t.Errorf("Div render = %q, want %q", got.Render(), want)
	}
}

func TestComparisonSpacing(t *testing.T) {
	got := MustGt(MustNumber(Var("q")), Num(10))
	want := "number(${q}) > 10"
	if got.Render() != want {
		t.Errorf("Gt render = %q, want %q", got.Render(), want)
	}
}

func TestEqRejectsMismatchedKinds(t *testing.T) {
	_, err := Eq(Num(1), Str_("a"))
	if err == nil {
		t.Fatal("expected error comparing Number to Text")
	}
}

func TestAddRejectsText(t *testing.T) {
	_, err := Add(Str_("a"), Str_("b"))
	if err == nil {
		t.Fatal("expected error adding Text operands")
	}
}

func TestMissingOperandIsInvalidExpression(t *testing.T) {
	_, err := Add(Num(1), nil)
	var invalid *InvalidExpressionError
	if err == nil {
		t.Fatal("expected error for missing operand")
	}
	if !asInvalidExpression(err, &invalid) {
		t.Fatalf("expected *InvalidExpressionError, got %T", err)
	}
}

func asInvalidExpression(err error, target **InvalidExpressionError) bool {
	if ie, ok := err.(*InvalidExpressionError); ok {
		*target = ie
		return true
	}
	return false
}

func TestCoalesceIsPolymorphic(t *testing.T) {
	c := MustCoalesce(Num(1), Str_("x"))
	if c.Kind() != Any {
		t.Errorf("Coalesce Kind = %v, want Any", c.Kind())
	}
	// Accepted wherever a Bool is expected.
	if _, err := And_(c, True); err != nil {
		t.Errorf("Coalesce rejected in Bool position: %v", err)
	}
}

func TestIfRendering(t *testing.T) {
	got := MustIf(MustSelected(Var("q"), Str_("1")), Str_("green"), Str_("red"))
	want := "if(selected(${q}, '1'), 'green', 'red')"
	if got.Render() != want {
		t.Errorf("If render = %q, want %q", got.Render(), want)
	}
}

func TestRoundRendering(t *testing.T) {
	got := MustRound(MustNumber(Var("pct")), Two)
	want := "round(number(${pct}), 2)"
	if got.Render() != want {
		t.Errorf("Round render = %q, want %q", got.Render(), want)
	}
}

func TestCountSelectedRendering(t *testing.T) {
	got := MustCountSelected(Var("S3_Q1"))
	want := "count-selected(${S3_Q1})"
	if got.Render() != want {
		t.Errorf("CountSelected render = %q, want %q", got.Render(), want)
	}
}

func TestBrktWraps(t *testing.T) {
	got := MustBrkt(MustGt(Num(1), Num(0)))
	want := "(1 > 0)"
	if got.Render() != want {
		t.Errorf("Brkt render = %q, want %q", got.Render(), want)
	}
}
