package xpath

// Commonly reused literals.
var (
	Zero  = Num(0)
	One   = Num(1)
	Two   = Num(2)
	Three = Num(3)
	False = Bool_(false)
	True  = Bool_(true)
)
