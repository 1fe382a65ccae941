package tc

// row is one sub-range of a piecewise reference equation.
// Coefficients are stored lowest degree first.
type row struct {
	c      []float32
	lo, hi float32
}

// eval computes Σ c[i]·xⁱ using Horner's rule.
func (r *row) eval(x float32) float32 {
	var y float32
	for i := len(r.c) - 1; i >= 0; i-- {
		y = y*x + r.c[i]
	}
	return y
}

// table is an ordered, contiguous set of sub-ranges.
type table []row

// row returns the index of the sub-range holding x in [lo, hi).
// Inputs outside the table clamp to the first or last row, so the
// boundary polynomial is extrapolated instead of failing. Far from the
// table the float32 result can overflow to ±Inf; readings bounded by an
// ADC reference stay finite.
func (t table) row(x float32) int {
	if x < t[0].lo {
		return 0
	}
	for i := range t {
		if x < t[i].hi {
			return i
		}
	}
	return len(t) - 1
}

func (t table) eval(x float32) float32 {
	return t[t.row(x)].eval(x)
}

func (t table) min() float32 { return t[0].lo }
func (t table) max() float32 { return t[len(t)-1].hi }
