package biom

// ReduceFunc folds two values into one during an axis reduction.
type ReduceFunc func(acc, value float64) float64

// Reduce folds f pairwise across every vector on the given axis and returns
// one value per axis position. Fails with ErrEmptyTable when either axis is
// empty and InvalidAxisError for axes other than sample or observation.
func (t *Table) Reduce(f ReduceFunc, axis Axis) ([]float64, error) {
	if t.IsEmpty() {
		return nil, ErrEmptyTable
	}

	switch axis {
	case AxisSample:
		out := make([]float64, 0, len(t.sampleIDs))
		for entry := range t.Samples() {
			out = append(out, fold(f, entry.Vector))
		}
		return out, nil
	case AxisObservation:
		out := make([]float64, 0, len(t.observationIDs))
		for entry := range t.Observations() {
			out = append(out, fold(f, entry.Vector))
		}
		return out, nil
	default:
		return nil, &InvalidAxisError{Axis: axis}
	}
}

func fold(f ReduceFunc, vec []float64) float64 {
	acc := vec[0]
	for _, v := range vec[1:] {
		acc = f(acc, v)
	}
	return acc
}

// Sum returns the per-vector sums along the given axis.
func (t *Table) Sum(axis Axis) ([]float64, error) {
	switch axis {
	case AxisSample, AxisObservation:
		return t.Reduce(func(a, b float64) float64 { return a + b }, axis)
	default:
		return nil, &InvalidAxisError{Axis: axis}
	}
}

// SumWhole returns the whole-matrix sum (the sum of all per-sample sums).
func (t *Table) SumWhole() (float64, error) {
	sums, err := t.Sum(AxisSample)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, s := range sums {
		total += s
	}
	return total, nil
}
