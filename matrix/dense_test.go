package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense(t *testing.T) {
	t.Run("SetAndAt", func(t *testing.T) {
		d := NewDense(2, 3, ElementFloat)

		require.NoError(t, d.Set(1, 2, 7.5))
		v, err := d.At(1, 2)
		require.NoError(t, err)
		assert.Equal(t, 7.5, v)

		assert.Equal(t, 1, d.Nonzeros())

		require.NoError(t, d.Set(1, 2, 0))
		assert.Equal(t, 0, d.Nonzeros())
	})

	t.Run("IntElementTruncates", func(t *testing.T) {
		d := NewDense(1, 1, ElementInt)
		require.NoError(t, d.Set(0, 0, 1.7))
		v, err := d.At(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		d := NewDense(2, 2, ElementFloat)
		_, err := d.At(0, 5)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfBounds))
	})

	t.Run("Vectors", func(t *testing.T) {
		d := NewDense(2, 3, ElementFloat)
		require.NoError(t, d.Set(0, 0, 1))
		require.NoError(t, d.Set(0, 2, 3))

		row, err := d.RowVector(0)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0, 3}, row)

		col, err := d.ColVector(2)
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 0}, col)
	})

	t.Run("Transpose", func(t *testing.T) {
		d := NewDense(2, 3, ElementFloat)
		require.NoError(t, d.Set(1, 0, 4))

		tr := d.Transpose()
		assert.Equal(t, 3, tr.Rows())
		assert.Equal(t, 2, tr.Cols())
		v, err := tr.At(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 4.0, v)
	})

	t.Run("CloneIndependence", func(t *testing.T) {
		d := NewDense(1, 2, ElementFloat)
		require.NoError(t, d.Set(0, 0, 1))

		c := d.Clone()
		require.NoError(t, c.Set(0, 0, 2))

		v, err := d.At(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	})
}

func TestEqual(t *testing.T) {
	t.Run("CrossBacking", func(t *testing.T) {
		s := NewSparse(2, 2, ElementFloat)
		d := NewDense(2, 2, ElementFloat)
		for _, m := range []Matrix{s, d} {
			require.NoError(t, m.Set(0, 1, 3))
			require.NoError(t, m.Set(1, 0, 4))
		}

		assert.True(t, Equal(s, d))
		assert.True(t, Equal(d, s))

		require.NoError(t, d.Set(1, 1, 1))
		assert.False(t, Equal(s, d))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		assert.False(t, Equal(NewDense(1, 2, ElementFloat), NewDense(2, 1, ElementFloat)))
	})

	t.Run("SparseFastPath", func(t *testing.T) {
		a := NewSparse(2, 2, ElementFloat)
		b := NewSparse(2, 2, ElementFloat)
		require.NoError(t, a.Set(0, 0, 1))
		require.NoError(t, b.Set(0, 0, 1))
		assert.True(t, Equal(a, b))

		require.NoError(t, b.Set(0, 0, 2))
		assert.False(t, Equal(a, b))
	})
}

func TestConstructors(t *testing.T) {
	t.Run("FromRows", func(t *testing.T) {
		m, err := FromRows(TypeDense, [][]float64{{1, 0}, {0, 2}}, ElementInt)
		require.NoError(t, err)
		assert.Equal(t, 2, m.Rows())
		assert.Equal(t, 2, m.Cols())
		v, err := m.At(1, 1)
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)
	})

	t.Run("FromRowsRagged", func(t *testing.T) {
		_, err := FromRows(TypeSparse, [][]float64{{1, 2}, {3}}, ElementFloat)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrShapeMismatch))
	})

	t.Run("FromCols", func(t *testing.T) {
		m, err := FromCols(TypeSparse, [][]float64{{1, 2}, {3, 4}}, ElementFloat)
		require.NoError(t, err)
		assert.Equal(t, 2, m.Rows())
		assert.Equal(t, 2, m.Cols())
		// Column 0 is {1, 2}: value 2 lands at row 1, col 0.
		v, err := m.At(1, 0)
		require.NoError(t, err)
		assert.Equal(t, 2.0, v)
	})

	t.Run("FromTriples", func(t *testing.T) {
		m, err := FromTriples(TypeSparse, 2, 2, []Entry{{Row: 0, Col: 1, Value: 3}}, ElementInt)
		require.NoError(t, err)
		assert.Equal(t, 1, m.Nonzeros())

		_, err = FromTriples(TypeSparse, 2, 2, []Entry{{Row: 5, Col: 0, Value: 1}}, ElementInt)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfBounds))
	})

	t.Run("FromMap", func(t *testing.T) {
		m, err := FromMap(TypeSparse, 2, 2, map[[2]int]float64{
			{0, 1}: 3,
			{1, 0}: 0, // dropped
		}, ElementFloat)
		require.NoError(t, err)
		assert.Equal(t, 1, m.Nonzeros())
		v, err := m.At(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 3.0, v)

		_, err = FromMap(TypeDense, 1, 1, map[[2]int]float64{{2, 2}: 1}, ElementFloat)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOutOfBounds))
	})
}
