package biom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otulab/biom"
	"github.com/otulab/biom/matrix"
)

func TestSamples(t *testing.T) {
	table := mustTable(t, matrix.TypeSparse,
		[][]float64{{1, 0}, {0, 2}},
		[]string{"S1", "S2"}, []string{"O1", "O2"},
		biom.WithSampleMetadata([]biom.Metadata{{"environment": "gut"}, nil}))

	var ids []string
	var vectors [][]float64
	for entry := range table.Samples() {
		ids = append(ids, entry.ID)
		vectors = append(vectors, entry.Vector)
		if entry.ID == "S1" {
			assert.Equal(t, "gut", entry.Metadata.Get("environment"))
		} else {
			assert.Nil(t, entry.Metadata)
		}
	}
	assert.Equal(t, []string{"S1", "S2"}, ids)
	assert.Equal(t, [][]float64{{1, 0}, {0, 2}}, vectors)
}

func TestObservations(t *testing.T) {
	table := mustTable(t, matrix.TypeDense,
		[][]float64{{0, 1, 3}, {2, 0, 0}},
		[]string{"S1", "S2", "S3"}, []string{"O1", "O2"})

	var ids []string
	var vectors [][]float64
	for entry := range table.Observations() {
		ids = append(ids, entry.ID)
		vectors = append(vectors, entry.Vector)
	}
	assert.Equal(t, []string{"O1", "O2"}, ids)
	assert.Equal(t, [][]float64{{0, 1, 3}, {2, 0, 0}}, vectors)
}

func TestIterationEarlyStop(t *testing.T) {
	table := mustTable(t, matrix.TypeSparse,
		[][]float64{{1, 2}, {3, 4}},
		[]string{"S1", "S2"}, []string{"O1", "O2"})

	count := 0
	for range table.Samples() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestNonzero(t *testing.T) {
	type pair struct{ obs, samp string }

	for _, typ := range []matrix.Type{matrix.TypeSparse, matrix.TypeDense} {
		t.Run(string(typ), func(t *testing.T) {
			table := mustTable(t, typ,
				[][]float64{{1, 0}, {0, 2}},
				[]string{"S1", "S2"}, []string{"O1", "O2"})

			var got []pair
			for obs, samp := range table.Nonzero() {
				got = append(got, pair{obs, samp})
			}
			assert.Equal(t, []pair{{"O1", "S1"}, {"O2", "S2"}}, got)
		})
	}
}

func TestReduce(t *testing.T) {
	table := mustTable(t, matrix.TypeSparse,
		[][]float64{{1, 0, 4}, {0, 2, 6}},
		[]string{"S1", "S2", "S3"}, []string{"O1", "O2"})

	t.Run("MaxPerObservation", func(t *testing.T) {
		maxes, err := table.Reduce(func(acc, v float64) float64 {
			if v > acc {
				return v
			}
			return acc
		}, biom.AxisObservation)
		require.NoError(t, err)
		assert.Equal(t, []float64{4, 6}, maxes)
	})

	t.Run("InvalidAxis", func(t *testing.T) {
		_, err := table.Reduce(func(a, b float64) float64 { return a + b }, biom.Axis("bogus"))
		require.Error(t, err)

		var invalid *biom.InvalidAxisError
		assert.ErrorAs(t, err, &invalid)
	})

	t.Run("WholeAxisRejected", func(t *testing.T) {
		_, err := table.Reduce(func(a, b float64) float64 { return a + b }, biom.AxisWhole)
		require.Error(t, err)
	})

	t.Run("EmptyTable", func(t *testing.T) {
		data := matrix.NewSparse(0, 0, matrix.ElementFloat)
		empty, err := biom.New(data, nil, nil)
		require.NoError(t, err)

		_, err = empty.Reduce(func(a, b float64) float64 { return a + b }, biom.AxisSample)
		assert.ErrorIs(t, err, biom.ErrEmptyTable)
	})
}

func TestSum(t *testing.T) {
	table := mustTable(t, matrix.TypeDense,
		[][]float64{{1, 0}, {0, 2}},
		[]string{"S1", "S2"}, []string{"O1", "O2"})

	sums, err := table.Sum(biom.AxisSample)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, sums)

	sums, err = table.Sum(biom.AxisObservation)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, sums)

	total, err := table.SumWhole()
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	_, err = table.Sum(biom.AxisWhole)
	require.Error(t, err)
}
