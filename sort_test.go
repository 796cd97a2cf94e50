package biom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otulab/biom"
	"github.com/otulab/biom/matrix"
)

func TestSortSampleOrder(t *testing.T) {
	table := mustTable(t, matrix.TypeSparse,
		[][]float64{{1, 2, 3}},
		[]string{"S1", "S2", "S3"}, []string{"O1"},
		biom.WithSampleMetadata([]biom.Metadata{{"n": 1}, {"n": 2}, {"n": 3}}))

	t.Run("Reorders", func(t *testing.T) {
		got, err := table.SortSampleOrder([]string{"S3", "S1", "S2"})
		require.NoError(t, err)

		assert.Equal(t, []string{"S3", "S1", "S2"}, got.SampleIDs())
		vec, err := got.ObservationVector("O1")
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 1, 2}, vec)

		// Metadata travels with its sample.
		md, err := got.SampleMetadata("S3")
		require.NoError(t, err)
		assert.Equal(t, 3, md.Get("n"))
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := table.SortSampleOrder([]string{"S1", "S2", "SX"})
		var unknown *biom.UnknownIdentifierError
		require.ErrorAs(t, err, &unknown)
	})

	t.Run("Duplicate", func(t *testing.T) {
		_, err := table.SortSampleOrder([]string{"S1", "S2", "S2"})
		var dup *biom.DuplicateIdentifierError
		require.ErrorAs(t, err, &dup)
	})

	t.Run("WrongLength", func(t *testing.T) {
		_, err := table.SortSampleOrder([]string{"S1", "S2"})
		assert.ErrorIs(t, err, biom.ErrShapeMismatch)
	})
}

func TestSortObservationOrder(t *testing.T) {
	table := mustTable(t, matrix.TypeDense,
		[][]float64{{1}, {2}, {3}},
		[]string{"S1"}, []string{"O1", "O2", "O3"})

	got, err := table.SortObservationOrder([]string{"O2", "O3", "O1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"O2", "O3", "O1"}, got.ObservationIDs())

	vec, err := got.SampleVector("S1")
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 1}, vec)
}

func TestSortByID(t *testing.T) {
	table := mustTable(t, matrix.TypeSparse,
		[][]float64{{1, 2, 3}, {4, 5, 6}},
		[]string{"S10", "S2", "S1"}, []string{"O2", "O10"})

	t.Run("Samples", func(t *testing.T) {
		got, err := table.SortBySampleID()
		require.NoError(t, err)
		// Natural order: S2 before S10.
		assert.Equal(t, []string{"S1", "S2", "S10"}, got.SampleIDs())

		vec, err := got.ObservationVector("O2")
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 2, 1}, vec)
	})

	t.Run("Observations", func(t *testing.T) {
		got, err := table.SortByObservationID()
		require.NoError(t, err)
		assert.Equal(t, []string{"O2", "O10"}, got.ObservationIDs())
	})

	t.Run("Idempotent", func(t *testing.T) {
		once, err := table.SortBySampleID()
		require.NoError(t, err)
		twice, err := once.SortBySampleID()
		require.NoError(t, err)
		assert.True(t, once.Equal(twice))
	})
}
