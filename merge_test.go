package biom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otulab/biom"
	"github.com/otulab/biom/matrix"
)

func TestMerge(t *testing.T) {
	t.Run("DisjointSamplesUnion", func(t *testing.T) {
		a := mustTable(t, matrix.TypeSparse,
			[][]float64{{5}}, []string{"S1"}, []string{"O1"})
		b := mustTable(t, matrix.TypeSparse,
			[][]float64{{7}}, []string{"S2"}, []string{"O1"})

		got, err := a.Merge(b)
		require.NoError(t, err)

		assert.Equal(t, []string{"S1", "S2"}, got.SampleIDs())
		assert.Equal(t, []string{"O1"}, got.ObservationIDs())

		vec, err := got.ObservationVector("O1")
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 7}, vec)
	})

	t.Run("OverlapAddsByDefault", func(t *testing.T) {
		a := mustTable(t, matrix.TypeSparse,
			[][]float64{{1, 2}, {3, 4}},
			[]string{"S1", "S2"}, []string{"O1", "O2"})
		b := mustTable(t, matrix.TypeSparse,
			[][]float64{{10, 20}, {30, 40}},
			[]string{"S2", "S3"}, []string{"O2", "O3"})

		got, err := a.Merge(b)
		require.NoError(t, err)

		// Union order: self's ids first, then other's new ids.
		assert.Equal(t, []string{"S1", "S2", "S3"}, got.SampleIDs())
		assert.Equal(t, []string{"O1", "O2", "O3"}, got.ObservationIDs())

		// Overlapping cell (O2, S2): 4 from a plus 10 from b.
		v, err := got.ValueAt("O2", "S2")
		require.NoError(t, err)
		assert.Equal(t, 14.0, v)

		// Cells absent from one table take zero from it.
		v, err = got.ValueAt("O1", "S3")
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
		v, err = got.ValueAt("O3", "S3")
		require.NoError(t, err)
		assert.Equal(t, 40.0, v)
	})

	t.Run("Intersection", func(t *testing.T) {
		a := mustTable(t, matrix.TypeSparse,
			[][]float64{{1, 2}, {3, 4}},
			[]string{"S1", "S2"}, []string{"O1", "O2"})
		b := mustTable(t, matrix.TypeSparse,
			[][]float64{{10, 20}},
			[]string{"S2", "S3"}, []string{"O2"})

		got, err := a.Merge(b,
			biom.WithSampleMode(biom.MergeIntersection),
			biom.WithObservationMode(biom.MergeIntersection))
		require.NoError(t, err)

		assert.Equal(t, []string{"S2"}, got.SampleIDs())
		assert.Equal(t, []string{"O2"}, got.ObservationIDs())

		v, err := got.ValueAt("O2", "S2")
		require.NoError(t, err)
		assert.Equal(t, 14.0, v)
	})

	t.Run("EmptyIntersection", func(t *testing.T) {
		a := mustTable(t, matrix.TypeSparse,
			[][]float64{{1}}, []string{"S1"}, []string{"O1"})
		b := mustTable(t, matrix.TypeSparse,
			[][]float64{{2}}, []string{"S2"}, []string{"O1"})

		_, err := a.Merge(b, biom.WithSampleMode(biom.MergeIntersection))
		assert.ErrorIs(t, err, biom.ErrEmptyMergeResult)
	})

	t.Run("InvalidMode", func(t *testing.T) {
		a := mustTable(t, matrix.TypeSparse,
			[][]float64{{1}}, []string{"S1"}, []string{"O1"})

		_, err := a.Merge(a, biom.WithSampleMode(biom.MergeMode("outer")))
		assert.ErrorIs(t, err, biom.ErrInvalidMergeMode)
	})

	t.Run("CustomCombine", func(t *testing.T) {
		a := mustTable(t, matrix.TypeSparse,
			[][]float64{{2}}, []string{"S1"}, []string{"O1"})
		b := mustTable(t, matrix.TypeSparse,
			[][]float64{{3}}, []string{"S1"}, []string{"O1"})

		got, err := a.Merge(b, biom.WithCombine(func(self, other float64) float64 {
			if self > other {
				return self
			}
			return other
		}))
		require.NoError(t, err)

		v, err := got.ValueAt("O1", "S1")
		require.NoError(t, err)
		assert.Equal(t, 3.0, v)
	})

	t.Run("MetadataPrefersSelf", func(t *testing.T) {
		a := mustTable(t, matrix.TypeSparse,
			[][]float64{{1, 0}}, []string{"S1", "S2"}, []string{"O1"},
			biom.WithSampleMetadata([]biom.Metadata{{"environment": "gut"}, nil}))
		b := mustTable(t, matrix.TypeSparse,
			[][]float64{{0, 2}}, []string{"S1", "S2"}, []string{"O1"},
			biom.WithSampleMetadata([]biom.Metadata{{"environment": "oral"}, {"environment": "skin"}}))

		got, err := a.Merge(b)
		require.NoError(t, err)

		md, err := got.SampleMetadata("S1")
		require.NoError(t, err)
		assert.Equal(t, "gut", md.Get("environment"))

		// Self has none for S2, so other's wins.
		md, err = got.SampleMetadata("S2")
		require.NoError(t, err)
		assert.Equal(t, "skin", md.Get("environment"))
	})

	t.Run("ResultIdentityFields", func(t *testing.T) {
		a := mustTable(t, matrix.TypeSparse,
			[][]float64{{1}}, []string{"S1"}, []string{"O1"},
			biom.WithTableID("a"), biom.WithKind(biom.KindOTU))
		b := mustTable(t, matrix.TypeDense,
			[][]float64{{2}}, []string{"S1"}, []string{"O1"},
			biom.WithTableID("b"), biom.WithKind(biom.KindAbundance))

		got, err := a.Merge(b)
		require.NoError(t, err)

		// Receiver's backing and kind, float elements, no table id.
		assert.Equal(t, matrix.TypeSparse, got.MatrixType())
		assert.Equal(t, biom.KindOTU, got.Kind())
		assert.Equal(t, matrix.ElementFloat, got.ElementType())
		assert.Equal(t, "", got.TableID())
	})
}
