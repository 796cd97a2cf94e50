package biom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otulab/biom"
	"github.com/otulab/biom/matrix"
)

func TestDelimited(t *testing.T) {
	t.Run("FloatTable", func(t *testing.T) {
		table := mustTable(t, matrix.TypeSparse,
			[][]float64{{1, 0}, {0, 2.5}},
			[]string{"S1", "S2"}, []string{"O1", "O2"})

		out, err := table.Delimited()
		require.NoError(t, err)
		assert.Equal(t,
			"# Constructed from biom file\n"+
				"#OTU ID\tS1\tS2\n"+
				"O1\t1\t0\n"+
				"O2\t0\t2.5",
			out)
	})

	t.Run("IntTable", func(t *testing.T) {
		data, err := matrix.FromRows(matrix.TypeDense, [][]float64{{1, 0}}, matrix.ElementInt)
		require.NoError(t, err)
		table, err := biom.New(data, []string{"S1", "S2"}, []string{"O1"})
		require.NoError(t, err)

		out, err := table.Delimited()
		require.NoError(t, err)
		assert.Equal(t,
			"# Constructed from biom file\n"+
				"#OTU ID\tS1\tS2\n"+
				"O1\t1\t0",
			out)
	})

	t.Run("CustomDelimiter", func(t *testing.T) {
		table := mustTable(t, matrix.TypeSparse,
			[][]float64{{1}}, []string{"S1"}, []string{"O1"})

		out, err := table.Delimited(biom.WithDelimiter(","))
		require.NoError(t, err)
		assert.Contains(t, out, "#OTU ID,S1")
		assert.Contains(t, out, "O1,1")
	})

	t.Run("MetadataColumn", func(t *testing.T) {
		table := mustTable(t, matrix.TypeSparse,
			[][]float64{{1}, {2}},
			[]string{"S1"}, []string{"O1", "O2"},
			biom.WithObservationMetadata([]biom.Metadata{
				{"taxonomy": "Bacteroides"}, nil,
			}))

		out, err := table.Delimited(
			biom.WithHeaderKey("taxonomy"),
			biom.WithHeaderValue("Consensus Lineage"))
		require.NoError(t, err)
		assert.Equal(t,
			"# Constructed from biom file\n"+
				"#OTU ID\tS1\tConsensus Lineage\n"+
				"O1\t1\tBacteroides\n"+
				"O2\t2\t",
			out)
	})

	t.Run("MetadataColumnStaysTabSeparated", func(t *testing.T) {
		table := mustTable(t, matrix.TypeSparse,
			[][]float64{{1}},
			[]string{"S1"}, []string{"O1"},
			biom.WithObservationMetadata([]biom.Metadata{
				{"taxonomy": "Bacteroides"},
			}))

		out, err := table.Delimited(
			biom.WithDelimiter(","),
			biom.WithHeaderKey("taxonomy"),
			biom.WithHeaderValue("Consensus Lineage"))
		require.NoError(t, err)
		assert.Equal(t,
			"# Constructed from biom file\n"+
				"#OTU ID,S1\tConsensus Lineage\n"+
				"O1,1\tBacteroides",
			out)
	})

	t.Run("HeaderPairEnforced", func(t *testing.T) {
		table := mustTable(t, matrix.TypeSparse,
			[][]float64{{1}}, []string{"S1"}, []string{"O1"})

		_, err := table.Delimited(biom.WithHeaderKey("taxonomy"))
		assert.ErrorIs(t, err, biom.ErrMissingHeaderPair)

		_, err = table.Delimited(biom.WithHeaderValue("Lineage"))
		assert.ErrorIs(t, err, biom.ErrMissingHeaderPair)
	})

	t.Run("EmptyTable", func(t *testing.T) {
		data := matrix.NewSparse(0, 0, matrix.ElementFloat)
		empty, err := biom.New(data, nil, nil)
		require.NoError(t, err)

		_, err = empty.Delimited()
		assert.ErrorIs(t, err, biom.ErrEmptyTable)
	})
}
