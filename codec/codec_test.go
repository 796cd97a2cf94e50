package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	ID    string         `json:"id"`
	Shape [2]int         `json:"shape"`
	Data  [][]float64    `json:"data"`
	Meta  map[string]any `json:"meta"`
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	payload := testPayload{
		ID:    "table1",
		Shape: [2]int{2, 3},
		Data:  [][]float64{{0, 1, 3}, {1, 0, 2}},
		Meta:  map[string]any{"environment": "gut"},
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b, err := c.Marshal(payload)
			require.NoError(t, err)

			var got testPayload
			require.NoError(t, c.Unmarshal(b, &got))
			assert.Equal(t, payload, got)
		})
	}
}

func TestCrossCodecCompatibility(t *testing.T) {
	// Payloads written by one JSON codec must decode with the other.
	payload := testPayload{ID: "x", Data: [][]float64{{0, 0, 1.5}}}

	b := MustMarshal(JSON{}, payload)
	var got testPayload
	require.NoError(t, GoJSON{}.Unmarshal(b, &got))
	assert.Equal(t, payload.Data, got.Data)

	b = MustMarshal(GoJSON{}, payload)
	var got2 testPayload
	require.NoError(t, JSON{}.Unmarshal(b, &got2))
	assert.Equal(t, payload.Data, got2.Data)
}

func TestDefault(t *testing.T) {
	require.NotNil(t, Default)
	assert.Equal(t, "go-json", Default.Name())
}
