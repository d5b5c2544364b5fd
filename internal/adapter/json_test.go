package adapter_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-artbot/internal/adapter"
)

func TestJSON_UnmarshalKeepsNumberText(t *testing.T) {
	var features map[string]any
	err := adapter.NewJSON().Unmarshal([]byte(`{"Density": 1000000, "Scale": 0.25, "Style": "Luxe"}`), &features)

	require.NoError(t, err)
	assert.Equal(t, json.Number("1000000"), features["Density"])
	assert.Equal(t, json.Number("0.25"), features["Scale"])
	assert.Equal(t, "Luxe", features["Style"])
}

func TestJSON_UnmarshalTyped(t *testing.T) {
	var v struct {
		Invocations int64  `json:"invocations"`
		Name        string `json:"name"`
	}
	require.NoError(t, adapter.NewJSON().Unmarshal([]byte(`{"invocations": 999, "name": "Fidenza"}`), &v))
	assert.Equal(t, int64(999), v.Invocations)
	assert.Equal(t, "Fidenza", v.Name)
}

func TestJSON_UnmarshalTrailingData(t *testing.T) {
	var v map[string]any
	assert.Error(t, adapter.NewJSON().Unmarshal([]byte(`{"a": 1} {"b": 2}`), &v))
	assert.Error(t, adapter.NewJSON().Unmarshal([]byte(`{"a": `), &v))
}
