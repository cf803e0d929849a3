package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iglsynth/iglsynth/codec"
	"github.com/iglsynth/iglsynth/entity"
)

type sample struct {
	entity.Header `json:",inline" yaml:",inline" msgpack:",inline"`
	Description   string            `json:"description" yaml:"description" msgpack:"description"`
	Attrs         map[string]string `json:"attrs,omitempty" yaml:"attrs,omitempty" msgpack:"attrs,omitempty"`
}

func TestRoundTripAllFormats(t *testing.T) {
	in := sample{
		Header:      entity.Header{ID: "a1", ClassName: "Action"},
		Description: "move north",
		Attrs:       map[string]string{"cost": "2"},
	}
	for _, f := range codec.Formats() {
		t.Run(string(f), func(t *testing.T) {
			data, err := codec.Marshal(f, in)
			require.NoError(t, err)

			var out sample
			require.NoError(t, codec.Unmarshal(f, data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestJSONFieldNames(t *testing.T) {
	data, err := codec.Marshal(codec.JSON, sample{Header: entity.Header{ID: "a1", ClassName: "Action"}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"class_name": "Action"`)
	assert.NotContains(t, string(data), "Header")
}

func TestUnmarshalMalformed(t *testing.T) {
	var out sample
	for f, data := range map[codec.Format]string{
		codec.JSON:    `{"id": 3}`,
		codec.YAML:    "id: [1, 2\n",
		codec.MsgPack: "\xc1",
	} {
		err := codec.Unmarshal(f, []byte(data), &out)
		assert.ErrorIs(t, err, entity.ErrMalformedData, "format %s", f)
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]codec.Format{
		"json": codec.JSON, ".JSON": codec.JSON,
		"yml": codec.YAML, "yaml": codec.YAML,
		"mp": codec.MsgPack, "msgpack": codec.MsgPack,
	}
	for in, want := range cases {
		got, err := codec.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := codec.ParseFormat("toml")
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)

	f, err := codec.FormatFromPath("/tmp/g.yaml")
	require.NoError(t, err)
	assert.Equal(t, codec.YAML, f)

	_, err = codec.FormatFromPath("graph")
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)

	_, err = codec.Marshal(codec.Format("xml"), 1)
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)
}
