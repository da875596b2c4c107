package matrixio_test

import (
	"testing"

	"github.com/katalvlaran/lvmat/matrixio"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	cases := map[string]matrixio.Format{
		"a.json":        matrixio.JSON,
		"dir/B.JSON":    matrixio.JSON,
		"m.msgpack":     matrixio.Msgpack,
		"/tmp/x.y/m.mp": matrixio.Msgpack,
	}
	for path, want := range cases {
		got, err := matrixio.FormatFromPath(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}

	for _, path := range []string{"m.txt", "noext", "m.json.bak"} {
		_, err := matrixio.FormatFromPath(path)
		require.ErrorIs(t, err, matrixio.ErrUnknownFormat, path)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := matrixio.ParseFormat(" MsgPack ")
	require.NoError(t, err)
	require.Equal(t, matrixio.Msgpack, f)

	_, err = matrixio.ParseFormat("xml")
	require.ErrorIs(t, err, matrixio.ErrUnknownFormat)
}
