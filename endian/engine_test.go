package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.NotNil(t, order)

	// The two probes must agree with the detected order and with each other.
	if order == binary.LittleEndian {
		require.True(t, IsNativeLittleEndian())
		require.False(t, IsNativeBigEndian())
	} else {
		require.True(t, IsNativeBigEndian())
		require.False(t, IsNativeLittleEndian())
	}
}

func TestEngines(t *testing.T) {
	t.Run("BigEndian", func(t *testing.T) {
		engine := GetBigEndianEngine()
		buf := engine.AppendUint32(nil, 0x01020304)
		require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
		require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
	})

	t.Run("LittleEndian", func(t *testing.T) {
		engine := GetLittleEndianEngine()
		buf := engine.AppendUint32(nil, 0x01020304)
		require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
		require.Equal(t, uint32(0x01020304), engine.Uint32(buf))
	})
}
