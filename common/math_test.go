package common

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceToBytes(t *testing.T) {
	data := []float32{1.0, 0.5, -2.0}
	b := SliceToBytes(data)
	require.Len(t, b, 12)

	assert.Equal(t, math.Float32bits(1.0), binary.LittleEndian.Uint32(b[0:4]))
	assert.Equal(t, math.Float32bits(0.5), binary.LittleEndian.Uint32(b[4:8]))
	assert.Equal(t, math.Float32bits(-2.0), binary.LittleEndian.Uint32(b[8:12]))
}

func TestSliceToBytesEmpty(t *testing.T) {
	assert.Nil(t, SliceToBytes([]uint32{}))
	assert.Nil(t, SliceToBytes[uint32](nil))
}

func TestStructToBytes(t *testing.T) {
	type packed struct {
		A uint32
		B float32
	}
	v := packed{A: 7, B: 1.5}
	b := StructToBytes(&v)
	require.Len(t, b, 8)

	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(b[0:4]))
	assert.Equal(t, math.Float32bits(1.5), binary.LittleEndian.Uint32(b[4:8]))
}
