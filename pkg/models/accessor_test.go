package models

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

func float32Bytes(values ...float32) []byte {
	out := make([]byte, 0, len(values)*4)
	for _, v := range values {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	return out
}

func positionDoc(data []byte, view gltf.BufferView, accessor gltf.Accessor) *gltf.Document {
	return &gltf.Document{
		Accessors:   []*gltf.Accessor{&accessor},
		BufferViews: []*gltf.BufferView{&view},
		Buffers:     []*gltf.Buffer{{ByteLength: len(data), Data: data}},
	}
}

func TestReadPositions(t *testing.T) {
	data := float32Bytes(1, 2, 3, -1.5, 0, 0.25)
	doc := positionDoc(data,
		gltf.BufferView{ByteLength: len(data)},
		gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 2},
	)

	got, err := readPositions(doc, 0)
	require.NoError(t, err)
	assert.Equal(t, []sbmath.Vec3{{X: 1, Y: 2, Z: 3}, {X: -1.5, Y: 0, Z: 0.25}}, got)
}

func TestReadPositionsStrideAndOffset(t *testing.T) {
	// Two leading padding floats, then interleaved position + one extra float.
	data := float32Bytes(9, 9, 1, 2, 3, 99, 4, 5, 6, 99)
	doc := positionDoc(data,
		gltf.BufferView{ByteOffset: 8, ByteLength: len(data) - 8, ByteStride: 16},
		gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 2},
	)

	got, err := readPositions(doc, 0)
	require.NoError(t, err)
	assert.Equal(t, []sbmath.Vec3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}, got)
}

func TestReadPositionsErrors(t *testing.T) {
	data := float32Bytes(1, 2, 3)
	tests := []struct {
		name     string
		view     gltf.BufferView
		accessor gltf.Accessor
	}{
		{
			name:     "wrong type",
			view:     gltf.BufferView{ByteLength: len(data)},
			accessor: gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec2, Count: 1},
		},
		{
			name:     "wrong component",
			view:     gltf.BufferView{ByteLength: len(data)},
			accessor: gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentUshort, Type: gltf.AccessorVec3, Count: 1},
		},
		{
			name:     "no buffer view",
			view:     gltf.BufferView{ByteLength: len(data)},
			accessor: gltf.Accessor{ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 1},
		},
		{
			name:     "buffer view out of range",
			view:     gltf.BufferView{ByteLength: len(data)},
			accessor: gltf.Accessor{BufferView: index(4), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 1},
		},
		{
			name:     "count past end",
			view:     gltf.BufferView{ByteLength: len(data)},
			accessor: gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 2},
		},
		{
			name:     "huge count",
			view:     gltf.BufferView{ByteLength: len(data)},
			accessor: gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 1 << 40},
		},
		{
			name:     "negative count",
			view:     gltf.BufferView{ByteLength: len(data)},
			accessor: gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: -1},
		},
		{
			name:     "view shorter than one element",
			view:     gltf.BufferView{ByteLength: 8},
			accessor: gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 1},
		},
		{
			name:     "stride smaller than element",
			view:     gltf.BufferView{ByteLength: len(data), ByteStride: 4},
			accessor: gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 1},
		},
		{
			name:     "view past buffer",
			view:     gltf.BufferView{ByteLength: len(data) + 4},
			accessor: gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readPositions(positionDoc(data, tt.view, tt.accessor), 0)
			assert.Error(t, err)
		})
	}

	_, err := readPositions(&gltf.Document{}, 0)
	assert.ErrorIs(t, err, ErrAccessorIndex)
}

func TestReadPositionsEmpty(t *testing.T) {
	data := float32Bytes(1, 2, 3)
	got, err := readPositions(positionDoc(data,
		gltf.BufferView{ByteLength: len(data)},
		gltf.Accessor{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3},
	), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadPositionsMissingData(t *testing.T) {
	doc := &gltf.Document{
		Accessors:   []*gltf.Accessor{{BufferView: index(0), ComponentType: gltf.ComponentFloat, Type: gltf.AccessorVec3, Count: 1}},
		BufferViews: []*gltf.BufferView{{ByteLength: 12}},
		Buffers:     []*gltf.Buffer{{ByteLength: 12, URI: "external.bin"}},
	}
	_, err := readPositions(doc, 0)
	assert.Error(t, err)
}
