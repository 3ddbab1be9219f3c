package models

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/sugarbomb/pkg/sbmath"
)

// readPositions reads a VEC3 float accessor, such as a POSITION attribute.
func readPositions(doc *gltf.Document, accessorIdx int) ([]sbmath.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d: %w", accessorIdx, ErrAccessorIndex)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	if accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float components, got %v", accessor.ComponentType)
	}

	data, err := accessorBytes(doc, accessor)
	if err != nil {
		return nil, err
	}

	stride := doc.BufferViews[*accessor.BufferView].ByteStride
	if stride == 0 {
		stride = 12 // 3 floats * 4 bytes
	}

	count := accessor.Count
	if count < 0 {
		return nil, fmt.Errorf("accessor count %d is negative", count)
	}
	if count == 0 {
		return []sbmath.Vec3{}, nil
	}
	// Size the read before allocating; count comes straight from the file.
	if stride < 12 || len(data) < 12 || count-1 > (len(data)-12)/stride {
		return nil, fmt.Errorf("accessor of %d elements with stride %d reads past end of %d byte buffer view", count, stride, len(data))
	}

	result := make([]sbmath.Vec3, count)
	for i := range count {
		offset := i * stride
		result[i] = sbmath.V3(
			readFloat32(data[offset:]),
			readFloat32(data[offset+4:]),
			readFloat32(data[offset+8:]),
		)
	}

	return result, nil
}

// accessorBytes returns the buffer bytes an accessor starts at.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor) ([]byte, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView < 0 || *accessor.BufferView >= len(doc.BufferViews) {
		return nil, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer < 0 || bufferView.Buffer >= len(doc.Buffers) {
		return nil, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}

	// gltf.Open resolves both GLB chunks and external URIs into Data.
	bufData := doc.Buffers[bufferView.Buffer].Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	end := bufferView.ByteOffset + bufferView.ByteLength
	if start > end || end > len(bufData) {
		return nil, fmt.Errorf("buffer view range [%d, %d) outside buffer of %d bytes", start, end, len(bufData))
	}

	return bufData[start:end], nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
