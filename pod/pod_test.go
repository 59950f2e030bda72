package pod_test

import (
	"testing"
	"unsafe"

	"github.com/mna/abibool"
	"github.com/mna/abibool/pod"
	"github.com/stretchr/testify/assert"
)

// bytesOf is the kind of single-value helper reinterpretation tooling
// builds on Pod; the constraint is what makes the byte view justifiable.
func bytesOf[T pod.Pod](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

func TestLayout(t *testing.T) {
	assert.Equal(t, uintptr(1), unsafe.Sizeof(abibool.Bool8(0)))
	assert.Equal(t, uintptr(4), unsafe.Sizeof(abibool.Bool32(0)))
	assert.Equal(t, uintptr(1), unsafe.Alignof(abibool.Bool8(0)))
	assert.Equal(t, uintptr(4), unsafe.Alignof(abibool.Bool32(0)))
}

func TestZeroInitializable(t *testing.T) {
	var n abibool.Bool8
	var w abibool.Bool32
	assert.Equal(t, []byte{0}, bytesOf(&n))
	assert.Equal(t, []byte{0, 0, 0, 0}, bytesOf(&w))
	assert.False(t, n.Bool())
	assert.False(t, w.Bool())
}

func TestByteView(t *testing.T) {
	b := abibool.B32(true)
	bs := bytesOf(&b)
	assert.Len(t, bs, 4)

	// canonical TRUE is the pattern 1: exactly one byte set, value 1
	var set int
	for _, x := range bs {
		if x != 0 {
			set++
			assert.Equal(t, byte(1), x)
		}
	}
	assert.Equal(t, 1, set)

	// writes through the view land in the value
	for i := range bs {
		bs[i] = 0
	}
	assert.False(t, b.Bool())
}
