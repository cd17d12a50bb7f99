package pool

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(8)
	n, err := bb.Write([]byte("hertz"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("hertz"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 8, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(64)
		before := cap(bb.B)
		bb.Grow(32)
		require.Equal(t, before, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte{1, 2, 3, 4})
		bb.Grow(1)
		require.GreaterOrEqual(t, cap(bb.B), 4+ArchiveBufferDefaultSize)
		require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
	})

	t.Run("grows at least the requested amount", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(ArchiveBufferDefaultSize * 3)
		require.GreaterOrEqual(t, cap(bb.B), ArchiveBufferDefaultSize*3)
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte("curve"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(5), n)
	require.Equal(t, "curve", out.String())

	_, err = bb.WriteTo(failingWriter{})
	require.Error(t, err)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.Grow(1024)
	p.Put(bb)

	p.Put(nil)

	fresh := p.Get()
	require.Equal(t, 0, fresh.Len())
}

func TestArchiveBuffer_GetPut(t *testing.T) {
	bb := GetArchiveBuffer()
	require.NotNil(t, bb)
	_, _ = bb.Write([]byte{0xAA})
	PutArchiveBuffer(bb)

	again := GetArchiveBuffer()
	require.Equal(t, 0, again.Len())
	PutArchiveBuffer(again)
}
