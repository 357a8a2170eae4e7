package ico

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"

	"github.com/provide-io/iconforge/pkg/iconerr"
)

func TestEncodeLayout(t *testing.T) {
	frames := []Frame{
		{Size: 16, Data: bytes.Repeat([]byte{0xAA}, 100)},
		{Size: 48, Data: bytes.Repeat([]byte{0xBB}, 250)},
		{Size: 256, Data: bytes.Repeat([]byte{0xCC}, 999)},
	}

	out, err := Encode(frames)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	wantLen := HeaderSize + DirEntrySize*len(frames) + 100 + 250 + 999
	if len(out) != wantLen {
		t.Errorf("container length = %d, want %d", len(out), wantLen)
	}

	// ICONDIR header
	if got := binary.LittleEndian.Uint16(out[0:2]); got != 0 {
		t.Errorf("reserved = %d, want 0", got)
	}
	if got := binary.LittleEndian.Uint16(out[2:4]); got != 1 {
		t.Errorf("type = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint16(out[4:6]); got != uint16(len(frames)) {
		t.Errorf("count = %d, want %d", got, len(frames))
	}

	// Directory entries: cumulative offsets starting after the directory
	offset := uint32(HeaderSize + DirEntrySize*len(frames))
	for i, f := range frames {
		entry := out[HeaderSize+i*DirEntrySize:]

		wantByte := byte(f.Size)
		if entry[0] != wantByte || entry[1] != wantByte {
			t.Errorf("frame %d: width/height bytes = %d/%d, want %d", i, entry[0], entry[1], wantByte)
		}
		if got := binary.LittleEndian.Uint16(entry[4:6]); got != 1 {
			t.Errorf("frame %d: planes = %d, want 1", i, got)
		}
		if got := binary.LittleEndian.Uint16(entry[6:8]); got != 32 {
			t.Errorf("frame %d: bpp = %d, want 32", i, got)
		}
		if got := binary.LittleEndian.Uint32(entry[8:12]); got != uint32(len(f.Data)) {
			t.Errorf("frame %d: data size = %d, want %d", i, got, len(f.Data))
		}
		if got := binary.LittleEndian.Uint32(entry[12:16]); got != offset {
			t.Errorf("frame %d: data offset = %d, want %d", i, got, offset)
		}

		if !bytes.Equal(out[offset:offset+uint32(len(f.Data))], f.Data) {
			t.Errorf("frame %d: payload bytes do not match input", i)
		}
		offset += uint32(len(f.Data))
	}

	// 256px entry wraps its dimension bytes to 0
	entry256 := out[HeaderSize+2*DirEntrySize:]
	if entry256[0] != 0 || entry256[1] != 0 {
		t.Errorf("256px entry width/height = %d/%d, want 0/0", entry256[0], entry256[1])
	}
}

func TestEncodeIdempotent(t *testing.T) {
	frames := []Frame{
		{Size: 16, Data: []byte{1, 2, 3}},
		{Size: 32, Data: []byte{4, 5, 6, 7}},
	}

	first, err := Encode(frames)
	if err != nil {
		t.Fatalf("first Encode failed: %v", err)
	}
	second, err := Encode(frames)
	if err != nil {
		t.Fatalf("second Encode failed: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("encoding the same frames twice produced different bytes")
	}
}

func TestEncodeNoFrames(t *testing.T) {
	if _, err := Encode(nil); !errors.Is(err, iconerr.ErrEncodeFailure) {
		t.Errorf("Encode(nil) error = %v, want ErrEncodeFailure", err)
	}
}

func TestEncodeOffsetInvariant(t *testing.T) {
	// Directory offsets must equal 6 + 16N + sum of preceding payload sizes
	// for a range of frame counts.
	for _, n := range []int{1, 2, 5, 14} {
		t.Run(fmt.Sprintf("frames_%d", n), func(t *testing.T) {
			frames := make([]Frame, n)
			total := 0
			for i := range frames {
				frames[i] = Frame{Size: uint(16 + i), Data: bytes.Repeat([]byte{byte(i)}, 10+i*7)}
				total += len(frames[i].Data)
			}

			out, err := Encode(frames)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if want := HeaderSize + DirEntrySize*n + total; len(out) != want {
				t.Fatalf("length = %d, want %d", len(out), want)
			}

			running := uint32(HeaderSize + DirEntrySize*n)
			for i := 0; i < n; i++ {
				entry := out[HeaderSize+i*DirEntrySize:]
				if got := binary.LittleEndian.Uint32(entry[12:16]); got != running {
					t.Errorf("frame %d offset = %d, want %d", i, got, running)
				}
				running += binary.LittleEndian.Uint32(entry[8:12])
			}
		})
	}
}
