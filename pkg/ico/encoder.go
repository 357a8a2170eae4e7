// Package ico assembles encoded icon frames into a multi-resolution
// icon container file with correct directory and offset bookkeeping.
package ico

import (
	"encoding/binary"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/iconforge/internal/outpath"
	"github.com/provide-io/iconforge/pkg/iconerr"
)

// Container layout constants
const (
	// HeaderSize is the fixed ICONDIR header length
	HeaderSize = 6

	// DirEntrySize is the length of one ICONDIRENTRY record
	DirEntrySize = 16

	// iconResourceType marks the container as an icon (1), not a cursor (2)
	iconResourceType = 1

	// maxFrames is the directory count field's ceiling (u16)
	maxFrames = 0xFFFF
)

// Frame is one encoded image of an icon container. It is created once per
// requested size and consumed exactly once by Encode.
type Frame struct {
	// Size is the frame's edge length in pixels.
	Size uint

	// Data is the encoded payload: masked bitmap for small frames,
	// PNG for 256px and larger. Encode treats it as opaque bytes.
	Data []byte
}

// Encode assembles frames into a complete icon container: a 6-byte header,
// one 16-byte directory entry per frame in the given order, then the frame
// payloads concatenated in the same order. Each directory entry's offset is
// the running total of 6 + 16*N plus all preceding payload lengths.
func Encode(frames []Frame) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames to encode", iconerr.ErrEncodeFailure)
	}
	if len(frames) > maxFrames {
		return nil, fmt.Errorf("%w: %d frames exceed the directory limit", iconerr.ErrEncodeFailure, len(frames))
	}

	total := HeaderSize + DirEntrySize*len(frames)
	for _, f := range frames {
		total += len(f.Data)
	}

	buf := make([]byte, total)

	// ICONDIR header
	binary.LittleEndian.PutUint16(buf[0:2], 0) // reserved
	binary.LittleEndian.PutUint16(buf[2:4], iconResourceType)
	binary.LittleEndian.PutUint16(buf[4:6], uint16(len(frames)))

	// Directory entries, with cumulative payload offsets
	offset := uint32(HeaderSize + DirEntrySize*len(frames))
	for i, f := range frames {
		entry := buf[HeaderSize+i*DirEntrySize:]

		// 256 wraps to 0: the width/height bytes hold size mod 256.
		entry[0] = byte(f.Size)
		entry[1] = byte(f.Size)
		entry[2] = 0                                 // color palette size (truecolor)
		entry[3] = 0                                 // reserved
		binary.LittleEndian.PutUint16(entry[4:6], 1) // color planes
		binary.LittleEndian.PutUint16(entry[6:8], MaskedBitsPerPixel)
		binary.LittleEndian.PutUint32(entry[8:12], uint32(len(f.Data)))
		binary.LittleEndian.PutUint32(entry[12:16], offset)

		offset += uint32(len(f.Data))
	}

	// Payloads, immediately after the directory, in entry order
	pos := HeaderSize + DirEntrySize*len(frames)
	for _, f := range frames {
		pos += copy(buf[pos:], f.Data)
	}

	return buf, nil
}

// WriteFile encodes frames and writes the container to path. The container
// is assembled fully in memory and staged through a temporary file, so a
// failure at any point leaves no partially valid icon on disk.
func WriteFile(path string, frames []Frame, logger hclog.Logger) error {
	data, err := Encode(frames)
	if err != nil {
		return err
	}

	logger.Debug("📦 Writing icon container",
		"path", path,
		"frames", len(frames),
		"size", len(data))

	if err := outpath.WriteFileAtomic(path, data, logger); err != nil {
		return fmt.Errorf("%w: %s: %v", iconerr.ErrOutputWriteFailure, path, err)
	}

	return nil
}
