package walleticon

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
)

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	icoMaxSize    = 256
)

// EncodeICO writes icons as a Windows icon container with PNG compressed entries.
func EncodeICO(w io.Writer, icons []image.Image) error {
	if len(icons) == 0 {
		return ErrNoIcons
	}

	payloads := make([][]byte, len(icons))
	for i, icon := range icons {
		size := icon.Bounds().Size()
		if size.X > icoMaxSize || size.Y > icoMaxSize {
			return fmt.Errorf("%w: %s", ErrIconTooLarge, size)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, icon); err != nil {
			return fmt.Errorf("walleticon: encode %s icon: %w", size, err)
		}
		payloads[i] = buf.Bytes()
	}

	var (
		buf    bytes.Buffer
		offset = uint32(icoHeaderSize + len(icons)*icoEntrySize)
	)
	// Header: reserved, type (1=ICO), count.
	_ = binary.Write(&buf, binary.LittleEndian, [3]uint16{0, 1, uint16(len(icons))})

	for i, icon := range icons {
		size := icon.Bounds().Size()
		// Width, height, palette, reserved, color planes, bits per pixel, data size and offset.
		buf.Write([]byte{icoDimension(size.X), icoDimension(size.Y), 0, 0})
		_ = binary.Write(&buf, binary.LittleEndian, [2]uint16{1, 32})
		_ = binary.Write(&buf, binary.LittleEndian, [2]uint32{uint32(len(payloads[i])), offset})
		offset += uint32(len(payloads[i]))
	}
	for _, payload := range payloads {
		buf.Write(payload)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// icoDimension encodes a width or height; 0 means 256.
func icoDimension(v int) uint8 {
	if v >= icoMaxSize {
		return 0
	}
	return uint8(v)
}
