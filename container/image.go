package container

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	imageHeaderSize uint32 = 0x24
	imageVersion    uint32 = 1
)

// MaxDimension is the largest width or height an image chunk may
// declare.
const MaxDimension = 0x7FFF

// Image is one decoded cursor frame.
//
// Size is the nominal size class the frame was authored for; it does
// not need to match the actual pixel dimensions.
type Image struct {
	Size   uint32
	Width  uint32
	Height uint32
	XHot   uint32
	YHot   uint32
	Delay  uint32 // milliseconds before the next animation frame

	PixelsRGBA []byte // pixel bytes exactly as stored on disk
	PixelsARGB []byte // same pixels with the last channel moved to the front
}

func (img Image) String() string {
	return fmt.Sprintf("Image(size=%d %dx%d hot=%d,%d delay=%dms)",
		img.Size, img.Width, img.Height, img.XHot, img.YHot, img.Delay)
}

// DecodeImage decodes one image chunk starting at the current position
// of r.
func DecodeImage(r io.Reader) (Image, error) {
	var header struct {
		HeaderSize uint32
		Type       uint32
		Size       uint32
		Version    uint32
		Width      uint32
		Height     uint32
		XHot       uint32
		YHot       uint32
		Delay      uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return Image{}, fmt.Errorf("reading image header: %w", err)
	}

	switch {
	case header.HeaderSize != imageHeaderSize:
		return Image{}, fmt.Errorf("%w: header size %#08x", ErrBadChunk, header.HeaderSize)
	case header.Type != TypeImage:
		return Image{}, fmt.Errorf("%w: chunk type %#08x", ErrBadChunk, header.Type)
	case header.Version != imageVersion:
		return Image{}, fmt.Errorf("%w: image version %d", ErrBadChunk, header.Version)
	case header.Width > MaxDimension || header.Height > MaxDimension:
		return Image{}, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, header.Width, header.Height)
	case header.Width == 0 || header.Height == 0:
		return Image{}, fmt.Errorf("%w: %dx%d", ErrZeroSizeImage, header.Width, header.Height)
	case header.XHot > header.Width || header.YHot > header.Height:
		return Image{}, fmt.Errorf("%w: %d,%d", ErrHotspotOutOfBounds, header.XHot, header.YHot)
	}

	pixels := make([]byte, 4*header.Width*header.Height)
	if _, err := io.ReadFull(r, pixels); err != nil {
		return Image{}, fmt.Errorf("reading %d pixel bytes: %w", len(pixels), err)
	}

	return Image{
		Size:       header.Size,
		Width:      header.Width,
		Height:     header.Height,
		XHot:       header.XHot,
		YHot:       header.YHot,
		Delay:      header.Delay,
		PixelsRGBA: pixels,
		PixelsARGB: ToARGB(pixels),
	}, nil
}

// ToARGB rotates each 4-byte pixel so the channel stored last comes
// first: (c0,c1,c2,c3) becomes (c3,c0,c1,c2). For the RGBA channel
// order cursor files use on disk this yields ARGB. A trailing partial
// pixel is dropped.
func ToARGB(b []byte) []byte {
	out := make([]byte, 0, len(b)-len(b)%4)
	for len(b) >= 4 {
		out = append(out, b[3], b[0], b[1], b[2])
		b = b[4:]
	}
	return out
}
