package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

// A sample XCursor file generated with xcursorgen: a single 4x4 image,
// hotspot at 1,1, 1ms delay, every pixel 0x80000000 ARGB.
var sampleFile = []byte{
	0x58, 0x63, 0x75, 0x72, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00,
	0x00, 0x02, 0x00, 0xFD, 0xFF, 0x04, 0x00, 0x00, 0x00, 0x1C, 0x00, 0x00, 0x00, 0x24, 0x00,
	0x00, 0x00, 0x02, 0x00, 0xFD, 0xFF, 0x04, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x04,
	0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00,
	0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00,
	0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80,
	0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x80,
}

func u32(vals ...uint32) []byte {
	b := make([]byte, 0, len(vals)*4)
	for _, v := range vals {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}

func imageChunk(size, w, h, xhot, yhot, delay uint32, pixels []byte) []byte {
	return append(u32(0x24, TypeImage, size, 1, w, h, xhot, yhot, delay), pixels...)
}

func TestParseSample(t *testing.T) {
	file, err := Parse(sampleFile)
	if err != nil {
		t.Fatal(err)
	}

	if len(file.Entries) != 1 {
		t.Fatalf("expected 1 TOC entry, got %d", len(file.Entries))
	}
	want := TOCEntry{Type: TypeImage, Subtype: 4, Offset: 0x1C}
	if file.Entries[0] != want {
		t.Fatalf("entry: expected %+v, got %+v", want, file.Entries[0])
	}

	if len(file.Images) != 1 {
		t.Fatalf("expected 1 image, got %d", len(file.Images))
	}
	img := file.Images[0]
	if img.Size != 4 || img.Width != 4 || img.Height != 4 {
		t.Errorf("unexpected dimensions: %s", img)
	}
	if img.XHot != 1 || img.YHot != 1 || img.Delay != 1 {
		t.Errorf("unexpected metadata: %s", img)
	}
	if len(img.PixelsRGBA) != 64 || len(img.PixelsARGB) != 64 {
		t.Fatalf("expected 64-byte pixel buffers, got %d/%d", len(img.PixelsRGBA), len(img.PixelsARGB))
	}
	if !bytes.Equal(img.PixelsRGBA[:4], []byte{0x00, 0x00, 0x00, 0x80}) {
		t.Errorf("unexpected on-disk pixel: % x", img.PixelsRGBA[:4])
	}
	if !bytes.Equal(img.PixelsARGB[:4], []byte{0x80, 0x00, 0x00, 0x00}) {
		t.Errorf("unexpected rotated pixel: % x", img.PixelsARGB[:4])
	}
}

func TestParseBadMagic(t *testing.T) {
	mangled := append([]byte("Xcuz"), sampleFile[4:]...)
	if _, err := Parse(mangled); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestParseTruncated(t *testing.T) {
	for _, n := range []int{0, 3, 12, 20, 40, 127} {
		if _, err := Parse(sampleFile[:n]); err == nil {
			t.Errorf("expected error for %d-byte prefix", n)
		}
	}
}

func TestParseHugeTOCCount(t *testing.T) {
	// A 16-byte file claiming four billion TOC entries must fail with
	// the short-read error, not attempt a matching allocation.
	file := append([]byte("Xcur"), u32(0x10, 0x10000, 0xFFFFFFFF)...)
	if _, err := Parse(file); err == nil {
		t.Fatal("expected error for truncated table of contents")
	}
}

func TestParseImagesFollowTOCOrder(t *testing.T) {
	// Two 1x1 image chunks laid out in the opposite order of their
	// TOC entries; the result must follow the TOC.
	first := imageChunk(16, 1, 1, 0, 0, 0, []byte{1, 2, 3, 4})
	second := imageChunk(8, 1, 1, 0, 0, 0, []byte{5, 6, 7, 8})

	file := []byte("Xcur")
	file = append(file, u32(0x10, 0x10000, 2)...)
	file = append(file, u32(TypeImage, 16, 80)...) // first, stored last
	file = append(file, u32(TypeImage, 8, 40)...)  // second, stored first
	file = append(file, second...)
	file = append(file, first...)

	decoded, err := Parse(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(decoded.Images))
	}
	if decoded.Images[0].Size != 16 || decoded.Images[1].Size != 8 {
		t.Errorf("images out of TOC order: %s, %s", decoded.Images[0], decoded.Images[1])
	}
}

func TestParseSkipsNonImageChunks(t *testing.T) {
	img := imageChunk(4, 1, 1, 0, 0, 0, []byte{1, 2, 3, 4})

	file := []byte("Xcur")
	file = append(file, u32(0x10, 0x10000, 2)...)
	file = append(file, u32(TypeComment, 1, 0xDEAD)...) // recorded, never dereferenced
	file = append(file, u32(TypeImage, 4, 40)...)
	file = append(file, img...)

	decoded, err := Parse(file)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Entries) != 2 {
		t.Errorf("expected 2 TOC entries, got %d", len(decoded.Entries))
	}
	if len(decoded.Images) != 1 {
		t.Errorf("expected 1 image, got %d", len(decoded.Images))
	}
}

func TestDecodeImageErrors(t *testing.T) {
	pixels := bytes.Repeat([]byte{0}, 64)

	cases := []struct {
		name  string
		chunk []byte
		want  error
	}{
		{
			"bad header size",
			append(u32(0x20, TypeImage, 4, 1, 4, 4, 1, 1, 1), pixels...),
			ErrBadChunk,
		},
		{
			"bad chunk type",
			append(u32(0x24, TypeComment, 4, 1, 4, 4, 1, 1, 1), pixels...),
			ErrBadChunk,
		},
		{
			"bad version",
			append(u32(0x24, TypeImage, 4, 2, 4, 4, 1, 1, 1), pixels...),
			ErrBadChunk,
		},
		{
			"width too large",
			u32(0x24, TypeImage, 4, 1, 0x8000, 4, 1, 1, 1),
			ErrImageTooLarge,
		},
		{
			"height too large",
			u32(0x24, TypeImage, 4, 1, 4, 0x8000, 1, 1, 1),
			ErrImageTooLarge,
		},
		{
			"zero width",
			u32(0x24, TypeImage, 4, 1, 0, 4, 0, 1, 1),
			ErrZeroSizeImage,
		},
		{
			"hotspot past right edge",
			u32(0x24, TypeImage, 4, 1, 4, 4, 5, 1, 1),
			ErrHotspotOutOfBounds,
		},
		{
			"hotspot past bottom edge",
			u32(0x24, TypeImage, 4, 1, 4, 4, 1, 5, 1),
			ErrHotspotOutOfBounds,
		},
		{
			"short pixel payload",
			append(u32(0x24, TypeImage, 4, 1, 4, 4, 1, 1, 1), 0xAA, 0xBB),
			io.ErrUnexpectedEOF,
		},
	}

	for _, c := range cases {
		_, err := DecodeImage(bytes.NewReader(c.chunk))
		if !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}

func TestToARGB(t *testing.T) {
	got := ToARGB([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	if !bytes.Equal(got, []byte{3, 0, 1, 2, 7, 4, 5, 6}) {
		t.Fatalf("unexpected rotation: % x", got)
	}
}

func TestToARGBFourRotationsIsIdentity(t *testing.T) {
	original := []byte{
		0x10, 0x20, 0x30, 0x40,
		0x50, 0x60, 0x70, 0x80,
		0x90, 0xA0, 0xB0, 0xC0,
	}
	b := original
	for i := 0; i < 4; i++ {
		b = ToARGB(b)
	}
	if !bytes.Equal(b, original) {
		t.Fatalf("expected identity after four rotations, got % x", b)
	}
}

func TestToARGBDropsPartialPixel(t *testing.T) {
	got := ToARGB([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8})
	if !bytes.Equal(got, []byte{3, 0, 1, 2, 7, 4, 5, 6}) {
		t.Fatalf("expected partial pixel dropped, got % x", got)
	}
}

func TestToARGBEmpty(t *testing.T) {
	if got := ToARGB(nil); len(got) != 0 {
		t.Fatalf("expected empty output, got % x", got)
	}
}
