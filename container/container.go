// Package container decodes the Xcursor binary container format.
//
// An Xcursor file starts with a fixed header and a table of contents;
// each TOC entry points at a chunk elsewhere in the file. Image chunks
// hold one bitmap frame per nominal size and animation step. Decoding
// is fail-fast: one malformed chunk invalidates the whole container.
package container

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Chunk type tags found in the table of contents.
const (
	TypeComment uint32 = 0xFFFE0001
	TypeImage   uint32 = 0xFFFD0002
)

var magic = [4]byte{'X', 'c', 'u', 'r'}

// TOCEntry is one table-of-contents record: the chunk's type tag, its
// subtype (the nominal size, for image chunks), and the absolute byte
// offset of its payload.
type TOCEntry struct {
	Type    uint32
	Subtype uint32
	Offset  uint32
}

// File is a fully decoded cursor container.
type File struct {
	Entries []TOCEntry // every TOC record, in file order
	Images  []Image    // decoded image chunks, in TOC order
}

// Decode reads a cursor container from r. Entries whose type is not
// TypeImage are recorded but not decoded further.
func Decode(r io.ReadSeeker) (*File, error) {
	var header struct {
		Magic      [4]byte
		HeaderSize uint32
		Version    uint32
		NToc       uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("container: reading header: %w", err)
	}
	if header.Magic != magic {
		return nil, fmt.Errorf("container: %w", ErrBadMagic)
	}

	// The declared count is untrusted; read entry by entry so a
	// truncated TOC fails on the read, not on a huge allocation.
	entries := make([]TOCEntry, 0, min(header.NToc, 64))
	for i := uint32(0); i < header.NToc; i++ {
		var entry TOCEntry
		if err := binary.Read(r, binary.LittleEndian, &entry); err != nil {
			return nil, fmt.Errorf("container: reading table of contents: %w", err)
		}
		entries = append(entries, entry)
	}

	file := &File{Entries: entries}
	for i, entry := range entries {
		if entry.Type != TypeImage {
			continue
		}
		if _, err := r.Seek(int64(entry.Offset), io.SeekStart); err != nil {
			return nil, fmt.Errorf("container: seeking to chunk %d: %w", i, err)
		}
		img, err := DecodeImage(r)
		if err != nil {
			return nil, fmt.Errorf("container: chunk %d: %w", i, err)
		}
		file.Images = append(file.Images, img)
	}

	return file, nil
}

// Parse decodes a cursor container held in memory.
func Parse(b []byte) (*File, error) {
	return Decode(bytes.NewReader(b))
}
