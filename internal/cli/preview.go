package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	clr "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/esposm03/xcursor/container"
)

var previewSize uint32

var previewCmd = &cobra.Command{
	Use:   "preview <icon>",
	Short: "Render a frame of an icon in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := currentTheme()
		path, ok := theme.LoadIcon(args[0])
		if !ok {
			return fmt.Errorf("icon %q not found in theme %q or its ancestors", args[0], theme.Name)
		}

		file, err := decodeCursorFile(path)
		if err != nil {
			return err
		}
		if len(file.Images) == 0 {
			return fmt.Errorf("%s holds no image chunks", path)
		}

		img := bestFrame(file.Images, previewSize)
		fmt.Print(renderFrame(img))
		return nil
	},
}

func init() {
	previewCmd.Flags().Uint32Var(&previewSize, "size", 0, "preferred nominal size (default: largest)")
}

// bestFrame picks the image whose nominal size is nearest the
// requested one, or the largest frame when no size is given. Earlier
// frames win ties, so for animated cursors this is the first frame of
// the chosen size.
func bestFrame(images []container.Image, size uint32) container.Image {
	best := images[0]
	for _, img := range images[1:] {
		if size == 0 {
			if img.Size > best.Size {
				best = img
			}
			continue
		}
		if sizeDelta(img.Size, size) < sizeDelta(best.Size, size) {
			best = img
		}
	}
	return best
}

func sizeDelta(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

var (
	checkerLight = clr.Color{R: 0.60, G: 0.60, B: 0.60}
	checkerDark  = clr.Color{R: 0.40, G: 0.40, B: 0.40}
)

// renderFrame draws the frame two pixels per character cell with "▀",
// the upper pixel as the foreground and the lower as the background,
// alpha-blended over a checkerboard so transparency stays visible.
func renderFrame(img container.Image) string {
	var sb strings.Builder
	for y := uint32(0); y < img.Height; y += 2 {
		for x := uint32(0); x < img.Width; x++ {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(cellColor(img, x, y).Hex())).
				Background(lipgloss.Color(cellColor(img, x, y+1).Hex()))
			sb.WriteString(style.Render("▀"))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%s\n", img)
	return sb.String()
}

// cellColor blends the pixel at (x, y) over the checkerboard. Rows
// past the bottom edge (the lower half of the last cell row when the
// height is odd) show bare checkerboard.
func cellColor(img container.Image, x, y uint32) clr.Color {
	base := checkerDark
	if (x/4+y/4)%2 == 0 {
		base = checkerLight
	}
	if y >= img.Height {
		return base
	}

	p := img.PixelsRGBA[4*(y*img.Width+x):]
	pixel := clr.Color{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
	}
	alpha := float64(p[3]) / 255

	return base.BlendRgb(pixel, alpha).Clamped()
}
