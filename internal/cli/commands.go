package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/esposm03/xcursor/container"
)

var headerStyle = lipgloss.NewStyle().Bold(true)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the effective theme search roots",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range searchPaths(loadConfig()) {
			fmt.Println(p)
		}
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <icon>",
	Short: "Resolve an icon name to its cursor file",
	Long: `Resolve walks the theme's directories and, on a miss, its
inheritance chain, and prints the path of the first cursor file found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := currentTheme()
		path, ok := theme.LoadIcon(args[0])
		if !ok {
			return fmt.Errorf("icon %q not found in theme %q or its ancestors", args[0], theme.Name)
		}
		fmt.Println(path)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <icon>",
	Short: "List the frames inside an icon's cursor file",
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

		fmt.Println(headerStyle.Render(path))
		fmt.Printf("%d chunks, %d images\n", len(file.Entries), len(file.Images))
		for _, img := range file.Images {
			fmt.Println("  " + img.String())
		}
		return nil
	},
}

func decodeCursorFile(path string) (*container.File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	file, err := container.Parse(b)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return file, nil
}

func init() {
	rootCmd.AddCommand(pathsCmd, resolveCmd, infoCmd, previewCmd)
}
