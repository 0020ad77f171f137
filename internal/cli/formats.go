package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/brandforge/adcanvas/pkg/format"
)

// formatsCommand creates the formats command for inspecting the catalog.
func (c *CLI) formatsCommand() *cobra.Command {
	var jsonOutput bool
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "formats [id]",
		Short: "List the format catalog or show one format",
		Long: `Formats lists the ad format catalog: dimensions, safe zones, logo rules,
and text limits. With an ID argument it shows that format's full rules.

A custom catalog can be loaded from a TOML file with --catalog.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return showFormat(catalog, args[0], jsonOutput)
			}
			return listFormats(catalog, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the catalog as JSON")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "load the catalog from a TOML file")

	return cmd
}

// loadCatalog returns the built-in catalog, or one loaded from a TOML file.
func loadCatalog(path string) (*format.Catalog, error) {
	if path == "" {
		return format.Default(), nil
	}
	return format.LoadCatalog(path)
}

// listFormats renders the catalog as a table.
func listFormats(catalog *format.Catalog, jsonOutput bool) error {
	formats := catalog.List()

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(formats)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, fd := range formats {
		safeZone := "—"
		if fd.SafeZone.Top > 0 || fd.SafeZone.Bottom > 0 {
			safeZone = fmt.Sprintf("top %.0f / bottom %.0f", fd.SafeZone.Top, fd.SafeZone.Bottom)
		}
		rows = append(rows, []string{
			fd.ID,
			fd.Name,
			fmt.Sprintf("%.0f×%.0f", fd.Width, fd.Height),
			safeZone,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Size", "Safe Zone").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	printNextStep("Resize a document", "adcanvas resize creative.json --to "+formats[0].ID)
	return nil
}

// showFormat prints one format's full rules.
func showFormat(catalog *format.Catalog, id string, jsonOutput bool) error {
	fd, err := catalog.Get(id)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(fd)
	}

	fmt.Println(StyleTitle.Render(fd.Name))
	printKeyValue("id", fd.ID)
	printKeyValue("size", fmt.Sprintf("%.0f×%.0f", fd.Width, fd.Height))
	printKeyValue("aspect", fmt.Sprintf("%.2f", fd.AspectRatio()))
	printKeyValue("safe zone", fmt.Sprintf("top %.0f · bottom %.0f · left %.0f · right %.0f",
		fd.SafeZone.Top, fd.SafeZone.Bottom, fd.SafeZone.Left, fd.SafeZone.Right))

	logoZones := "any corner"
	if len(fd.LogoRules.Zones) > 0 {
		zones := make([]string, len(fd.LogoRules.Zones))
		for i, z := range fd.LogoRules.Zones {
			zones[i] = string(z)
		}
		logoZones = strings.Join(zones, ", ")
	}
	printKeyValue("logo zones", logoZones)
	if fd.LogoRules.MaxSize > 0 {
		printKeyValue("logo size", fmt.Sprintf("%.0f%%-%.0f%% of canvas area",
			fd.LogoRules.MinSize*100, fd.LogoRules.MaxSize*100))
	}
	if fd.TextLimit > 0 {
		printKeyValue("text limit", fmt.Sprintf("%d characters", fd.TextLimit))
	}
	return nil
}
