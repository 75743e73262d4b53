package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renato0307/okterm/internal/palette"
	"github.com/renato0307/okterm/internal/ui"
)

func newPalettesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:     "palettes",
		Aliases: []string{"list"},
		Short:   "List the built-in palettes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current := strings.ToLower(strings.TrimSpace(o.cfg.Palette))
			if current == "" {
				current = palette.DefaultName
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("Palettes"))
			for _, name := range palette.Available() {
				table, err := palette.Get(name)
				if err != nil {
					return err
				}

				marker := "  "
				if name == current {
					marker = ui.Success("* ")
				}
				tiers := "no tint tiers"
				if n := countTiers(table); n > 0 {
					tiers = fmt.Sprintf("%d tint tiers", n)
				}
				fmt.Fprintf(out, "%s%-10s %s\n", marker, name, ui.Muted("%d slots, %s", len(table.Entries), tiers))
			}
			return nil
		},
	}
}

func countTiers(t palette.Table) int {
	n := 0
	for _, e := range t.Entries {
		if e.Slot.IsTier() {
			n++
		}
	}
	return n
}

func completePalettes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, name := range palette.Available() {
		if strings.HasPrefix(name, strings.ToLower(toComplete)) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
