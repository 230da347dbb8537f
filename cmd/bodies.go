package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"orrery/feature/orrery"
	"orrery/feature/orrery/models"

	"github.com/spf13/cobra"
)

// bodiesCmd prints the compiled-in catalog
var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List the bodies drawn in the orrery",
	Long:  `Prints every body with its orbital distance, colour and marker size, in draw order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := orrery.SolarSystem()
		if err := orrery.Validate(cat); err != nil {
			return err
		}
		return printBodies(cmd.OutOrStdout(), cat)
	},
}

func init() {
	RootCmd.AddCommand(bodiesCmd)
}

func printBodies(out io.Writer, cat models.Catalog) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDISTANCE (AU)\tCOLOR\tMARKER SIZE")
	fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\n", cat.Sun.Name, "-", cat.Sun.Color, orrery.MarkerScale*cat.Sun.Size)
	for _, p := range cat.Planets {
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%.2f\n", p.Name, p.Distance, p.Color, orrery.MarkerScale*p.Size)
	}
	return w.Flush()
}
