package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func ratesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Conversion rate settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the principal currency and the rate of every secondary currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := appCtx.svc.GetSettings(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintf(w, "principal\t%s\n", settings.Principal)
			for _, c := range settings.Secondary() {
				rate, ok := settings.Rates.Rate(c)
				if !ok {
					fmt.Fprintf(w, "%s\tno rate\n", c)
					continue
				}
				fmt.Fprintf(w, "%s\t%s per %s\n", c, rate, settings.Principal)
			}
			return w.Flush()
		},
	})
	return cmd
}
