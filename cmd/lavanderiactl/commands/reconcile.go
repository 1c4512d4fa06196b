package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MikeRez0/lavanderia/internal/core/domain"
)

func reconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Recompute abonado, faltante and estadoPago from stored payments",
	}
	cmd.AddCommand(reconcileOrderCmd(), reconcileAllCmd())
	return cmd
}

func reconcileOrderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "order <id>",
		Short: "Reconcile one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("order id %q: %w", args[0], err)
			}
			order, err := appCtx.svc.ReconcileOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			w := newTable(cmd.OutOrStdout())
			printOrder(w, order)
			return w.Flush()
		},
	}
}

func reconcileAllCmd() *cobra.Command {
	var estado string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Reconcile every order",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := domain.OrderFilter{EstadoPago: domain.PaymentStatus(estado)}
			if estado != "" && !filter.EstadoPago.IsValid() {
				return fmt.Errorf("estado %q: %w", estado, domain.ErrBadRequest)
			}
			ids, err := appCtx.repo.ListOrderIDs(cmd.Context(), filter)
			if err != nil {
				return err
			}

			w := newTable(cmd.OutOrStdout())
			failed := 0
			for _, id := range ids {
				order, err := appCtx.svc.ReconcileOrder(cmd.Context(), id)
				if err != nil {
					failed++
					fmt.Fprintf(w, "%d\terror: %s\n", id, err)
					continue
				}
				printOrder(w, order)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d orders, %d failed\n", len(ids), failed)
			if failed > 0 {
				return fmt.Errorf("%d orders could not be reconciled", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&estado, "estado", "", "only orders with this estadoPago (COMPLETO|INCOMPLETO)")
	return cmd
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func printOrder(w io.Writer, o *domain.Order) {
	fmt.Fprintf(w, "%d\t%s\ttotal %s %s\tabonado %s\tfaltante %s\t%s\n",
		o.ID, o.Client, o.Total, o.Currency, o.Abonado, o.Faltante, o.EstadoPago)
}
