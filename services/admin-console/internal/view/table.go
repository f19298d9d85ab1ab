// Package view renders the payment-type list for a terminal.
package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"carniceria-admin/services/admin-console/internal/models"
)

const emptyMessage = "No hay tipos de pago para mostrar"

// RenderTable writes one row per entry. Query, when set, is echoed above the table.
func RenderTable(w io.Writer, list []models.PaymentType, query string) error {
	if query != "" {
		if _, err := fmt.Fprintf(w, "Búsqueda: %q (%d resultados)\n", query, len(list)); err != nil {
			return err
		}
	}

	if len(list) == 0 {
		_, err := fmt.Fprintln(w, emptyMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESCRIPCIÓN\tESTADO")
	for _, pt := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", pt.ID, pt.Description, statusLabel(pt.Status))
	}
	return tw.Flush()
}

func statusLabel(status int) string {
	if status == models.StatusActive {
		return "Activo"
	}
	return "Inactivo"
}
