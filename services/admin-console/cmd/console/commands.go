package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"carniceria-admin/services/admin-console/internal/manager"
	"carniceria-admin/services/admin-console/internal/view"
)

func listCmd(opts func() appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listar los tipos de pago",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts(), func(a *app) error {
				return runList(cmd.Context(), a.manager, a.out)
			})
		},
	}
}

func searchCmd(opts func() appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: manager.LabelSearchPlaceholder,
		Long: `Filtra la lista de tipos de pago por descripción.

La búsqueda se hace sobre la lista ya cargada y no distingue mayúsculas.

Examples:
  console search Efectivo
  console search tarj`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts(), func(a *app) error {
				return runSearch(cmd.Context(), a.manager, a.out, args[0])
			})
		},
	}
}

func addCmd(opts func() appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add [description]",
		Short: manager.LabelAddTrigger,
		Long: manager.LabelModalTitle + `

Valida que la descripción no esté vacía ni repetida antes de enviarla.

Examples:
  console add Transferencia
  console add "Billetera digital"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts(), func(a *app) error {
				return runAdd(cmd.Context(), a.manager, a.out, args[0])
			})
		},
	}
}

func withApp(cmd *cobra.Command, opts appOptions, fn func(*app) error) error {
	a, err := newApp(opts, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

// errReported marks an error the notifier has already shown to the user.
var errReported = errors.New("operation failed")

func runList(ctx context.Context, m *manager.Manager, out io.Writer) error {
	if err := mountForReading(ctx, m, out); err != nil {
		return err
	}
	return view.RenderTable(out, m.Visible(), "")
}

func runSearch(ctx context.Context, m *manager.Manager, out io.Writer, query string) error {
	if err := mountForReading(ctx, m, out); err != nil {
		return err
	}
	m.SetQuery(query)
	return view.RenderTable(out, m.Visible(), query)
}

func runAdd(ctx context.Context, m *manager.Manager, out io.Writer, description string) error {
	// Without a fresh list the duplicate check would be meaningless.
	if err := m.Mount(ctx); err != nil {
		return errReported
	}
	if err := m.Add(ctx, description); err != nil {
		if manager.Message(err) != "" {
			return errReported
		}
		return err
	}
	return view.RenderTable(out, m.Visible(), "")
}

// mountForReading tolerates a failed load as long as a snapshot filled the list.
func mountForReading(ctx context.Context, m *manager.Manager, out io.Writer) error {
	if err := m.Mount(ctx); err != nil {
		if len(m.Items()) == 0 {
			return errReported
		}
		fmt.Fprintln(out, staleNotice)
	}
	return nil
}

const staleNotice = "(mostrando la última lista conocida)"

func describeModal(m *manager.Manager) string {
	switch m.Modal() {
	case manager.ModalOpen:
		return fmt.Sprintf("[%s] %s", manager.LabelModalTitle, strings.TrimSpace(m.Draft()))
	case manager.ModalSubmitting:
		return fmt.Sprintf("[%s] enviando...", manager.LabelModalTitle)
	default:
		return ""
	}
}
