package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"carniceria-admin/services/admin-console/internal/manager"
	"carniceria-admin/services/admin-console/internal/view"
)

const shellHelp = `Comandos:
  listar            mostrar la lista (con el filtro actual)
  buscar [texto]    filtrar por descripción; sin texto quita el filtro
  agregar           ` + manager.LabelAddTrigger + `
  cancelar          cerrar el formulario
  recargar          volver a cargar desde el servidor
  ayuda             mostrar esta ayuda
  salir             terminar`

func shellCmd(opts func() appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Pantalla interactiva de tipos de pago",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts(), func(a *app) error {
				return runShell(cmd.Context(), a.manager, cmd.InOrStdin(), a.out)
			})
		},
	}
}

const needsFreshList = `No se puede agregar sin la lista actualizada. Use "recargar".`

// runShell drives the manager from line-oriented input until "salir" or EOF.
func runShell(ctx context.Context, m *manager.Manager, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	if err := m.Mount(ctx); err != nil && len(m.Items()) > 0 {
		fmt.Fprintln(out, staleNotice)
	}
	view.RenderTable(out, m.Visible(), m.Query())
	fmt.Fprintln(out, shellHelp)

	for {
		if ctx.Err() != nil {
			return nil
		}
		if status := describeModal(m); status != "" {
			fmt.Fprintln(out, status)
		}
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		command, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		switch command {
		case "":
		case "listar":
			view.RenderTable(out, m.Visible(), m.Query())
		case "buscar":
			m.SetQuery(arg)
			view.RenderTable(out, m.Visible(), arg)
		case "agregar":
			if !m.Loaded() {
				fmt.Fprintln(out, needsFreshList)
				continue
			}
			if !promptAndSubmit(ctx, m, scanner, out) {
				return scanner.Err()
			}
		case "cancelar":
			m.CloseAdd()
		case "recargar":
			if err := m.Refresh(ctx); err == nil {
				view.RenderTable(out, m.Visible(), m.Query())
			}
		case "ayuda":
			fmt.Fprintln(out, shellHelp)
		case "salir":
			return nil
		default:
			fmt.Fprintf(out, "Comando desconocido: %s\n", command)
		}
	}
}

// promptAndSubmit reads one description and submits it. It returns false when
// input ended. A rejected draft leaves the form open for the next "agregar".
func promptAndSubmit(ctx context.Context, m *manager.Manager, scanner *bufio.Scanner, out io.Writer) bool {
	m.OpenAdd()

	fmt.Fprintf(out, "%s\n%s: ", manager.LabelModalTitle, manager.LabelInputPlaceholder)
	if !scanner.Scan() {
		return false
	}

	if err := m.SetDraft(scanner.Text()); err != nil {
		fmt.Fprintln(out, manager.Message(err))
		return true
	}

	fmt.Fprintf(out, "[%s]\n", manager.LabelSubmit)
	if err := m.Submit(ctx); err == nil {
		view.RenderTable(out, m.Visible(), m.Query())
	}
	return true
}
