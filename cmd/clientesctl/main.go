// clientesctl importa clientes desde un CSV y lista los registrados, usando el
// mismo almacén que la API (DB_DRIVER, DB_PATH, DATABASE_URL...).
//
// Uso:
//
//	clientesctl import --file clientes.csv [--encoding windows-1252]
//	clientesctl list
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jhoicas/clientes-api/internal/application/customer"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/infrastructure/csvimport"
	"github.com/jhoicas/clientes-api/internal/infrastructure/storage"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// exitErr lleva el código de salida por el camino de errores de cobra.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

type importFlags struct {
	file     string
	encoding string
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clientesctl",
		Short:         "Herramientas de línea de comandos para el registro de clientes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var flags importFlags
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Registra los clientes de un archivo CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUseCase(cmd.Context(), func(ctx context.Context, uc *customer.CustomerUseCase) error {
				return runImport(ctx, uc, flags, cmd.OutOrStdout())
			})
		},
	}
	f := importCmd.Flags()
	f.StringVar(&flags.file, "file", "", "Ruta del CSV a importar")
	f.StringVar(&flags.encoding, "encoding", "utf-8", "Codificación del CSV: utf-8, windows-1252 o iso-8859-1")
	_ = importCmd.MarkFlagRequired("file")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Muestra todos los clientes registrados",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUseCase(cmd.Context(), func(ctx context.Context, uc *customer.CustomerUseCase) error {
				return runList(ctx, uc, cmd.OutOrStdout())
			})
		},
	}

	root.AddCommand(importCmd, listCmd)
	return root
}

// withUseCase abre el almacén configurado y cierra la conexión al terminar fn.
func withUseCase(ctx context.Context, fn func(context.Context, *customer.CustomerUseCase) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return codeError(2, "configuración: %s", err)
	}
	log := logger.NewWithWriter(os.Stderr, cfg.App.LogLevel)

	repo, closeStore, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		return codeError(2, "abrir almacén (%s): %s", cfg.DB.Driver, err)
	}
	defer closeStore()

	return fn(ctx, customer.NewCustomerUseCase(repo, log, nil))
}

func runImport(ctx context.Context, uc *customer.CustomerUseCase, flags importFlags, out io.Writer) error {
	enc, err := csvimport.Decoder(flags.encoding)
	if err != nil {
		return codeError(2, "%s", err)
	}
	file, err := os.Open(flags.file)
	if err != nil {
		return codeError(2, "abrir CSV: %s", err)
	}
	defer file.Close()

	rows, err := csvimport.Read(file, enc)
	if err != nil {
		return codeError(2, "%s", err)
	}

	created, failed := importRows(ctx, uc, rows, out)
	fmt.Fprintf(out, "%d importados, %d rechazados\n", created, failed)
	if failed > 0 {
		return codeError(1, "%d filas rechazadas", failed)
	}
	return nil
}

// importRows registra cada fila por separado; una fila rechazada no afecta a las demás.
func importRows(ctx context.Context, uc *customer.CustomerUseCase, rows []csvimport.Row, out io.Writer) (created, failed int) {
	for _, row := range rows {
		c, err := uc.Create(ctx, row.Draft)
		if err != nil {
			failed++
			fmt.Fprintf(out, "línea %d: %s\n", row.Line, err)
			continue
		}
		created++
		fmt.Fprintf(out, "línea %d: cliente %d registrado (%s)\n", row.Line, c.ID, c.Name)
	}
	return created, failed
}

func runList(ctx context.Context, uc *customer.CustomerUseCase, out io.Writer) error {
	list, err := uc.List(ctx)
	if err != nil {
		return codeError(1, "listar clientes: %s", err)
	}
	return printCustomers(out, list)
}

func printCustomers(out io.Writer, list []dto.CustomerResponse) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "Ningún cliente registrado todavía.")
		return err
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Nombre", "Dirección", "Nacimiento", "Tipo", "CPF/CNPJ"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	for _, c := range list {
		table.Append([]string{c.Name, c.Address, c.BirthDate, c.CustomerType, c.TaxID})
	}
	table.Render()
	return nil
}
