package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/udistrital/observatorio_mid/internal/esquema"
	"github.com/udistrital/observatorio_mid/models"
	"github.com/udistrital/observatorio_mid/services"
)

// NewEsquemaCommand crea el comando que imprime el catálogo del backend.
func NewEsquemaCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "esquema",
		Short: "Imprime las tablas y columnas del esquema configurado",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("formato %q inválido: use json o yaml", format)
			}
			cfg := services.GetConfig()
			configurarLogs(cfg.LogLevel)

			conn, err := conectar(cfg)
			if err != nil {
				return err
			}
			defer conn.cerrar()
			if conn.catalogo == nil {
				return fmt.Errorf("el backend %s no expone catálogo", cfg.Backend)
			}

			tables, err := esquema.NewIntrospector(conn.catalogo, cfg.CatalogSchema).ListTables(context.Background())
			if err != nil {
				return err
			}
			return writeTables(cmd.OutOrStdout(), format, tables)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "formato de salida (json|yaml)")

	return cmd
}

func writeTables(w io.Writer, format string, tables []models.TableDescriptor) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tables); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tables)
}
