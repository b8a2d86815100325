package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randomtoy/kinun-go/internal/domain"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List the ten day-stem archetypes",
	Args:  cobra.NoArgs,
	RunE:  runArchetypes,
}

func init() {
	archetypesCmd.Flags().StringP("output", "o", "text", "output format: text, json or yaml")
	rootCmd.AddCommand(archetypesCmd)
}

func runArchetypes(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("output")
	return writeArchetypes(cmd.OutOrStdout(), format, domain.Catalog())
}

func writeArchetypes(w io.Writer, format string, all []domain.Archetype) error {
	switch format {
	case "text":
		for _, a := range all {
			fmt.Fprintf(w, "%d %s (%s) %s %s: %s\n", a.Index, a.Name, a.Reading, a.Emblem, a.Title, a.Tagline)
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(all)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(all); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
