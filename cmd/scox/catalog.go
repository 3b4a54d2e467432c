package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scoxgen/scox/internal/catalog"
	"github.com/scoxgen/scox/internal/entities/insmv"
)

var catalogFaction string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the embedded archetype catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available archetype profiles",
	RunE:  runCatalogList,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the embedded catalog",
	RunE:  runCatalogValidate,
}

func init() {
	catalogListCmd.Flags().StringVar(&catalogFaction, "faction", "", "only list one faction (angel or demon)")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	factions := insmv.Factions()
	if catalogFaction != "" {
		f, err := insmv.ParseFaction(catalogFaction)
		if err != nil {
			return err
		}
		factions = []insmv.Faction{f}
	}

	for _, f := range factions {
		profiles, err := cat.Lookup(f)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n", f)
		for _, p := range profiles {
			fmt.Printf("  %-12s %-14s budget %2d  %s\n", p.ID, p.Name, p.BaseBudget, p.Source)
		}
	}
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	total := 0
	for _, f := range insmv.Factions() {
		profiles, err := cat.Lookup(f)
		if err != nil {
			return err
		}
		total += len(profiles)
	}
	fmt.Printf("catalog OK: %d archetype profiles\n", total)
	return nil
}
