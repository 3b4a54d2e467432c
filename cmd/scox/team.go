package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/scoxgen/scox/internal/config"
	"github.com/scoxgen/scox/internal/errors"
	svgexport "github.com/scoxgen/scox/internal/export/svg"
	txtexport "github.com/scoxgen/scox/internal/export/txt"
	"github.com/scoxgen/scox/internal/pkg/clock"
	"github.com/scoxgen/scox/internal/pkg/idgen"
	"github.com/scoxgen/scox/internal/redis"
	teamrepo "github.com/scoxgen/scox/internal/repositories/team"
)

var (
	teamExportOut    string
	teamExportFormat string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage stored rosters",
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored rosters",
	RunE:  runTeamList,
}

var teamShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Print every character of a stored roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamShow,
}

var teamDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a stored roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamDelete,
}

var teamExportCmd = &cobra.Command{
	Use:   "export NAME",
	Short: "Re-render the sheets of a stored roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamExport,
}

func init() {
	teamExportCmd.Flags().StringVar(&teamExportOut, "out", "", "output directory (default SCOX_OUTPUT_DIR or .)")
	teamExportCmd.Flags().StringVar(&teamExportFormat, "format", "svg", "sheet format: svg or txt")
	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamShowCmd)
	teamCmd.AddCommand(teamDeleteCmd)
	teamCmd.AddCommand(teamExportCmd)
}

// newRepository wires a roster repository from configuration
func newRepository(cfg *config.Config) (teamrepo.Repository, error) {
	client, err := redis.NewClient(cfg.Redis.Addr, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	return teamrepo.NewRedisRepository(&teamrepo.Config{
		Client:      client,
		Clock:       clock.New(),
		IDGenerator: idgen.NewPrefixed("roster"),
	})
}

func loadRepository() (teamrepo.Repository, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	return newRepository(cfg)
}

func runTeamList(cmd *cobra.Command, args []string) error {
	repo, err := loadRepository()
	if err != nil {
		return err
	}

	out, err := repo.List(cmd.Context(), teamrepo.ListInput{})
	if err != nil {
		return err
	}
	if len(out.Stored) == 0 {
		fmt.Println("no stored rosters")
		return nil
	}
	for _, s := range out.Stored {
		total := 0
		for _, t := range s.Teams {
			total += t.Size()
		}
		fmt.Printf("%-20s %d characters, saved %s\n", s.Name, total, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runTeamShow(cmd *cobra.Command, args []string) error {
	repo, err := loadRepository()
	if err != nil {
		return err
	}

	out, err := repo.Get(cmd.Context(), teamrepo.GetInput{Name: args[0]})
	if err != nil {
		return err
	}

	for _, t := range out.Stored.Teams {
		fmt.Printf("== %s (seed %d, power spread %d)\n", t.Faction, t.Seed, t.PowerSpread())
		for _, ch := range t.Characters {
			if err := txtexport.Render(os.Stdout, ch); err != nil {
				return err
			}
		}
	}
	return nil
}

func runTeamDelete(cmd *cobra.Command, args []string) error {
	repo, err := loadRepository()
	if err != nil {
		return err
	}

	if _, err := repo.Delete(cmd.Context(), teamrepo.DeleteInput{Name: args[0]}); err != nil {
		return err
	}
	fmt.Printf("roster %q deleted\n", args[0])
	return nil
}

func runTeamExport(cmd *cobra.Command, args []string) error {
	if teamExportFormat != "svg" && teamExportFormat != "txt" {
		return errors.InvalidArgumentf("unknown format %q (want svg or txt)", teamExportFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	outDir := teamExportOut
	if outDir == "" {
		outDir = cfg.Output.Dir
	}

	repo, err := newRepository(cfg)
	if err != nil {
		return err
	}
	out, err := repo.Get(cmd.Context(), teamrepo.GetInput{Name: args[0]})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", outDir)
	}

	for _, t := range out.Stored.Teams {
		for slot, ch := range t.Characters {
			name := fmt.Sprintf("%s_%s_%02d.%s", t.Faction, ch.ArchetypeID, slot+1, teamExportFormat)
			var buf bytes.Buffer
			if teamExportFormat == "svg" {
				err = svgexport.Render(&buf, ch)
			} else {
				err = txtexport.Render(&buf, ch)
			}
			if err != nil {
				return errors.Wrapf(err, "failed to render %s", name)
			}
			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return errors.Wrapf(err, "failed to write %s", path)
			}
		}
	}
	fmt.Printf("roster %q exported to %s\n", args[0], outDir)
	return nil
}
