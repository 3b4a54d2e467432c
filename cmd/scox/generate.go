package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/scoxgen/scox/internal/catalog"
	"github.com/scoxgen/scox/internal/config"
	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
	svgexport "github.com/scoxgen/scox/internal/export/svg"
	txtexport "github.com/scoxgen/scox/internal/export/txt"
	"github.com/scoxgen/scox/internal/orchestrators/allocator"
	"github.com/scoxgen/scox/internal/orchestrators/team"
	"github.com/scoxgen/scox/internal/pkg/idgen"
	"github.com/scoxgen/scox/internal/pkg/roller"
	teamrepo "github.com/scoxgen/scox/internal/repositories/team"
)

var (
	genAngels    int
	genDemons    int
	genSeed      int64
	genOut       string
	genDupCap    int
	genTolerance int
	genFormat    string
	genSave      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate balanced teams and render their sheets",
	Long: `Generate assembles one team per requested faction, then renders every
character sheet. Nothing is written until all teams validated: a failed
generation leaves no partial output behind.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&genAngels, "angels", 0, "number of angel characters")
	generateCmd.Flags().IntVar(&genDemons, "demons", 0, "number of demon characters")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 picks one and logs it)")
	generateCmd.Flags().StringVar(&genOut, "out", "", "output directory (default SCOX_OUTPUT_DIR or .)")
	generateCmd.Flags().IntVar(&genDupCap, "dup-cap", team.DefaultDuplicateCap, "max copies of one archetype per team")
	generateCmd.Flags().IntVar(&genTolerance, "tolerance", team.DefaultTolerance, "max power-score spread per team")
	generateCmd.Flags().StringVar(&genFormat, "format", "svg", "sheet format: svg, txt or both")
	generateCmd.Flags().StringVar(&genSave, "save", "", "also store the run as a named roster")
}

// sheet is one rendered file, buffered until the whole run validated
type sheet struct {
	name string
	data []byte
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if genAngels < 1 && genDemons < 1 {
		return errors.InvalidArgument("request at least one character with --angels or --demons")
	}
	if genFormat != "svg" && genFormat != "txt" && genFormat != "both" {
		return errors.InvalidArgumentf("unknown format %q (want svg, txt or both)", genFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	outDir := genOut
	if outDir == "" {
		outDir = cfg.Output.Dir
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	slog.InfoContext(ctx, "generation run",
		"seed", seed,
		"angels", genAngels,
		"demons", genDemons,
		"dup_cap", genDupCap,
		"tolerance", genTolerance)

	teams, err := assembleTeams(ctx, cat, seed)
	if err != nil {
		return err
	}

	sheets, err := renderSheets(teams)
	if err != nil {
		return err
	}

	if err := writeSheets(outDir, sheets); err != nil {
		return err
	}

	if genSave != "" {
		if err := saveRoster(ctx, cfg, teams); err != nil {
			return err
		}
		slog.InfoContext(ctx, "roster saved", "name", genSave)
	}

	for _, t := range teams {
		fmt.Printf("%s: %d characters, power spread %d\n", t.Faction, t.Size(), t.PowerSpread())
		for _, s := range t.WidenedSlots {
			fmt.Printf("  note: slot %d accepted under widened tolerance\n", s)
		}
	}
	return nil
}

// assembleTeams runs the balancer once per requested faction, sharing one
// seeded roller so that the whole run replays from the seed
func assembleTeams(ctx context.Context, cat *catalog.Catalog, seed int64) ([]*insmv.Team, error) {
	alloc, err := allocator.NewOrchestrator(&allocator.Config{Scoring: cat.Scoring()})
	if err != nil {
		return nil, err
	}

	r := roller.NewSeeded(seed)

	requests := []struct {
		faction insmv.Faction
		size    int
	}{
		{insmv.FactionAngel, genAngels},
		{insmv.FactionDemon, genDemons},
	}

	var teams []*insmv.Team
	for _, req := range requests {
		if req.size < 1 {
			continue
		}

		balancer, err := team.NewOrchestrator(&team.Config{
			Catalog:     cat,
			Allocator:   alloc,
			IDGenerator: idgen.NewSequential(req.faction.String()),
		})
		if err != nil {
			return nil, err
		}

		out, err := balancer.Assemble(ctx, &team.AssembleInput{
			Faction:      req.faction,
			Size:         req.size,
			DuplicateCap: genDupCap,
			Tolerance:    genTolerance,
			Seed:         seed,
			Roller:       r,
		})
		if err != nil {
			return nil, err
		}
		teams = append(teams, out.Team)
	}

	return teams, nil
}

// renderSheets renders every character into memory. File names embed
// faction, archetype and slot so a run never collides with itself.
func renderSheets(teams []*insmv.Team) ([]sheet, error) {
	var sheets []sheet
	for _, t := range teams {
		for slot, ch := range t.Characters {
			base := fmt.Sprintf("%s_%s_%02d", t.Faction, ch.ArchetypeID, slot+1)

			if genFormat == "svg" || genFormat == "both" {
				var buf bytes.Buffer
				if err := svgexport.Render(&buf, ch); err != nil {
					return nil, errors.Wrapf(err, "failed to render %s.svg", base)
				}
				sheets = append(sheets, sheet{name: base + ".svg", data: buf.Bytes()})
			}
			if genFormat == "txt" || genFormat == "both" {
				var buf bytes.Buffer
				if err := txtexport.Render(&buf, ch); err != nil {
					return nil, errors.Wrapf(err, "failed to render %s.txt", base)
				}
				sheets = append(sheets, sheet{name: base + ".txt", data: buf.Bytes()})
			}
		}
	}
	return sheets, nil
}

func writeSheets(outDir string, sheets []sheet) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", outDir)
	}
	for _, s := range sheets {
		path := filepath.Join(outDir, s.name)
		if err := os.WriteFile(path, s.data, 0o644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}
	return nil
}

func saveRoster(ctx context.Context, cfg *config.Config, teams []*insmv.Team) error {
	repo, err := newRepository(cfg)
	if err != nil {
		return err
	}
	_, err = repo.Save(ctx, teamrepo.SaveInput{Name: genSave, Teams: teams})
	return err
}
