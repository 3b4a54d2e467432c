package catalog

import (
	"embed"

	"gopkg.in/yaml.v3"

	"github.com/scoxgen/scox/internal/entities/insmv"
	"github.com/scoxgen/scox/internal/errors"
)

//go:embed data/angels.yaml data/demons.yaml data/scoring.yaml
var dataFS embed.FS

// factionFile is the on-disk shape of one faction's rule table
type factionFile struct {
	Faction    string              `yaml:"faction"`
	Archetypes []*ArchetypeProfile `yaml:"archetypes"`
}

// Load parses and validates the embedded rule tables. It is called once at
// process start; a failure here aborts before any generation attempt.
func Load() (*Catalog, error) {
	var profiles []*ArchetypeProfile

	for _, name := range []string{"data/angels.yaml", "data/demons.yaml"} {
		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read embedded catalog file %s", name)
		}

		var file factionFile
		if err := yaml.Unmarshal(raw, &file); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCatalogIntegrity,
				"failed to parse catalog file "+name)
		}

		faction, err := insmv.ParseFaction(file.Faction)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCatalogIntegrity,
				"bad faction in catalog file "+name)
		}
		for _, p := range file.Archetypes {
			p.Faction = faction
		}
		profiles = append(profiles, file.Archetypes...)
	}

	raw, err := dataFS.ReadFile("data/scoring.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to read embedded scoring file")
	}
	var scoring Scoring
	if err := yaml.Unmarshal(raw, &scoring); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCatalogIntegrity,
			"failed to parse scoring file")
	}

	return New(profiles, scoring)
}
