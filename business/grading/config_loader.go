package grading

import (
	"fmt"
	"os"
	"sort"

	"gradePredictor/domain"

	"gopkg.in/yaml.v3"
)

type profilesFile struct {
	Profiles map[string]yaml.Node `yaml:"profiles"`
}

// LoadProfiles reads scoring profiles from a YAML file shaped as
//
//	profiles:
//	  extended:
//	    tests_bonus_per_test: 0.3
//	  strict:
//	    approved_cutoff: 7
//
// Each profile starts from base (or DefaultConfig when base has no entry for
// that name), so omitted fields keep their defaults. Profiles from the file
// are merged over base and every result is validated.
func LoadProfiles(path string, base map[string]Config) (map[string]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}
	return ParseProfiles(data, base)
}

func ParseProfiles(data []byte, base map[string]Config) (map[string]Config, error) {
	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse profiles file: %w", err)
	}

	out := make(map[string]Config, len(base)+len(file.Profiles))
	for name, cfg := range base {
		out[name] = cfg
	}

	names := make([]string, 0, len(file.Profiles))
	for name := range file.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		node := file.Profiles[name]

		// start from defaults to keep sane fallbacks for any missing fields
		cfg, ok := base[name]
		if ok {
			cfg = cfg.clone()
		} else {
			cfg = DefaultConfig()
		}

		if err := node.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode profile %q: %w", name, err)
		}
		cfg.Name = name
		out[name] = cfg
	}

	for name, cfg := range out {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid profile %q: %w", name, err)
		}
	}

	return out, nil
}

// clone copies the slice and map fields so decoding into the copy leaves c untouched.
func (c Config) clone() Config {
	out := c
	out.AttendanceBands = append([]AttendanceBand(nil), c.AttendanceBands...)
	out.ParticipationBonus = make(map[domain.Participation]float64, len(c.ParticipationBonus))
	for k, v := range c.ParticipationBonus {
		out.ParticipationBonus[k] = v
	}
	return out
}
