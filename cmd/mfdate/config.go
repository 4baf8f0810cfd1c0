package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/mazzegi/mfdate/date"
)

const defaultConfigFile = "mfdate.toml"

type config struct {
	Start  string `toml:"start"`
	End    string `toml:"end"`
	Format string `toml:"format"`
}

func defaultConfig() config {
	return config{
		Start: "2021-08-31",
		End:   "2022-02-28",
	}
}

// loadConfig starts from the defaults, applies the toml file and then the flags.
// A missing default config file is not an error, a missing explicit one is.
func loadConfig(args []string) (config, error) {
	cfg := defaultConfig()
	flags := parseFlags(args)

	file := defaultConfigFile
	explicit := false
	if v, ok := flags["config"]; ok {
		s, ok := v.(string)
		if !ok {
			return config{}, fmt.Errorf("flag -config needs a value")
		}
		file = s
		explicit = true
	}
	_, err := toml.DecodeFile(file, &cfg)
	switch {
	case err == nil:
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return config{}, fmt.Errorf("decode %q: %w", file, err)
	}

	for k, v := range flags {
		switch k {
		case "config":
		case "start", "end", "format":
			s, ok := v.(string)
			if !ok {
				return config{}, fmt.Errorf("flag -%s needs a value", k)
			}
			switch k {
			case "start":
				cfg.Start = s
			case "end":
				cfg.End = s
			case "format":
				cfg.Format = s
			}
		default:
			return config{}, fmt.Errorf("unknown flag -%s", k)
		}
	}
	return cfg, nil
}

func (cfg config) bounds() (start, end date.MonthFloor, err error) {
	start, err = date.ParseMonthFloor(cfg.Start)
	if err != nil {
		return start, end, fmt.Errorf("start: %w", err)
	}
	end, err = date.ParseMonthFloor(cfg.End)
	if err != nil {
		return start, end, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}
