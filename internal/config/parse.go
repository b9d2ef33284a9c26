package config

import (
	"flag"
	"fmt"
	"io"
)

// Parse builds a Config from command-line arguments. Precedence is
// defaults, then the file named by -config, then flags given explicitly. A
// single positional argument is taken as the input path. flag.ErrHelp is
// returned unchanged when -h is given.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	path := fs.String("config", "", "YAML file with run settings")
	cfg.Bind(fs)
	fs.Usage = func() {
		fmt.Fprintf(output, "Usage:\n  %s [options] [LAYOUT]\n\nOptions:\n", name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *path != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) {
			if f.Name != "config" {
				explicit[f.Name] = f.Value.String()
			}
		})

		cfg = Default()
		if err := cfg.Load(*path); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		overlay := flag.NewFlagSet(name, flag.ContinueOnError)
		overlay.SetOutput(io.Discard)
		cfg.Bind(overlay)
		for k, v := range explicit {
			if err := overlay.Set(k, v); err != nil {
				return nil, fmt.Errorf("flag -%s: %w", k, err)
			}
		}
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return nil, fmt.Errorf("expected at most one layout path, got %d", fs.NArg())
	}
	return cfg, nil
}
