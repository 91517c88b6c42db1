package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Pattern string
	URL     string
	Rule    string
	Size    int
	Scale   int
	TPS     int
	Soup    bool
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Rule: "Life", Size: 120, Scale: 5, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "rle pattern file to load")
	fs.StringVar(&c.URL, "url", c.URL, "url of an rle pattern to fetch")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule preset name or B<digits>/S<digits> string")
	fs.IntVar(&c.Size, "size", c.Size, "board size when no pattern is given")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.BoolVar(&c.Soup, "soup", c.Soup, "start from a random soup")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
}
