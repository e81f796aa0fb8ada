package cli

import (
	"github.com/grovetools/jobslots/config"
	"github.com/spf13/pflag"
)

// SourceFlags selects the catalog and state files, overriding the config.
type SourceFlags struct {
	Catalog string
	State   string
	Locale  string
	Debug   bool
}

// Register adds the source flags to fs.
func (f *SourceFlags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.Catalog, "catalog", "", "Catalog manifest (yaml or toml); overrides 'catalog' in config")
	fs.StringVarP(&f.State, "state", "s", "", "Console state snapshot (yaml or json); overrides 'state' in config")
	fs.StringVar(&f.Locale, "locale", "", "BCP 47 locale for names and collation; overrides 'locale' in config")
	fs.BoolVar(&f.Debug, "debug", false, "Force debug controls on")
}

// Apply writes the flags that were set onto cfg.
func (f *SourceFlags) Apply(cfg *config.Config) {
	if f.Catalog != "" {
		cfg.Catalog = f.Catalog
	}
	if f.State != "" {
		cfg.State = f.State
	}
	if f.Locale != "" {
		cfg.Locale = f.Locale
	}
	if f.Debug {
		cfg.Debug = true
	}
}
