package cmd

import (
	"github.com/grovetools/jobslots/cli"
	"github.com/grovetools/jobslots/config"
	"github.com/grovetools/jobslots/errors"
	"github.com/grovetools/jobslots/pkg/catalog"
	"github.com/grovetools/jobslots/pkg/jobslots"
	"github.com/grovetools/jobslots/pkg/profiling"
	"github.com/grovetools/jobslots/pkg/session"
	"github.com/grovetools/jobslots/pkg/slots"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// workspace is everything a command needs once config and flags are
// resolved.
type workspace struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	loc     catalog.Localizer
	logger  *logrus.Entry
	timer   *profiling.Timer
}

func loadWorkspace(cmd *cobra.Command, flags *cli.SourceFlags) (*workspace, error) {
	logger := cli.GetLogger(cmd)
	timer := profiling.FromContext(cmd.Context())
	defer timer.Start("workspace").Stop()

	cfg, err := cli.LoadConfig(cli.GetOptions(cmd))
	if err != nil {
		return nil, err
	}
	flags.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Catalog == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no catalog manifest configured").
			WithDetail("hint", "set 'catalog' in jobslots.yml or pass --catalog")
	}

	span := timer.Start("catalog")
	cat, loc, err := catalog.LoadFile(cfg.Catalog, cfg.LanguageTag())
	span.Stop()
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"catalog": cfg.Catalog,
		"jobs":    len(cat.Jobs()),
		"locale":  cfg.LanguageTag().String(),
	}).Debug("Catalog loaded")

	return &workspace{cfg: cfg, catalog: cat, loc: loc, logger: logger, timer: timer}, nil
}

func (w *workspace) ranking() []catalog.DepartmentID {
	ids := make([]catalog.DepartmentID, len(w.cfg.DepartmentOrder))
	for i, id := range w.cfg.DepartmentOrder {
		ids[i] = catalog.DepartmentID(id)
	}
	return ids
}

func (w *workspace) newViewModel() *jobslots.ViewModel {
	return jobslots.New(w.catalog, w.loc, jobslots.Options{
		DepartmentRanking: w.ranking(),
		Locale:            w.cfg.LanguageTag(),
		Logger:            w.logger.WithField("component", "jobslots"),
	})
}

// loadState reads the configured snapshot. Without one the panel starts
// with every catalog job at zero slots.
func (w *workspace) loadState() (*slots.ConsoleState, error) {
	defer w.timer.Start("state").Stop()
	var state *slots.ConsoleState
	if w.cfg.State != "" {
		s, err := session.LoadSnapshot(w.cfg.State)
		if err != nil {
			return nil, err
		}
		state = s
	} else {
		state = &slots.ConsoleState{Jobs: make(map[catalog.JobID]slots.SlotCount)}
		for _, id := range w.catalog.Jobs() {
			state.Jobs[id] = 0
		}
	}
	return w.forceDebug(state), nil
}

func (w *workspace) forceDebug(state *slots.ConsoleState) *slots.ConsoleState {
	if w.cfg.Debug {
		state.Debug = true
	}
	return state
}
