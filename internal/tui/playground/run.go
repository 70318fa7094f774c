package playground

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/strutil/foundation/core/config"
	mdwlog "github.com/msto63/strutil/foundation/core/log"
	"github.com/msto63/strutil/foundation/utils/urlx"
)

// Run starts the playground on the terminal. When cfg is backed by a file
// the file is watched and a changed encode.policy is applied live.
func Run(cfg *config.Config, logger *mdwlog.Logger) error {
	policy, err := urlx.ParsePolicy(cfg.GetString(config.KeyEncodePolicy))
	if err != nil {
		return err
	}

	opts := Options{
		Policy:    policy,
		Delimiter: cfg.GetString(config.KeySplitDelimiter),
	}

	if cfg.FilePath() != "" {
		events := make(chan tea.Msg, 4)
		cfg.OnChange(func(_, newCfg *config.Config) {
			name := newCfg.GetString(config.KeyEncodePolicy)
			logger.Debug("config reloaded", mdwlog.Field("policy", name))
			send(events, PolicyChangedMsg{Name: name})
		})
		cfg.OnError(func(err error) {
			send(events, ConfigErrorMsg{Err: err})
		})

		if err := cfg.Watch(); err != nil {
			return err
		}
		defer cfg.StopWatching()
		opts.Events = events
	}

	timer := logger.StartTimer("playground")
	_, err = tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	if err != nil {
		timer.StopWithError(err)
		return err
	}
	timer.Stop()
	return nil
}

// send drops the event when the model is not keeping up
func send(events chan<- tea.Msg, msg tea.Msg) {
	select {
	case events <- msg:
	default:
	}
}
