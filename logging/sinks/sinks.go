package sinks

import (
	"fmt"
	"os"

	"game-creator/planner/logging"
)

// FromConfig builds the sink set named by cfg.EnabledSinks, in order:
// "console" writes to stdout, "json" appends newline-delimited events to
// cfg.JSON.FilePath. The result feeds logging.NewRouter directly.
func FromConfig(cfg logging.Config) ([]logging.NamedSink, error) {
	if cfg.HasSink("json") && cfg.JSON.FilePath == "" {
		return nil, fmt.Errorf("json sink enabled without a file path")
	}
	named := make([]logging.NamedSink, 0, len(cfg.EnabledSinks))
	for _, name := range cfg.EnabledSinks {
		switch name {
		case "console":
			named = append(named, logging.NamedSink{Name: name, Sink: NewConsole(os.Stdout)})
		case "json":
			file, err := os.OpenFile(cfg.JSON.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("open json sink: %w", err)
			}
			named = append(named, logging.NamedSink{Name: name, Sink: NewJSON(file, cfg.JSON.FlushInterval)})
		default:
			return nil, fmt.Errorf("unknown sink %q", name)
		}
	}
	return named, nil
}
