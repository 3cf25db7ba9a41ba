package logging

import (
	"errors"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rhos-infra/cibyl/v1/internal/meta"
	"github.com/rhos-infra/cibyl/v1/internal/ui"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const (
	SinkFile        = "file"
	SinkGoogleCloud = "google-cloud"
)

type Sink struct {
	Name  string
	Level logrus.Level

	Options map[string]string
}

type Config struct {
	Verbosity     int
	JSON          bool
	Color         string
	CorrelationID string

	// Output defaults to os.Stderr so it never mixes with query results
	Output io.Writer

	Sinks []Sink
}

func ParseSinksFromCLI(ctx *cli.Context) []Sink {
	var sinks []Sink
	if ctx.IsSet("log-file") {
		sinks = append(sinks, Sink{
			Name:  SinkFile,
			Level: logrus.DebugLevel,
			Options: map[string]string{
				"path": ctx.Path("log-file"),
			},
		})
	}
	if project := ctx.String("logging.remote.google-cloud.project"); project != "" {
		sinks = append(sinks, Sink{
			Name:  SinkGoogleCloud,
			Level: logrus.InfoLevel,
			Options: map[string]string{
				"project": project,
			},
		})
	}
	return sinks
}

// ConfigFromCLI builds the logging configuration from the global flags.
func ConfigFromCLI(ctx *cli.Context) Config {
	verbosity := ctx.Count("verbose")
	if ctx.Bool("debug") && verbosity < 1 {
		verbosity = 1
	}
	return Config{
		Verbosity:     verbosity,
		JSON:          ctx.Bool("json"),
		Color:         ctx.String("color"),
		CorrelationID: uuid.New().String(),
		Sinks:         ParseSinksFromCLI(ctx),
	}
}

// Logger is the configured root logger and the resources its sinks hold.
type Logger struct {
	*logrus.Logger

	closers []io.Closer
}

// Entry returns the root entry every component logs through, tagged with
// the run's correlation id.
func (l *Logger) Entry(cfg Config) *logrus.Entry {
	entry := logrus.NewEntry(l.Logger)
	if cfg.CorrelationID != "" {
		entry = entry.WithField("run", cfg.CorrelationID)
	}
	return entry
}

// Close flushes and releases the remote sinks.
func (l *Logger) Close() error {
	var errs []error
	for _, c := range l.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func New(cfg Config) (*Logger, error) {
	logger := logrus.New()
	if cfg.Output != nil {
		logger.SetOutput(cfg.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}
	switch cfg.Verbosity {
	case -1:
	case 0:
		logger.SetLevel(logrus.InfoLevel)
	case 1:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.TraceLevel)
	}

	colors := ui.ColorsEnabled(cfg.Color, os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      colors,
		DisableColors:    !colors,
	})
	if cfg.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	l := &Logger{Logger: logger}
	for _, sink := range cfg.Sinks {
		switch sink.Name {
		case SinkFile:
			path, ok := sink.Options["path"]
			if !ok || path == "" {
				path = meta.LogFileName
			}
			levels := lfshook.PathMap{}
			for _, level := range logrus.AllLevels {
				if level <= sink.Level {
					levels[level] = path
				}
			}
			logger.AddHook(lfshook.NewHook(levels, &logrus.JSONFormatter{}))
		case SinkGoogleCloud:
			project, ok := sink.Options["project"]
			if !ok || project == "" {
				return nil, errors.New("google-cloud sink requires project option")
			}
			hook, err := NewGoogleCloudHook(cfg, project, sink.Level)
			if err != nil {
				return nil, err
			}
			logger.AddHook(hook)
			l.closers = append(l.closers, hook)
		default:
			return nil, errors.New("unknown sink: " + sink.Name)
		}
	}

	return l, nil
}
