package logging

import (
	"context"
	"os"

	"cloud.google.com/go/logging"
	"github.com/acarl005/stripansi"
	"github.com/rhos-infra/cibyl/v1/internal/meta"
	"github.com/sirupsen/logrus"
	"google.golang.org/genproto/googleapis/api/monitoredres"
)

// GoogleCloudHook ships log entries to Google Cloud Logging.
type GoogleCloudHook struct {
	client *logging.Client
	logger *logging.Logger
	levels []logrus.Level

	correlationID string
	hostname      string
}

func NewGoogleCloudHook(cfg Config, project string, level logrus.Level) (*GoogleCloudHook, error) {
	client, err := logging.NewClient(context.Background(), project)
	if err != nil {
		return nil, err
	}
	hostname, _ := os.Hostname()

	var levels []logrus.Level
	for _, l := range logrus.AllLevels {
		if l <= level {
			levels = append(levels, l)
		}
	}
	return &GoogleCloudHook{
		client:        client,
		logger:        client.Logger(meta.AppName),
		levels:        levels,
		correlationID: cfg.CorrelationID,
		hostname:      hostname,
	}, nil
}

func severity(level logrus.Level) logging.Severity {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return logging.Debug
	case logrus.InfoLevel:
		return logging.Info
	case logrus.WarnLevel:
		return logging.Warning
	case logrus.ErrorLevel:
		return logging.Error
	case logrus.FatalLevel:
		return logging.Critical
	case logrus.PanicLevel:
		return logging.Alert
	}
	return logging.Default
}

func (h *GoogleCloudHook) Fire(entry *logrus.Entry) error {
	h.logger.Log(logging.Entry{
		Payload: map[string]interface{}{
			"message": stripansi.Strip(entry.Message),
			"labels":  entry.Data,
			"app":     meta.AppName,
			"version": meta.AppVersion,
			"host":    h.hostname,
		},
		Resource: &monitoredres.MonitoredResource{Type: "global"},
		Severity: severity(entry.Level),
		Labels: map[string]string{
			"app":        meta.AppName,
			"version":    meta.AppVersion,
			"instanceId": h.correlationID,
		},
	})
	return nil
}

func (h *GoogleCloudHook) Levels() []logrus.Level {
	return h.levels
}

func (h *GoogleCloudHook) Close() error {
	if err := h.logger.Flush(); err != nil {
		return err
	}
	return h.client.Close()
}
