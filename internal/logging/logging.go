package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to both console and a size-rotated file
// under dir. An unknown level falls back to info.
func New(dir, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "sms-relay.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, rotated))

	return logger
}
