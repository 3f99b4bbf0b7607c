package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

var log = newLogger("development")

func newLogger(environment string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	if environment == "production" {
		l.SetFormatter(&logrus.JSONFormatter{})
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		l.SetLevel(logrus.DebugLevel)
	}

	return l
}

// Init configures the package logger for the given environment.
func Init(environment string) {
	log = newLogger(environment)
}

// fields turns alternating key/value args into logrus fields. Errors and
// dangling values are stored under "error" and "argN".
func fields(args []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case error:
			f[logrus.ErrorKey] = v.Error()
			continue
		case string:
			if i+1 < len(args) {
				f[v] = args[i+1]
				i++
				continue
			}
		}
		f[fmt.Sprintf("arg%d", i)] = args[i]
	}
	return f
}

func Debug(msg string, args ...any) {
	log.WithFields(fields(args)).Debug(msg)
}

func Info(msg string, args ...any) {
	log.WithFields(fields(args)).Info(msg)
}

func Warn(msg string, args ...any) {
	log.WithFields(fields(args)).Warn(msg)
}

func Error(msg string, args ...any) {
	log.WithFields(fields(args)).Error(msg)
}

func Fatal(msg string, args ...any) {
	log.WithFields(fields(args)).Fatal(msg)
}
