// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Configure sets the output, formatter and level of the standard logger.
// An unknown level leaves the logger at info and returns an error.
func Configure(output io.Writer, level string) error {
	log.SetOutput(output)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		return fmt.Errorf("configure logging: %w", err)
	}
	log.SetLevel(parsed)
	return nil
}
