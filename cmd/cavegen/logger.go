package main

import "github.com/sirupsen/logrus"

// newCLILogger builds the logger handed to the director: full-timestamp
// text formatting always, debug-level under -verbose, info-level otherwise.
func newCLILogger(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}
	return l
}
