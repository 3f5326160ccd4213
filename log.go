package aoc

import (
	"bytes"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// textFormatter is a plain, uncolored take on logrus.TextFormatter:
//
//	INFO: 15:04:05.000 message        k=v k2=v2
type textFormatter struct{}

func (f *textFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	levelText := strings.ToUpper(entry.Level.String())[0:4]
	timeStamp := entry.Time.Format("15:04:05.000")
	fmt.Fprintf(b, "%s: %s %-30s", levelText, timeStamp, entry.Message)
	keys := maps.Keys(entry.Data)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

var log = &logrus.Logger{
	Out:       os.Stderr,
	Formatter: &textFormatter{},
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.InfoLevel,
	ExitFunc:  os.Exit,
}

func setDebug(debug bool) {
	if debug {
		log.SetLevel(logrus.DebugLevel)
		return
	}
	log.SetLevel(logrus.InfoLevel)
}

// Logger returns the harness logger, for solvers that want structured
// fields beyond Debug/Debugf.
func Logger() *logrus.Logger {
	return log
}
