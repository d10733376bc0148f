package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

// runSettings are the default action inputs after the config file and flags are merged.
type runSettings struct {
	Input       string
	Output      string
	Threads     int
	SortType    string
	Descending  bool
	Delimiter   string
	Test        bool
	MetricsFile string
	Summary     string
	LogLevel    string
}

// Config file keys, matching the long flag names.
const (
	keyInput       = "input"
	keyOutput      = "output"
	keyThreads     = "num_threads"
	keySortType    = "sort-type"
	keyDescending  = "descending"
	keyDelimiter   = "delimiter"
	keyTest        = "test"
	keyMetricsFile = "metrics-file"
	keySummary     = "summary"
	keyLogLevel    = "log-level"
)

// loadRunSettings merges the optional --config file with the command line.
// A flag set on the command line overrides the file; the file overrides flag defaults.
func loadRunSettings(c *cli.Context) (runSettings, error) {
	var v *viper.Viper
	if path := c.String("config"); path != "" {
		v = viper.New()
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return runSettings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	l := layered{c: c, v: v}
	return runSettings{
		Input:       l.getString(keyInput),
		Output:      l.getString(keyOutput),
		Threads:     l.getInt(keyThreads),
		SortType:    l.getString(keySortType),
		Descending:  l.getBool(keyDescending),
		Delimiter:   l.getString(keyDelimiter),
		Test:        l.getBool(keyTest),
		MetricsFile: l.getString(keyMetricsFile),
		Summary:     l.getString(keySummary),
		LogLevel:    l.getString(keyLogLevel),
	}, nil
}

type layered struct {
	c *cli.Context
	v *viper.Viper
}

func (l layered) fromFile(key string) bool {
	return l.v != nil && !l.c.IsSet(key) && l.v.IsSet(key)
}

func (l layered) getString(key string) string {
	if l.fromFile(key) {
		return l.v.GetString(key)
	}
	return l.c.String(key)
}

func (l layered) getInt(key string) int {
	if l.fromFile(key) {
		return l.v.GetInt(key)
	}
	return l.c.Int(key)
}

func (l layered) getBool(key string) bool {
	if l.fromFile(key) {
		return l.v.GetBool(key)
	}
	return l.c.Bool(key)
}

func parseDelimiter(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single byte, got %q", s)
	}
	return s[0], nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
