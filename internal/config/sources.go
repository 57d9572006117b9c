package config

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"
)

// Source represents where an effective setting comes from.
type Source string

const (
	SourceEnv     Source = "env"
	SourceConfig  Source = "config"
	SourceDefault Source = "default"
)

// Setting is one effective configuration key.
type Setting struct {
	Key    string `json:"key"    yaml:"key"`
	Value  string `json:"value"  yaml:"value"`
	Source Source `json:"source" yaml:"source"`
	Env    string `json:"env"    yaml:"env"`
}

// Settings returns every key with its value and origin, sorted by key.
func (c *Config) Settings() []Setting {
	if c.v == nil {
		return nil
	}
	keys := c.v.AllKeys()
	sort.Strings(keys)

	out := make([]Setting, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.checkKey(k))
	}
	return out
}

// checkKey checks a key's value and where it came from.
func (c *Config) checkKey(key string) Setting {
	s := Setting{
		Key:   key,
		Value: displayValue(key, c.v.Get(key)),
		Env:   EnvVar(key),
	}
	switch {
	case os.Getenv(s.Env) != "":
		s.Source = SourceEnv
	case c.v.InConfig(key):
		s.Source = SourceConfig
	default:
		s.Source = SourceDefault
	}
	return s
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func displayValue(key string, v any) string {
	var s string
	switch t := v.(type) {
	case []string:
		s = strings.Join(t, ", ")
	case []any:
		parts := make([]string, len(t))
		for i, p := range t {
			parts[i] = fmt.Sprint(p)
		}
		s = strings.Join(parts, ", ")
	default:
		s = fmt.Sprint(v)
	}
	if key == "data.source" {
		s = redactURL(s)
	}
	return s
}

// redactURL masks the password of a URL data source so credentials don't
// end up in terminal output or logs.
func redactURL(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.User == nil {
		return s
	}
	return u.Redacted()
}
