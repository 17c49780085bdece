package config

import (
	"sort"
	"strconv"
	"strings"
)

// Change is one field that differs between two configurations.
type Change struct {
	Field      string
	Old, New   string
	Reloadable bool
}

type field struct {
	name       string
	reloadable bool
	value      func(*Config) string

	// shown replaces value in the reported Change when set.
	shown func(*Config) string
}

// fields lists every setting Diff compares. Executors are rebuilt by
// OnChange listeners, so the whole api and client sections are reloadable.
var fields = []field{
	{"api.base_url", true, func(c *Config) string { return c.API.BaseURL }, nil},
	{"api.timeout", true, func(c *Config) string { return c.API.Timeout.String() }, nil},
	{"api.user_agent", true, func(c *Config) string { return c.API.UserAgent }, nil},
	{"api.headers", true, func(c *Config) string { return headerPairs(c.API.Headers) },
		func(c *Config) string { return headerNames(c.API.Headers) }},
	{"client.mode", true, func(c *Config) string { return c.Client.Mode }, nil},
	{"client.locale", true, func(c *Config) string { return c.Client.Locale }, nil},
	{"client.cookie_file", true, func(c *Config) string { return c.Client.CookieFile }, nil},
	{"logging.level", true, func(c *Config) string { return c.Logging.Level }, nil},
	{"monitor.interval", true, func(c *Config) string { return c.Monitor.Interval.String() }, nil},
	{"logging.format", false, func(c *Config) string { return c.Logging.Format }, nil},
	{"metrics.enabled", false, func(c *Config) string { return strconv.FormatBool(c.Metrics.Enabled) }, nil},
	{"metrics.addr", false, func(c *Config) string { return c.Metrics.Addr }, nil},
	{"devserver.addr", false, func(c *Config) string { return c.DevServer.Addr }, nil},
}

// Diff lists the fields that differ between old and new, in a fixed order.
// Header values are never reported.
func Diff(old, new *Config) []Change {
	var out []Change
	for _, f := range fields {
		if f.value(old) == f.value(new) {
			continue
		}
		show := f.value
		if f.shown != nil {
			show = f.shown
		}
		out = append(out, Change{Field: f.name, Old: show(old), New: show(new), Reloadable: f.reloadable})
	}
	return out
}

// ReloadableFields returns which fields take effect on reload.
func ReloadableFields() []string { return fieldNames(true) }

// NonReloadableFields returns which fields require a restart.
func NonReloadableFields() []string { return fieldNames(false) }

func fieldNames(reloadable bool) []string {
	var names []string
	for _, f := range fields {
		if f.reloadable == reloadable {
			names = append(names, f.name)
		}
	}
	return names
}

func headerPairs(h map[string]string) string {
	pairs := make([]string, 0, len(h))
	for k, v := range h {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "\n")
}

func headerNames(h map[string]string) string {
	names := make([]string, 0, len(h))
	for k := range h {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
