// Package config loads the configuration of the guuid command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Lzww0608/guuid/v2"
)

// File is the YAML document read by Load.
type File struct {
	LogLevel   string       `yaml:"log_level"`
	Factory    guuid.Config `yaml:"factory"`
	NodeSource NodeSource   `yaml:"node_source"`
}

// NodeSource selects a coordinated node provider for time-based UUIDs.
type NodeSource struct {
	// Kind is empty, "mysql" or "zookeeper".
	Kind string `yaml:"kind"`

	// DSN and Tag locate the allocation row of the mysql source.
	DSN string `yaml:"dsn"`
	Tag string `yaml:"tag"`

	Servers  []string      `yaml:"servers"`
	Timeout  time.Duration `yaml:"timeout"`
	Root     string        `yaml:"root"`
	Service  string        `yaml:"service"`
	Address  string        `yaml:"address"`
	CacheDir string        `yaml:"cache_dir"`
}

// Parse decodes a YAML configuration. Unknown fields are rejected.
func Parse(b []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("config: %w", err)
	}
	return f, nil
}

// Load reads the file at path, if path is not empty, and applies the
// GUUID_* environment overrides on top of it.
func Load(path string) (File, error) {
	var f File
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("config: %w", err)
		}
		if f, err = Parse(b); err != nil {
			return File{}, err
		}
	}
	if err := applyEnv(&f, os.LookupEnv); err != nil {
		return File{}, err
	}
	return f, nil
}

func applyEnv(f *File, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"GUUID_LOG_LEVEL":   &f.LogLevel,
		"GUUID_LAYOUT":      &f.Factory.Layout,
		"GUUID_CODEC":       &f.Factory.Codec,
		"GUUID_NODE":        &f.Factory.Node,
		"GUUID_NODE_SOURCE": &f.NodeSource.Kind,
		"GUUID_MYSQL_DSN":   &f.NodeSource.DSN,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	if v, ok := lookup("GUUID_ZK_SERVERS"); ok {
		f.NodeSource.Servers = strings.Split(v, ",")
	}

	bools := map[string]*bool{
		"GUUID_COMB":               &f.Factory.Comb,
		"GUUID_IGNORE_SYSTEM_NODE": &f.Factory.IgnoreSystemNode,
		"GUUID_DEGRADED":           &f.Factory.Degraded,
		"GUUID_STRICT":             &f.Factory.Strict,
	}
	for key, dst := range bools {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = b
	}
	return nil
}
