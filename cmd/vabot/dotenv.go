// ABOUTME: Loads environment variables from .env files before configuration is parsed.
// ABOUTME: Variables already present in the environment always win; missing files are skipped.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// parseDotEnvLine splits one .env line into a key and value. ok is false for
// blank lines, comments and lines without '='. Accepts KEY=VALUE,
// KEY="VALUE", KEY='VALUE' and an optional "export " prefix.
func parseDotEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")

	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}

	value = strings.TrimSpace(value)
	if n := len(value); n >= 2 && (value[0] == '"' || value[0] == '\'') && value[n-1] == value[0] {
		value = value[1 : n-1]
	}
	return key, value, true
}

// loadDotEnv applies path to the environment without overriding existing
// variables. It returns the keys it set. A missing file is not an error.
func loadDotEnv(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var set []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseDotEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return set, fmt.Errorf("set %s: %w", key, err)
		}
		set = append(set, key)
	}
	if err := scanner.Err(); err != nil {
		return set, fmt.Errorf("read %s: %w", path, err)
	}
	return set, nil
}

// dotEnvCandidates lists .env paths to try, nearest first: the working
// directory and each parent, then the executable's directory.
func dotEnvCandidates(wd, exe string) []string {
	seen := map[string]bool{}
	var out []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	if wd != "" {
		for dir := wd; ; {
			add(filepath.Join(dir, ".env"))
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	if exe != "" {
		add(filepath.Join(filepath.Dir(exe), ".env"))
	}
	return out
}

// loadDotEnvAuto loads every candidate .env file. Earlier files take
// precedence because later ones never override.
func loadDotEnvAuto() error {
	wd, _ := os.Getwd()
	exe, _ := os.Executable()

	var errs []error
	for _, p := range dotEnvCandidates(wd, exe) {
		if _, err := loadDotEnv(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
