// Package templates provides the role-specific prose tables used to assemble tailored documents.
// Tables are stored as JSON files, one per role category, and embedded at compile time.
package templates

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var templateFiles embed.FS

// cache stores parsed template files to avoid repeated JSON parsing
var (
	cache   = make(map[string]map[string]string)
	cacheMu sync.RWMutex
)

// Get retrieves a template by filename and key.
// The filename should not include the path (e.g., "software-engineer.json").
func Get(filename, key string) (string, error) {
	table, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	tmpl, exists := table[key]
	if !exists {
		return "", fmt.Errorf("template key %q not found in %s", key, filename)
	}

	return tmpl, nil
}

// MustGet retrieves a template by filename and key, panicking if not found.
// Only use it for the embedded tables, which are checked by tests.
func MustGet(filename, key string) string {
	tmpl, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load template: %v", err))
	}
	return tmpl
}

// Format replaces placeholders in the form {{.Key}} with values from data.
// Keys are applied in sorted order so the output never depends on map iteration.
func Format(tmpl string, data map[string]string) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := tmpl
	for _, key := range keys {
		result = strings.ReplaceAll(result, "{{."+key+"}}", data[key])
	}
	return result
}

// loadFile loads and caches a template file.
func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	if table, exists := cache[filename]; exists {
		cacheMu.RUnlock()
		return table, nil
	}
	cacheMu.RUnlock()

	data, err := templateFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file %s: %w", filename, err)
	}

	var table map[string]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse template file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = table
	cacheMu.Unlock()

	return table, nil
}

// ClearCache clears the template cache. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string]string)
	cacheMu.Unlock()
}

// List returns the keys of a template file in sorted order.
func List(filename string) ([]string, error) {
	table, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
