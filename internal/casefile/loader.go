package casefile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads cases from a JSON or YAML file on disk.
func LoadFromFile(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}
	cases, err := decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("parsing case file: %w", err)
	}
	return cases, nil
}

// LoadFromFS loads all case files under dir in fsys, sorted by name.
func LoadFromFS(fsys fs.FS, dir string) ([]Case, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading cases dir: %w", err)
	}

	var all []Case
	for _, entry := range entries {
		if entry.IsDir() || !isCaseFile(entry.Name()) {
			continue
		}
		path := entry.Name()
		if dir != "." {
			path = dir + "/" + path
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", entry.Name(), err)
		}
		cases, err := decode(path, data)
		if err != nil {
			return nil, fmt.Errorf("parsing file %s: %w", entry.Name(), err)
		}
		all = append(all, cases...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})

	return all, nil
}

// Load reads cases from path, which may be a single file or a directory.
func Load(path string) ([]Case, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening cases: %w", err)
	}
	if info.IsDir() {
		return LoadFromFS(os.DirFS(path), ".")
	}
	return LoadFromFile(path)
}

// FilterByTag returns the cases carrying tag. An empty tag returns all cases.
func FilterByTag(cases []Case, tag string) []Case {
	if tag == "" {
		return cases
	}
	var result []Case
	for _, c := range cases {
		for _, t := range c.Tags {
			if t == tag {
				result = append(result, c)
				break
			}
		}
	}
	return result
}

func decode(path string, data []byte) ([]Case, error) {
	var cases []Case
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cases); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &cases); err != nil {
			return nil, err
		}
	}
	for i, c := range cases {
		if c.Name == "" {
			cases[i].Name = fmt.Sprintf("%s#%d", filepath.Base(path), i+1)
		}
	}
	return cases, nil
}

func isCaseFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
