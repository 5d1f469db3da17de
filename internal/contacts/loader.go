package contacts

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	karyakartasFile = "karyakartas.csv"
	profileFile     = "profile.yaml"
)

// LoadKaryakartasFromDataDir loads karyakartas.csv from a data directory.
// Rows without an id or name are skipped; a bad dob is kept and simply never
// matches a birthday.
func LoadKaryakartasFromDataDir(dataDir string) ([]Karyakarta, error) {
	path := filepath.Join(dataDir, karyakartasFile)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no %s found in %s", karyakartasFile, dataDir)
	}
	ks, err := loadSingleCSV(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	for i := range ks {
		ks[i].Photo = resolvePhoto(dataDir, ks[i].Photo)
	}
	return ks, nil
}

func loadSingleCSV(path string) ([]Karyakarta, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Karyakarta{}
	for _, row := range rows[1:] {
		k := Karyakarta{
			ID:        get(row, "id"),
			Name:      get(row, "name"),
			WhatsApp:  get(row, "whatsapp"),
			DOB:       get(row, "dob"),
			Photo:     get(row, "photo"),
			CreatedAt: get(row, "created_at"),
		}
		if k.ID == "" || k.Name == "" {
			continue
		}
		out = append(out, k)
	}
	return out, nil
}

// LoadProfile reads profile.yaml from the data directory.
func LoadProfile(dataDir string) (Politician, error) {
	var p Politician
	b, err := os.ReadFile(filepath.Join(dataDir, profileFile))
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("parse %s: %w", profileFile, err)
	}
	p.Photo = resolvePhoto(dataDir, p.Photo)
	return p, nil
}

// resolvePhoto makes a relative file reference relative to the data dir.
// URLs, data URIs and absolute paths pass through.
func resolvePhoto(dataDir, ref string) string {
	switch {
	case ref == "",
		strings.HasPrefix(ref, "data:"),
		strings.HasPrefix(ref, "http://"),
		strings.HasPrefix(ref, "https://"),
		filepath.IsAbs(ref):
		return ref
	}
	return filepath.Join(dataDir, ref)
}
