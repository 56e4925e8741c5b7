package jobber

import (
	"encoding/json"
	"os"
)

// SchemaVersion is written into every saved database file and is otherwise
// unused on load — the format has never needed a migration path.
const SchemaVersion = "2.1.0"

type jobsFile struct {
	Version       string        `json:"version"`
	Jobs          []Job         `json:"jobs"`
	Configuration Configuration `json:"configuration"`
}

// Load reads the database at path. A missing file is not an error: it
// yields a fresh, empty database, matching the "start empty" policy the
// config layer also uses. Any other read or parse failure is returned as an
// Io or Json Error.
func Load(path string) (*Jobs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewJobs(), nil
		}
		return nil, errIO(err)
	}
	var f jobsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errJSON(err)
	}
	cfg := f.Configuration
	if cfg.Base.Resolution == nil && cfg.Tags == nil {
		cfg = NewConfiguration()
	}
	if cfg.Tags == nil {
		cfg.Tags = map[string]Properties{}
	}
	return &Jobs{Jobs: f.Jobs, Configuration: cfg}, nil
}

// Save writes the database to path as pretty-printed JSON, creating or
// truncating the file, and clears the modified flag.
func (db *Jobs) Save(path string) error {
	f := jobsFile{Version: SchemaVersion, Jobs: db.Jobs, Configuration: db.Configuration}
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return errJSON(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errIO(err)
	}
	db.Modified = false
	return nil
}
