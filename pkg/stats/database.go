package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Dataset is a local collection of state records together with the
// settings used to render their cards.
type Dataset struct {
	Config
	Sources  []*File        `json:"sources"`
	States   []*StateRecord `json:"states"`
	Imported time.Time      `json:"imported"`
}

func NewDataset(cfg Config) *Dataset {
	return &Dataset{Config: cfg}
}

// LoadIfExists reads the dataset stored at dbFile. found is false when the
// file doesn't exist.
func LoadIfExists(dbFile string) (db *Dataset, found bool, err error) {
	data, err := os.ReadFile(dbFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read dataset %s: %w", dbFile, err)
	}

	db = new(Dataset)
	if err := json.Unmarshal(data, db); err != nil {
		return nil, false, fmt.Errorf("decode dataset %s: %w", dbFile, err)
	}

	return db, true, nil
}

func (db *Dataset) Save(dbFile string) error {
	js, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := os.WriteFile(dbFile, js, 0644); err != nil {
		return fmt.Errorf("write dataset %s: %w", dbFile, err)
	}
	return nil
}

// Add appends the records imported from f, replacing earlier records for
// the same states.
func (db *Dataset) Add(f *File, records []*StateRecord) {
	replaced := make(map[string]bool, len(records))
	for _, r := range records {
		replaced[r.State] = true
	}

	kept := db.States[:0]
	for _, r := range db.States {
		if !replaced[r.State] {
			kept = append(kept, r)
		}
	}
	db.States = append(kept, records...)

	sort.SliceStable(db.States, func(i, j int) bool {
		return db.States[i].State < db.States[j].State
	})

	f.Rows = len(records)
	f.Imported = time.Now()
	db.Sources = append(db.Sources, f)
	db.Imported = f.Imported
}

func (db *Dataset) Find(state string) (*StateRecord, error) {
	for _, r := range db.States {
		if r.State == state {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrStateNotFound, state)
}

// Validate checks the config and every record, and that no state appears twice.
func (db *Dataset) Validate() error {
	if err := db.Config.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(db.States))
	for _, r := range db.States {
		if err := r.Validate(); err != nil {
			return err
		}
		if seen[r.State] {
			return fmt.Errorf("%w: duplicate state %q", ErrInvalidRecord, r.State)
		}
		seen[r.State] = true
	}
	return nil
}

type DatasetInfo struct {
	States         int
	CombinedStates int
	Sources        int
	// Number of states per rate type, e.g. "infection rates".
	RateTypes map[string]int
	Imported  time.Time
}

func (db *Dataset) Info() DatasetInfo {
	combined := db.Combined()

	info := DatasetInfo{
		States:         len(db.States),
		CombinedStates: len(combined),
		Sources:        len(db.Sources),
		RateTypes:      make(map[string]int),
		Imported:       db.Imported,
	}
	for _, r := range db.States {
		info.RateTypes[RateType(r, combined)]++
	}
	return info
}

// Dump renders o as indented JSON.
func Dump(o interface{}) (string, error) {
	js, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return "", err
	}
	return string(js), nil
}
