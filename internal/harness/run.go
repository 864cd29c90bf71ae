package harness

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

var KeyRuns = []byte("runs")

// Run is one completed sweep: the console report and the benchstat-parsable
// rendering of the same measurements, keyed by name.
type Run struct {
	Name      string
	Report    string
	Bench     string
	CreatedAt time.Time
}

// Configurations returns how many configurations the run measured.
func (r *Run) Configurations() int {
	if r.Report == "" {
		return 0
	}
	return strings.Count(strings.TrimRight(r.Report, "\n"), "\n") + 1
}

func (r *Run) Save(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(KeyRuns)
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		return b.Put([]byte(r.Name), data)
	})
}

// GetRun returns the named run, or nil when no such run is stored.
func GetRun(db *bbolt.DB, name string) (*Run, error) {
	r := &Run{}
	err := db.View(func(tx *bbolt.Tx) error {
		bRuns := tx.Bucket(KeyRuns)
		if bRuns == nil {
			return nil
		}
		b := bRuns.Get([]byte(name))
		if b == nil {
			return nil
		}
		return json.Unmarshal(b, r)
	})
	if err != nil {
		return nil, errors.Wrap(err, "db.View")
	}
	if r.Name == "" {
		return nil, nil
	}
	return r, nil
}

func ListRuns(db *bbolt.DB) (runs []*Run, err error) {
	err = db.View(func(tx *bbolt.Tx) error {
		bRuns := tx.Bucket(KeyRuns)
		if bRuns == nil {
			return nil
		}
		return bRuns.ForEach(func(name, runBytes []byte) error {
			r := &Run{}
			err := json.Unmarshal(runBytes, r)
			if err != nil {
				return err
			}
			runs = append(runs, r)
			return nil
		})
	})
	return
}

// DeleteRuns removes the named runs and returns the names actually deleted.
func DeleteRuns(db *bbolt.DB, names ...string) (deleted []string, err error) {
	err = db.Update(func(tx *bbolt.Tx) error {
		bRuns := tx.Bucket(KeyRuns)
		if bRuns == nil {
			return nil
		}
		return bRuns.ForEach(func(name, runBytes []byte) error {
			for _, n := range names {
				if n == string(name) {
					deleted = append(deleted, n)
					return bRuns.Delete(name)
				}
			}
			return nil
		})
	})
	return
}

func DeleteAllRuns(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(KeyRuns)
	})
}
