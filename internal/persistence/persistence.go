package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fanctrld/fanctrld/internal/ui"
	bolt "go.etcd.io/bbolt"
)

const (
	BucketFans = "fans"
)

// Persistence stores the duty cycle last written to a fan, so a restarted
// daemon can restore the previous output before the first sensor reading.
type Persistence interface {
	Init() error

	SaveFanDuty(fanId string, duty int) (err error)
	LoadFanDuty(fanId string) (int, error)
	DeleteFanDuty(fanId string) (err error)
}

type persistence struct {
	dbPath string
}

func NewPersistence(dbPath string) Persistence {
	p := &persistence{
		dbPath: dbPath,
	}
	return p
}

func (p persistence) Init() (err error) {
	// get parent path of dbPath
	parentDir := filepath.Dir(p.dbPath)
	_, err = os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		// create directory
		ui.Info("Creating directory for db: %s", parentDir)
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func (p persistence) openPersistence() (db *bolt.DB, err error) {
	db, err = bolt.Open(p.dbPath, 0600, &bolt.Options{Timeout: 1 * time.Minute})
	if err != nil {
		return nil, err
	}
	return db, nil
}

// SaveFanDuty saves the duty cycle last applied to the given fan
func (p persistence) SaveFanDuty(fanId string, duty int) (err error) {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	data, err := json.Marshal(duty)
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketFans))
		if err != nil {
			return fmt.Errorf("create bucket: %s", err)
		}
		err = b.Put([]byte(fanId), data)
		return err
	})
}

// LoadFanDuty loads the duty cycle last applied to the given fan
func (p persistence) LoadFanDuty(fanId string) (int, error) {
	db, err := p.openPersistence()
	if err != nil {
		return 0, err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	var duty int
	err = db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketFans))
		if b == nil {
			return os.ErrNotExist
		}
		v := b.Get([]byte(fanId))
		if v == nil {
			return os.ErrNotExist
		}

		err := json.Unmarshal(v, &duty)
		if err != nil {
			// if we cannot read the saved data, delete it
			ui.Warning("Unable to unmarshal saved duty cycle for %s: %v", fanId, err)
			err := b.Delete([]byte(fanId))
			if err != nil {
				ui.Error("Unable to delete corrupt data key %s: %v", fanId, err)
			}
			return os.ErrNotExist
		}

		return nil
	})

	return duty, err
}

func (p persistence) DeleteFanDuty(fanId string) error {
	db, err := p.openPersistence()
	if err != nil {
		return err
	}
	defer func(db *bolt.DB) {
		_ = db.Close()
	}(db)

	return db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketFans))
		if b == nil {
			// no fan bucket yet
			return nil
		}
		v := b.Get([]byte(fanId))
		if v == nil {
			// no data for given key
			return nil
		}

		return b.Delete([]byte(fanId))
	})
}
