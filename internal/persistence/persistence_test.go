package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func createPersistence(t *testing.T) Persistence {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fanctrld.db")
	p := NewPersistence(dbPath)
	assert.NoError(t, p.Init())
	return p
}

func TestSaveAndLoadFanDuty(t *testing.T) {
	// GIVEN
	p := createPersistence(t)

	// WHEN
	err := p.SaveFanDuty("fan", 42)

	// THEN
	assert.NoError(t, err)
	duty, err := p.LoadFanDuty("fan")
	assert.NoError(t, err)
	assert.Equal(t, 42, duty)
}

func TestLoadFanDutyMissing(t *testing.T) {
	// GIVEN
	p := createPersistence(t)

	// WHEN
	_, err := p.LoadFanDuty("fan")

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDeleteFanDuty(t *testing.T) {
	// GIVEN
	p := createPersistence(t)
	assert.NoError(t, p.SaveFanDuty("fan", 42))

	// WHEN
	err := p.DeleteFanDuty("fan")

	// THEN
	assert.NoError(t, err)
	_, err = p.LoadFanDuty("fan")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInitCreatesParentDirectory(t *testing.T) {
	// GIVEN
	dbPath := filepath.Join(t.TempDir(), "nested", "fanctrld.db")
	p := NewPersistence(dbPath)

	// WHEN
	err := p.Init()

	// THEN
	assert.NoError(t, err)
	assert.NoError(t, p.SaveFanDuty("fan", 1))
}
