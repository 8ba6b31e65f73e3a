package migrations

import (
	"database/sql"
)

func init() {
	RegisterGoMigration(2, Up_000002_normalize_priorities, Down_000002_normalize_priorities)
}

// legacyPriorities maps spellings written by older versions to the canonical names.
var legacyPriorities = map[string]string{
	"alta":   "High",
	"media":  "Medium",
	"baja":   "Low",
	"high":   "High",
	"medium": "Medium",
	"low":    "Low",
}

// Up_000002_normalize_priorities rewrites every stored priority to High, Medium or Low.
// Unknown values are left alone so the load path reports them.
func Up_000002_normalize_priorities(tx *sql.Tx) error {
	for legacy, canonical := range legacyPriorities {
		_, err := tx.Exec(`UPDATE tasks SET priority = ? WHERE lower(trim(priority)) = ? AND priority <> ?`,
			canonical, legacy, canonical)
		if err != nil {
			return err
		}
	}
	return nil
}

// Down_000002_normalize_priorities is a no-op: canonical names are valid input for every version.
func Down_000002_normalize_priorities(tx *sql.Tx) error {
	return nil
}
