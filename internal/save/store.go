package save

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/samdwyer/gravedelve/internal/engine"
)

// Store manages the SQLite database holding save slots.
type Store struct {
	db *sql.DB
}

// SlotInfo describes one save slot for listings.
type SlotInfo struct {
	Slot       int
	PlayerName string
	Depth      int
	Turn       int
	SavedAt    time.Time
}

// Open creates or opens the save database at the given path, creating
// parent directories and the schema as needed. A "~" prefix expands to
// the home directory.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("save: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("save: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("save: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: cannot connect to database: %w", err)
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("save: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			slot INTEGER PRIMARY KEY,
			player_name TEXT NOT NULL,
			depth INTEGER NOT NULL,
			turn INTEGER NOT NULL,
			data BLOB NOT NULL,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save snapshots the session into a slot, replacing any previous save
// there.
func (s *Store) Save(slot int, e *engine.Engine) error {
	data, err := Encode(e)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO slots (slot, player_name, depth, turn, data, saved_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET
		   player_name = excluded.player_name,
		   depth = excluded.depth,
		   turn = excluded.turn,
		   data = excluded.data,
		   saved_at = excluded.saved_at`,
		slot, e.Player.Name, e.Map.Level, e.Turn, data,
	)
	if err != nil {
		return fmt.Errorf("save: cannot write slot %d: %w", slot, err)
	}
	return nil
}

// Load restores the session stored in a slot into the engine.
func (s *Store) Load(slot int, e *engine.Engine) error {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM slots WHERE slot = ?", slot).Scan(&data)
	if err == sql.ErrNoRows {
		return fmt.Errorf("save: slot %d is empty", slot)
	}
	if err != nil {
		return fmt.Errorf("save: cannot read slot %d: %w", slot, err)
	}
	return Decode(e, data)
}

// Slots lists the occupied save slots in slot order.
func (s *Store) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		"SELECT slot, player_name, depth, turn, saved_at FROM slots ORDER BY slot",
	)
	if err != nil {
		return nil, fmt.Errorf("save: cannot list slots: %w", err)
	}
	defer rows.Close()

	var infos []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var savedAt any
		if err := rows.Scan(&info.Slot, &info.PlayerName, &info.Depth, &info.Turn, &savedAt); err != nil {
			return nil, fmt.Errorf("save: cannot scan slot row: %w", err)
		}
		switch v := savedAt.(type) {
		case time.Time:
			info.SavedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				info.SavedAt = parsed
			}
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("save: slot iteration error: %w", err)
	}
	return infos, nil
}

// Delete clears a save slot.
func (s *Store) Delete(slot int) error {
	_, err := s.db.Exec("DELETE FROM slots WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("save: cannot delete slot %d: %w", slot, err)
	}
	return nil
}
