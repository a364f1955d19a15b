package bookmarks

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// List returns every entry for the user as key -> raw JSON value.
func List(db *sql.DB, userID int) (map[string]json.RawMessage, error) {
	rows, err := db.Query(`SELECT key, value FROM bookmarks WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	out := map[string]json.RawMessage{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		out[key] = json.RawMessage(value)
	}
	return out, rows.Err()
}

// Put stores value under key for the user, replacing any previous value.
func Put(db *sql.DB, userID int, key string, value json.RawMessage) error {
	_, err := db.Exec(`
		INSERT INTO bookmarks (user_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP`,
		userID, key, string(value))
	if err != nil {
		return fmt.Errorf("put bookmark %q: %w", key, err)
	}
	return nil
}

// Delete removes the entry if present. Deleting a missing key is not an
// error.
func Delete(db *sql.DB, userID int, key string) error {
	if _, err := db.Exec(`DELETE FROM bookmarks WHERE user_id = ? AND key = ?`, userID, key); err != nil {
		return fmt.Errorf("delete bookmark %q: %w", key, err)
	}
	return nil
}
