package internal

import (
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

const maxDetail = 120

// InspectRow is one badger entry rendered for humans.
type InspectRow struct {
	Key      string
	Type     string
	EntityID string
	Detail   string
}

var keyTypes = map[string]string{
	"user":     "USER",
	"username": "USERNAME",
	"invite":   "INVITES",
	"friends":  "FRIENDS",
	"room":     "ROOM",
	"msg":      "MESSAGE",
	"identity": "IDENTITY",
}

// DescribeEntry maps a stored key/value pair to an InspectRow.
// Credentials are never printed.
func DescribeEntry(key string, val []byte) InspectRow {
	parts := strings.SplitN(key, ":", 2)
	row := InspectRow{
		Key:    key,
		Type:   "RAW",
		Detail: "Size: " + strconv.Itoa(len(val)) + " bytes",
	}
	if len(parts) != 2 {
		return row
	}
	if t, ok := keyTypes[parts[0]]; ok {
		row.Type = t
	}
	row.EntityID = parts[1]
	if parts[0] == "msg" {
		// msg:{room}:{seq}
		if i := strings.LastIndex(parts[1], ":"); i > 0 {
			row.EntityID = parts[1][:i]
		}
	}
	if len(row.EntityID) > 16 {
		row.EntityID = row.EntityID[:16]
	}
	switch {
	case parts[0] == "identity":
		row.Detail = "credentials (redacted)"
	case row.Type != "RAW":
		row.Detail = truncate(string(val), maxDetail)
	}
	return row
}

// Scan lists every entry under prefix. A limit <= 0 means no limit.
func Scan(db *badger.DB, prefix string, limit int) ([]InspectRow, error) {
	var rows []InspectRow
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if limit > 0 && len(rows) >= limit {
				return nil
			}
			item := it.Item()
			key := string(item.KeyCopy(nil))
			err := item.Value(func(val []byte) error {
				rows = append(rows, DescribeEntry(key, val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return rows, err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
