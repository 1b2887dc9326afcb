package internal

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		for key, val := range map[string]string{
			"user:0xalice":                `{"owner":"0xalice","username":"alice"}`,
			"user:0xbob":                  `{"owner":"0xbob","username":"bob"}`,
			"identity:alice":              `{"password_hash":"$argon2id$secret"}`,
			"msg:abc:0000000000000000001": `{"sender":"0xalice"}`,
			"something-without-separator": `x`,
		} {
			if err := txn.Set([]byte(key), []byte(val)); err != nil {
				return err
			}
		}
		return nil
	}))
	return db
}

func TestDescribeEntry(t *testing.T) {
	req := require.New(t)

	user := DescribeEntry("user:0xalice", []byte(`{"owner":"0xalice"}`))
	req.Equal("USER", user.Type)
	req.Equal("0xalice", user.EntityID)
	req.Equal(`{"owner":"0xalice"}`, user.Detail)

	msg := DescribeEntry("msg:abc:0000000000000000001", []byte(`{}`))
	req.Equal("MESSAGE", msg.Type)
	req.Equal("abc", msg.EntityID)

	identity := DescribeEntry("identity:alice", []byte(`{"password_hash":"secret"}`))
	req.Equal("credentials (redacted)", identity.Detail)

	raw := DescribeEntry("garbage", []byte("1234"))
	req.Equal("RAW", raw.Type)
	req.Equal("Size: 4 bytes", raw.Detail)
}

func TestScan_RespectsPrefixAndLimit(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)

	rows, err := Scan(db, "user:", 0)
	req.NoError(err)
	req.Len(rows, 2)
	req.Equal("user:0xalice", rows[0].Key)
	req.Equal("user:0xbob", rows[1].Key)

	rows, err = Scan(db, "user:", 1)
	req.NoError(err)
	req.Len(rows, 1)
}

func TestDebugHandler_RendersEntriesWithoutSecrets(t *testing.T) {
	req := require.New(t)
	db := newTestDB(t)
	srv := httptest.NewServer(DebugHandler(slog.Default(), db, func() any { return map[string]int{"accounts": 2} }))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/inspect?prefix=identity:")
	req.NoError(err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	req.NoError(err)

	req.Equal(http.StatusOK, resp.StatusCode)
	req.Contains(string(body), "identity:alice")
	req.Contains(string(body), "credentials (redacted)")
	req.NotContains(string(body), "argon2id")
}

func TestConfig_Origins(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"http://a", "http://b"}, Config{AllowedOrigins: " http://a, ,http://b "}.Origins())
	req.Equal([]string{"*"}, Config{AllowedOrigins: "*"}.Origins())
}
