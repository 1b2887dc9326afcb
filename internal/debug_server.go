package internal

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

type StatsProvider func() any

type PageData struct {
	Prefix string
	Items  []InspectRow
	Stats  any
}

const pageLimit = 500

// DebugHandler renders the stored entries matching ?prefix= as an HTML table.
func DebugHandler(log *slog.Logger, db *badger.DB, statsProvider StatsProvider) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	mux := http.NewServeMux()
	mux.HandleFunc("/inspect", func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = "user:"
		}
		data := PageData{Prefix: prefix}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}
		rows, err := Scan(db, prefix, pageLimit)
		if err != nil {
			log.Error("debug scan failed", "prefix", prefix, "error", err)
			http.Error(w, "scan failed", http.StatusInternalServerError)
			return
		}
		data.Items = rows
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Error("debug page rendering failed", "error", err)
		}
	})
	return mux
}

// StartDebugServer serves DebugHandler on port until the returned server is shut down.
func StartDebugServer(log *slog.Logger, db *badger.DB, port int, statsProvider StatsProvider) *http.Server {
	server := &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", port),
		Handler: DebugHandler(log, db, statsProvider),
	}
	go func() {
		log.Info("Starting debug server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("debug server stopped", "error", err)
		}
	}()
	return server
}
