package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Rag3karn/HOF-Scheduler/internal/config"
	"github.com/Rag3karn/HOF-Scheduler/internal/schedule"
	"github.com/Rag3karn/HOF-Scheduler/internal/table"
	"github.com/Rag3karn/HOF-Scheduler/internal/util"
	"github.com/Rag3karn/HOF-Scheduler/internal/xlsx"
)

type response struct {
	OK           bool     `json:"ok"`
	Announcement string   `json:"announcement"`
	Errors       []string `json:"errors"`
	RequestID    string   `json:"request_id"`
	TS           string   `json:"ts"`
}

func New(cfg config.Config, sh schedule.SheetLoader) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: Handler(cfg, sh),
	}
}

// Handler builds the routes; sh may be nil when no sheet is configured.
func Handler(cfg config.Config, sh schedule.SheetLoader) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/api/template", func(w http.ResponseWriter, r *http.Request) {
		data, err := xlsx.Template()
		if err != nil {
			log.Printf("http: template: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+xlsx.TemplateFileName+`"`)
		_, _ = w.Write(data)
	})

	// Upload an .xlsx schedule (multipart field "file").
	mux.HandleFunc("/api/announcement", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes)
		file, hdr, err := r.FormFile("file")
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if !strings.EqualFold(filepath.Ext(hdr.Filename), ".xlsx") {
			http.Error(w, "only .xlsx files are accepted", http.StatusBadRequest)
			return
		}

		reqID := util.NewRequestID()
		p := schedule.Processor{CollectAll: cfg.CollectAllErrors || util.NormalizeBool(r.URL.Query().Get("all"))}
		out := p.ProcessReader(file)
		log.Printf("http [%s]: file=%s rows=%d ok=%v errors=%d", reqID, hdr.Filename, out.Rows, out.OK(), len(out.Errors))
		writeOutcome(w, r, reqID, out)
	})

	// Announcement from the configured Google Sheet, behind an HMAC link.
	mux.HandleFunc("/api/announcement/sheet", func(w http.ResponseWriter, r *http.Request) {
		if sh == nil {
			http.Error(w, "no sheet configured", http.StatusNotFound)
			return
		}
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "token required", http.StatusBadRequest)
			return
		}
		if !util.ValidToken(token, util.SheetToken(cfg.LinkSecret, cfg.SheetRange)) {
			http.Error(w, "invalid token", http.StatusForbidden)
			return
		}

		reqID := util.NewRequestID()
		p := schedule.Processor{CollectAll: cfg.CollectAllErrors || util.NormalizeBool(r.URL.Query().Get("all"))}
		out := p.Process(func() (*table.Table, error) {
			return sh.LoadTable(r.Context(), cfg.SheetRange)
		})
		log.Printf("http [%s]: sheet=%s rows=%d ok=%v errors=%d", reqID, cfg.SheetRange, out.Rows, out.OK(), len(out.Errors))
		writeOutcome(w, r, reqID, out)
	})

	return mux
}

// SheetLink returns the public URL of the sheet announcement endpoint.
func SheetLink(cfg config.Config) string {
	return cfg.BasePublicURL + "/api/announcement/sheet?token=" + util.SheetToken(cfg.LinkSecret, cfg.SheetRange)
}

func writeOutcome(w http.ResponseWriter, r *http.Request, reqID string, out schedule.Outcome) {
	if out.OK() && r.URL.Query().Get("format") == "txt" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+schedule.AnnouncementFileName+`"`)
		_, _ = w.Write([]byte(out.Announcement))
		return
	}

	errs := out.Errors
	if errs == nil {
		errs = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	if !out.OK() {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	_ = json.NewEncoder(w).Encode(response{
		OK:           out.OK(),
		Announcement: out.Announcement,
		Errors:       errs,
		RequestID:    reqID,
		TS:           util.NowISO(),
	})
}
