package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Rag3karn/HOF-Scheduler/internal/util"
)

const defaultMaxUploadMB = 10

type Config struct {
	TelegramToken string

	SpreadsheetID            string
	GoogleServiceAccountJSON string
	SheetRange               string

	AdminTGIDs map[int64]bool

	HTTPAddr      string
	BasePublicURL string
	LinkSecret    string

	CollectAllErrors bool
	MaxUploadBytes   int64
}

// BotEnabled reports whether a Telegram token was given.
func (c Config) BotEnabled() bool { return c.TelegramToken != "" }

// HTTPEnabled is false when HTTP_ADDR is "off".
func (c Config) HTTPEnabled() bool { return c.HTTPAddr != "" }

// SheetsEnabled reports whether a Google Sheet can be used as a source.
func (c Config) SheetsEnabled() bool {
	return c.SpreadsheetID != "" && c.GoogleServiceAccountJSON != ""
}

// IsAdmin reports whether tgID may generate announcements. An empty admin
// list lets everyone in.
func (c Config) IsAdmin(tgID int64) bool {
	if len(c.AdminTGIDs) == 0 {
		return true
	}
	return c.AdminTGIDs[tgID]
}

func FromEnv() (Config, error) {
	var c Config
	c.TelegramToken = strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	c.SpreadsheetID = strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID"))
	c.GoogleServiceAccountJSON = strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))

	c.SheetRange = strings.TrimSpace(os.Getenv("GOOGLE_SHEETS_RANGE"))
	if c.SheetRange == "" {
		c.SheetRange = "Schedule!A:Z"
	}

	c.HTTPAddr = strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	if strings.EqualFold(c.HTTPAddr, "off") {
		c.HTTPAddr = ""
	}

	c.BasePublicURL = strings.TrimRight(strings.TrimSpace(os.Getenv("BASE_PUBLIC_URL")), "/")

	c.LinkSecret = strings.TrimSpace(os.Getenv("LINK_SECRET"))
	if c.LinkSecret == "" {
		c.LinkSecret = "change-me"
	}

	c.CollectAllErrors = util.NormalizeBool(os.Getenv("COLLECT_ALL_ERRORS"))

	c.MaxUploadBytes = defaultMaxUploadMB << 20
	if raw := strings.TrimSpace(os.Getenv("MAX_UPLOAD_MB")); raw != "" {
		mb, err := strconv.Atoi(raw)
		if err != nil || mb <= 0 {
			return c, fmt.Errorf("MAX_UPLOAD_MB must be a positive integer, got %q", raw)
		}
		c.MaxUploadBytes = int64(mb) << 20
	}

	if !c.BotEnabled() && !c.HTTPEnabled() {
		return c, fmt.Errorf("TELEGRAM_BOT_TOKEN is empty and HTTP_ADDR is off: nothing to run")
	}
	if c.SpreadsheetID != "" && c.GoogleServiceAccountJSON == "" {
		return c, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT_JSON is empty")
	}
	if c.GoogleServiceAccountJSON != "" && c.SpreadsheetID == "" {
		return c, fmt.Errorf("GOOGLE_SHEETS_SPREADSHEET_ID is empty")
	}

	c.AdminTGIDs = parseAdminIDs(os.Getenv("ADMIN_TG_IDS"))

	return c, nil
}

func parseAdminIDs(raw string) map[int64]bool {
	m := map[int64]bool{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return m
	}
	parts := strings.Split(raw, ",")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			continue
		}
		m[v] = true
	}
	return m
}
