package tgbot

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Rag3karn/HOF-Scheduler/internal/config"
	"github.com/Rag3karn/HOF-Scheduler/internal/schedule"
	"github.com/Rag3karn/HOF-Scheduler/internal/table"
	"github.com/Rag3karn/HOF-Scheduler/internal/util"
	"github.com/Rag3karn/HOF-Scheduler/internal/xlsx"
)

type App struct {
	cfg  config.Config
	bot  *tgbotapi.BotAPI
	sh   schedule.SheetLoader // nil when no sheet is configured
	http *http.Client
}

func New(cfg config.Config, sh schedule.SheetLoader) (*App, error) {
	b, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}
	b.Debug = false
	return &App{
		cfg:  cfg,
		bot:  b,
		sh:   sh,
		http: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := a.bot.GetUpdatesChan(u)
	defer a.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd := <-updates:
			if upd.Message == nil {
				continue
			}
			if err := a.handleMessage(ctx, upd.Message); err != nil {
				log.Printf("handle msg: %v", err)
			}
		}
	}
}

func (a *App) SendText(chatID int64, text string) error {
	for _, chunk := range splitMessage(text, maxMessageLen) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if _, err := a.bot.Send(msg); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) sendDocument(chatID int64, name string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	_, err := a.bot.Send(doc)
	return err
}

// ---------- Message handling ----------

func (a *App) handleMessage(ctx context.Context, m *tgbotapi.Message) error {
	chatID := m.Chat.ID
	if m.From == nil || !a.cfg.IsAdmin(m.From.ID) {
		return a.SendText(chatID, "Access denied.")
	}

	if m.Document != nil {
		return a.handleDocument(ctx, chatID, m.Document, m.Caption)
	}

	switch m.Command() {
	case "start", "help":
		return a.SendText(chatID, helpText(a.sh != nil))
	case "columns":
		return a.SendText(chatID, columnsText())
	case "template":
		data, err := xlsx.Template()
		if err != nil {
			return err
		}
		return a.sendDocument(chatID, xlsx.TemplateFileName, data)
	case "sheet":
		return a.handleSheet(ctx, chatID, m.CommandArguments())
	}
	return a.SendText(chatID, "Send me the match schedule as an .xlsx file. /help")
}

func (a *App) handleDocument(ctx context.Context, chatID int64, doc *tgbotapi.Document, caption string) error {
	if !strings.EqualFold(filepath.Ext(doc.FileName), ".xlsx") {
		return a.SendText(chatID, "❌ Please upload an Excel file (.xlsx).")
	}
	if int64(doc.FileSize) > a.cfg.MaxUploadBytes {
		return a.SendText(chatID, fmt.Sprintf("❌ File is too large (limit %d MB).", a.cfg.MaxUploadBytes>>20))
	}

	reqID := util.NewRequestID()
	data, err := a.download(ctx, doc.FileID)
	if err != nil {
		log.Printf("telegram [%s]: download %s: %v", reqID, doc.FileName, err)
		return a.SendText(chatID, "❌ Could not download the file, please send it again.")
	}

	p := schedule.Processor{CollectAll: a.collectAll(caption)}
	out := p.ProcessReader(bytes.NewReader(data))
	log.Printf("telegram [%s]: file=%s rows=%d ok=%v errors=%d", reqID, doc.FileName, out.Rows, out.OK(), len(out.Errors))
	return a.reply(chatID, out)
}

func (a *App) handleSheet(ctx context.Context, chatID int64, args string) error {
	if a.sh == nil {
		return a.SendText(chatID, "No Google Sheet is configured.")
	}
	reqID := util.NewRequestID()
	p := schedule.Processor{CollectAll: a.collectAll(args)}
	out := p.Process(func() (*table.Table, error) {
		return a.sh.LoadTable(ctx, a.cfg.SheetRange)
	})
	log.Printf("telegram [%s]: sheet=%s rows=%d ok=%v errors=%d", reqID, a.cfg.SheetRange, out.Rows, out.OK(), len(out.Errors))
	return a.reply(chatID, out)
}

// collectAll turns on collect-all validation for one request when the
// caption or command argument says "all".
func (a *App) collectAll(arg string) bool {
	return a.cfg.CollectAllErrors || util.NormalizeBool(arg)
}

func (a *App) reply(chatID int64, out schedule.Outcome) error {
	if !out.OK() {
		return a.SendText(chatID, errorsText(out.Errors))
	}
	if err := a.SendText(chatID, "✅ Announcement generated"); err != nil {
		return err
	}
	if err := a.SendText(chatID, out.Announcement); err != nil {
		return err
	}
	return a.sendDocument(chatID, schedule.AnnouncementFileName, []byte(out.Announcement))
}

func (a *App) download(ctx context.Context, fileID string) ([]byte, error) {
	url, err := a.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("file url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, a.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > a.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("file larger than %d bytes", a.cfg.MaxUploadBytes)
	}
	return data, nil
}
