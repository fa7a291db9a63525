package chatdb

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
	"github.com/aidenappl/OneTimePaste/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.MessageReader = (*Reader)(nil)

// recentMessagesQuery selects the newest rows with any recoverable text.
const recentMessagesQuery = `
SELECT
	m.text AS text,
	m.attributedBody AS body,
	COALESCE(h.id, 'Unknown') AS sender,
	m.date AS date
FROM message m
LEFT JOIN handle h ON m.handle_id = h.ROWID
WHERE (m.text IS NOT NULL AND m.text != '')
   OR (m.attributedBody IS NOT NULL AND length(m.attributedBody) > 0)
ORDER BY m.date DESC
LIMIT ?`

// defaultBusyTimeout is how long SQLite waits on a lock held by Messages.
const defaultBusyTimeout = time.Second

// messageRow is one row of recentMessagesQuery.
type messageRow struct {
	Text   sql.NullString `db:"text"`
	Body   []byte         `db:"body"`
	Sender sql.NullString `db:"sender"`
	Date   sql.NullInt64  `db:"date"`
}

// Reader reads recent messages from a chat.db file.
type Reader struct {
	decoder     driven.BodyDecoder
	logger      *zap.Logger
	busyTimeout time.Duration
}

// NewReader creates a reader that uses decoder for rows without plain text.
func NewReader(decoder driven.BodyDecoder, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		decoder:     decoder,
		logger:      logger,
		busyTimeout: defaultBusyTimeout,
	}
}

// ReadMessages opens path read-only and returns up to limit messages,
// most recent first. The handle is closed before returning.
func (r *Reader) ReadMessages(ctx context.Context, path string, limit int) ([]domain.CandidateMessage, error) {
	if limit <= 0 {
		limit = domain.MaxScanRows
	}

	db, err := r.open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var rows []messageRow
	if err := db.SelectContext(ctx, &rows, recentMessagesQuery, limit); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQuery, err)
	}

	messages := make([]domain.CandidateMessage, 0, len(rows))
	skipped := 0
	for i := range rows {
		msg, ok := r.toMessage(&rows[i])
		if !ok {
			skipped++
			continue
		}
		messages = append(messages, msg)
	}

	r.logger.Debug("read messages",
		zap.Int("rows", len(rows)),
		zap.Int("skipped", skipped),
	)
	return messages, nil
}

// open returns a verified read-only handle. Failures wrap domain.ErrStoreOpen.
func (r *Reader) open(ctx context.Context, path string) (*sqlx.DB, error) {
	if strings.ContainsRune(path, '?') {
		return nil, fmt.Errorf("%w: %s: path contains '?'", domain.ErrStoreOpen, path)
	}

	db, err := sqlx.Open("sqlite", ReadOnlyDSN(path, r.busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreOpen, err)
	}
	db.SetMaxOpenConns(1)

	// sqlx.Open is lazy; reading the schema version forces the file
	// open and header check.
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA schema_version").Scan(&version); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStoreOpen, path, err)
	}
	return db, nil
}

func (r *Reader) toMessage(row *messageRow) (domain.CandidateMessage, bool) {
	text := row.Text.String
	if text == "" && len(row.Body) > 0 && r.decoder != nil {
		text, _ = r.decoder.Decode(row.Body)
	}
	if text == "" {
		return domain.CandidateMessage{}, false
	}

	sender := row.Sender.String
	if sender == "" {
		sender = domain.UnknownSender
	}

	return domain.CandidateMessage{
		Text:      text,
		Sender:    sender,
		Timestamp: domain.StoreTime(row.Date.Int64),
	}, true
}

// ReadOnlyDSN builds a SQLite URI that opens path read-only without
// creating it. The driver cannot open an escaped '?' in the path, so
// open rejects such paths before building a DSN.
func ReadOnlyDSN(path string, busyTimeout time.Duration) string {
	q := url.Values{}
	q.Set("mode", "ro")
	q.Add("_pragma", "query_only(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	u := url.URL{Scheme: "file", Path: path, RawQuery: q.Encode()}
	return u.String()
}
