package checkpoint

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mind-engage/mindengage-quiz/internal/session"
)

// SQLStore keeps the journal in the checkpoints table created by db.Open.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Put(ctx context.Context, sessionID, label string, snap session.Snapshot) (Record, error) {
	aj, err := json.Marshal(snap.Answers())
	if err != nil {
		return Record{}, err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, err
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(seq),0) FROM checkpoints WHERE session_id=$1`, sessionID).Scan(&seq); err != nil {
		return Record{}, err
	}
	rec := Record{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Label:     label,
		Seq:       seq + 1,
		Snapshot:  snap,
		CreatedAt: time.Now().Unix(),
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO checkpoints (id,session_id,label,position,answers_json,created_at,seq)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		rec.ID, rec.SessionID, rec.Label, snap.Position(), string(aj), rec.CreatedAt, rec.Seq)
	if err != nil {
		return Record{}, err
	}
	if err := tx.Commit(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,session_id,label,position,answers_json,created_at,seq FROM checkpoints WHERE id=$1`, id)
	return scanRecord(row)
}

func (s *SQLStore) List(ctx context.Context, sessionID string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,session_id,label,position,answers_json,created_at,seq FROM checkpoints
		 WHERE session_id=$1 ORDER BY seq ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLStore) Latest(ctx context.Context, sessionID string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,session_id,label,position,answers_json,created_at,seq FROM checkpoints
		 WHERE session_id=$1 ORDER BY seq DESC LIMIT 1`, sessionID)
	return scanRecord(row)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec      Record
		position int
		ajson    string
	)
	if err := sc.Scan(&rec.ID, &rec.SessionID, &rec.Label, &position, &ajson, &rec.CreatedAt, &rec.Seq); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	var answers []string
	if err := json.Unmarshal([]byte(ajson), &answers); err != nil {
		return Record{}, fmt.Errorf("checkpoint %s: decode answers: %w", rec.ID, err)
	}
	snap, err := session.NewSnapshot(position, answers)
	if err != nil {
		return Record{}, fmt.Errorf("checkpoint %s: %w", rec.ID, err)
	}
	rec.Snapshot = snap
	return rec, nil
}
