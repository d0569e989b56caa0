package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/ledger/ingestion"
	"github.com/TajHussain7/AutoMetrics-Dashboard-sub000/api/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Store is the persistence collaborator for ingestion output. It owns
// identity and timestamps: the pipeline result is immutable and the store
// assigns the session id and created_at on the way in.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// IngestionSession is the stored batch header for one upload.
type IngestionSession struct {
	SessionID     string           `json:"session_id"`
	FileName      string           `json:"file_name"`
	BalanceDate   *time.Time       `json:"opening_balance_date"`
	BalanceAmount *decimal.Decimal `json:"opening_balance_amount"`
	TotalBookings int              `json:"total_bookings"`
	TotalRevenue  decimal.Decimal  `json:"total_revenue"`
	TotalExpenses decimal.Decimal  `json:"total_expenses"`
	ComingFlights int              `json:"coming_flights"`
	SkippedRows   int              `json:"skipped_rows"`
	CreatedAt     time.Time        `json:"created_at"`
}

var travelRecordColumns = []string{
	"session_id", "record_date", "voucher_no", "reference", "narration",
	"debit", "credit", "balance", "customer_name", "route", "pnr",
	"flying_date", "flight_status", "customer_rate", "company_rate",
	"profit", "payment_status",
}

// SaveIngestion stages one pipeline result: a session header row plus a bulk
// CopyFrom of the records keyed by the new session id.
func (s *Store) SaveIngestion(ctx context.Context, fileName string, res *ingestion.IngestionResult) (string, error) {
	sessionID := uuid.New().String()

	var balDate interface{}
	var balAmount interface{}
	if res.OpeningBalance != nil {
		balDate = res.OpeningBalance.Date
		balAmount = res.OpeningBalance.Amount
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO ingestion_sessions
			(session_id, file_name, opening_balance_date, opening_balance_amount,
			 total_bookings, total_revenue, total_expenses, coming_flights,
			 skipped_rows, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
	`, sessionID, fileName, balDate, balAmount,
		res.Summary.TotalBookings, res.Summary.TotalRevenue,
		res.Summary.TotalExpenses, res.Summary.ComingFlights, res.SkippedRows)
	if err != nil {
		return "", fmt.Errorf("insert session: %w", err)
	}

	if len(res.Records) > 0 {
		copyRows := make([][]interface{}, len(res.Records))
		for i, rec := range res.Records {
			copyRows[i] = []interface{}{
				sessionID, rec.Date, rec.Voucher,
				nullableString(rec.Reference), nullableString(rec.Narration),
				nullableDecimal(rec.Debit), nullableDecimal(rec.Credit),
				nullableDecimal(rec.Balance),
				nullableString(rec.CustomerName), nullableString(rec.Route),
				nullableString(rec.PNR), nullableTime(rec.FlyingDate),
				string(rec.FlightStatus), rec.CustomerRate, rec.CompanyRate,
				rec.Profit, string(rec.PaymentStatus),
			}
		}
		_, err = s.pool.CopyFrom(
			ctx,
			pgx.Identifier{"travel_records"},
			travelRecordColumns,
			pgx.CopyFromRows(copyRows),
		)
		if err != nil {
			return "", fmt.Errorf("stage records: %w", err)
		}
	}
	return sessionID, nil
}

// GetSession returns one session header, or pgx.ErrNoRows.
func (s *Store) GetSession(ctx context.Context, sessionID string) (*IngestionSession, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT session_id, file_name, opening_balance_date, opening_balance_amount,
		       total_bookings, total_revenue, total_expenses, coming_flights,
		       skipped_rows, created_at
		FROM ingestion_sessions WHERE session_id = $1
	`, sessionID)
	return scanSession(row)
}

// CountSessions returns the total number of stored sessions.
func (s *Store) CountSessions(ctx context.Context) (int, error) {
	return utils.CountTotal(ctx, s.pool, `SELECT COUNT(*) FROM ingestion_sessions`)
}

// ListSessions returns one page of session headers, newest first.
func (s *Store) ListSessions(ctx context.Context, limit, offset int) ([]IngestionSession, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT session_id, file_name, opening_balance_date, opening_balance_amount,
		       total_bookings, total_revenue, total_expenses, coming_flights,
		       skipped_rows, created_at
		FROM ingestion_sessions ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []IngestionSession{}
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}
	return sessions, rows.Err()
}

// PurgeSessionsBefore deletes sessions (and their records) older than cutoff.
// Used by the retention cron.
func (s *Store) PurgeSessionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if _, err := s.pool.Exec(ctx, `
		DELETE FROM travel_records WHERE session_id IN
			(SELECT session_id FROM ingestion_sessions WHERE created_at < $1)
	`, cutoff); err != nil {
		return 0, err
	}
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM ingestion_sessions WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanSession(row pgx.Row) (*IngestionSession, error) {
	var sess IngestionSession
	err := row.Scan(&sess.SessionID, &sess.FileName, &sess.BalanceDate,
		&sess.BalanceAmount, &sess.TotalBookings, &sess.TotalRevenue,
		&sess.TotalExpenses, &sess.ComingFlights, &sess.SkippedRows,
		&sess.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func nullableDecimal(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return *d
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
