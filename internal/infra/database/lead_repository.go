package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/gustavoantunes/bridalcover-crm/internal/entity"
)

// LeadRepository persiste leads em PostgreSQL. O agregado ocupa duas tabelas:
// leads (com contact_info em JSON) e contact_attempts.
type LeadRepository struct {
	DB *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

type leadRow struct {
	ID          string         `db:"id"`
	CompanyName string         `db:"company_name"`
	CNPJ        sql.NullString `db:"cnpj"`
	ContactInfo []byte         `db:"contact_info"`
	Status      string         `db:"status"`
	Source      string         `db:"source"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

type attemptRow struct {
	ID              string         `db:"id"`
	LeadID          string         `db:"lead_id"`
	AttemptDate     time.Time      `db:"attempt_date"`
	Channel         string         `db:"channel"`
	Result          string         `db:"result"`
	Notes           sql.NullString `db:"notes"`
	NextFollowUp    *time.Time     `db:"next_follow_up"`
	DurationSeconds int64          `db:"duration_seconds"`
}

// Save grava o agregado inteiro em uma transação: upsert do lead e
// substituição completa das tentativas de contato.
func (r *LeadRepository) Save(ctx context.Context, lead *entity.Lead) error {
	row, err := leadToRow(lead)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO leads (id, company_name, cnpj, contact_info, status, source, created_at, updated_at)
		VALUES (:id, :company_name, :cnpj, :contact_info, :status, :source, :created_at, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			cnpj         = EXCLUDED.cnpj,
			contact_info = EXCLUDED.contact_info,
			status       = EXCLUDED.status,
			source       = EXCLUDED.source,
			updated_at   = EXCLUDED.updated_at`, row)
	if err != nil {
		return errors.Wrap(err, "upsert lead")
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM contact_attempts WHERE lead_id = $1`, row.ID); err != nil {
		return errors.Wrap(err, "delete contact attempts")
	}
	for _, attempt := range lead.ContactAttempts() {
		_, err := tx.NamedExecContext(ctx, `
			INSERT INTO contact_attempts (id, lead_id, attempt_date, channel, result, notes, next_follow_up, duration_seconds)
			VALUES (:id, :lead_id, :attempt_date, :channel, :result, :notes, :next_follow_up, :duration_seconds)`,
			attemptToRow(attempt))
		if err != nil {
			return errors.Wrap(err, "insert contact attempt")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit tx")
	}
	return nil
}

// FindByID retorna (nil, nil) quando o lead não existe.
func (r *LeadRepository) FindByID(ctx context.Context, id entity.LeadID) (*entity.Lead, error) {
	var row leadRow
	err := r.DB.GetContext(ctx, &row, `
		SELECT id, company_name, cnpj, contact_info, status, source, created_at, updated_at
		FROM leads WHERE id = $1`, id.String())
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "select lead")
	}

	var attempts []attemptRow
	err = r.DB.SelectContext(ctx, &attempts, `
		SELECT id, lead_id, attempt_date, channel, result, notes, next_follow_up, duration_seconds
		FROM contact_attempts WHERE lead_id = $1 ORDER BY attempt_date`, id.String())
	if err != nil {
		return nil, errors.Wrap(err, "select contact attempts")
	}

	return rowToLead(row, attempts)
}

// FindAll retorna uma página de leads ordenada pelos mais recentes.
func (r *LeadRepository) FindAll(ctx context.Context, page, size int) ([]*entity.Lead, error) {
	var rows []leadRow
	err := r.DB.SelectContext(ctx, &rows, `
		SELECT id, company_name, cnpj, contact_info, status, source, created_at, updated_at
		FROM leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`, size, (page-1)*size)
	if err != nil {
		return nil, errors.Wrap(err, "select leads")
	}
	if len(rows) == 0 {
		return []*entity.Lead{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	var attempts []attemptRow
	err = r.DB.SelectContext(ctx, &attempts, `
		SELECT id, lead_id, attempt_date, channel, result, notes, next_follow_up, duration_seconds
		FROM contact_attempts WHERE lead_id = ANY($1) ORDER BY attempt_date`, pq.Array(ids))
	if err != nil {
		return nil, errors.Wrap(err, "select contact attempts")
	}

	byLead := make(map[string][]attemptRow, len(rows))
	for _, attempt := range attempts {
		byLead[attempt.LeadID] = append(byLead[attempt.LeadID], attempt)
	}

	leads := make([]*entity.Lead, 0, len(rows))
	for _, row := range rows {
		lead, err := rowToLead(row, byLead[row.ID])
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.GetContext(ctx, &total, `SELECT COUNT(*) FROM leads`); err != nil {
		return 0, errors.Wrap(err, "count leads")
	}
	return total, nil
}

// DeleteByID remove o lead e, por cascata da FK, suas tentativas de contato.
// Retorna false quando o lead não existia.
func (r *LeadRepository) DeleteByID(ctx context.Context, id entity.LeadID) (bool, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id.String())
	if err != nil {
		return false, errors.Wrap(err, "delete lead")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "rows affected")
	}
	return affected > 0, nil
}

func leadToRow(lead *entity.Lead) (leadRow, error) {
	contactInfo, err := json.Marshal(lead.ContactInfo())
	if err != nil {
		return leadRow{}, errors.Wrap(err, "marshal contact info")
	}
	row := leadRow{
		ID:          lead.ID().String(),
		CompanyName: lead.Name().Value(),
		ContactInfo: contactInfo,
		Status:      lead.Status().String(),
		Source:      lead.Source().String(),
		CreatedAt:   lead.CreatedAt(),
		UpdatedAt:   lead.UpdatedAt(),
	}
	if cnpj, ok := lead.CNPJ(); ok {
		row.CNPJ = sql.NullString{String: cnpj.Digits(), Valid: true}
	}
	return row, nil
}

func attemptToRow(attempt *entity.ContactAttempt) attemptRow {
	row := attemptRow{
		ID:              attempt.ID().String(),
		LeadID:          attempt.LeadID().String(),
		AttemptDate:     attempt.AttemptDate(),
		Channel:         attempt.Channel().String(),
		Result:          attempt.Result().String(),
		DurationSeconds: int64(attempt.Duration().Seconds()),
	}
	if attempt.Notes() != "" {
		row.Notes = sql.NullString{String: attempt.Notes(), Valid: true}
	}
	if followUp, ok := attempt.NextFollowUp(); ok {
		f := followUp
		row.NextFollowUp = &f
	}
	return row
}

func rowToLead(row leadRow, attemptRows []attemptRow) (*entity.Lead, error) {
	id, err := entity.ParseLeadID(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "lead id")
	}
	name, err := entity.NewCompanyName(row.CompanyName)
	if err != nil {
		return nil, errors.Wrap(err, "company name")
	}

	var cnpj *entity.CNPJ
	if row.CNPJ.Valid {
		parsed, err := entity.NewCNPJ(row.CNPJ.String)
		if err != nil {
			return nil, errors.Wrap(err, "cnpj")
		}
		cnpj = &parsed
	}

	var contactInfo entity.ContactInfo
	if err := json.Unmarshal(row.ContactInfo, &contactInfo); err != nil {
		return nil, errors.Wrap(err, "unmarshal contact info")
	}

	status, err := entity.ParseLeadStatus(row.Status)
	if err != nil {
		return nil, errors.Wrap(err, "status")
	}
	source, err := entity.ParseLeadSource(row.Source)
	if err != nil {
		return nil, errors.Wrap(err, "source")
	}

	attempts := make([]*entity.ContactAttempt, 0, len(attemptRows))
	for _, a := range attemptRows {
		attempt, err := rowToAttempt(a)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}

	return entity.RestoreLead(id, name, cnpj, contactInfo, status, source,
		row.CreatedAt, row.UpdatedAt, attempts)
}

func rowToAttempt(row attemptRow) (*entity.ContactAttempt, error) {
	id, err := entity.ParseContactAttemptID(row.ID)
	if err != nil {
		return nil, errors.Wrap(err, "contact attempt id")
	}
	leadID, err := entity.ParseLeadID(row.LeadID)
	if err != nil {
		return nil, errors.Wrap(err, "lead id")
	}
	channel, err := entity.ParseContactChannel(row.Channel)
	if err != nil {
		return nil, errors.Wrap(err, "channel")
	}
	result, err := entity.ParseContactResult(row.Result)
	if err != nil {
		return nil, errors.Wrap(err, "result")
	}

	return entity.RestoreContactAttempt(
		id,
		leadID,
		row.AttemptDate,
		channel,
		result,
		row.Notes.String,
		row.NextFollowUp,
		time.Duration(row.DurationSeconds)*time.Second,
	)
}
