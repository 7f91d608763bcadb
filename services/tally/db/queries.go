package db

import (
	"context"
	"database/sql"
)

type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const createRun = `insert into run (
    mode, finished_at, pages, threads, selected, waitlisted, under_review
) values (?, ?, ?, ?, ?, ?, ?)
returning id`

type CreateRunParams struct {
	Mode        string
	FinishedAt  int64
	Pages       int64
	Threads     int64
	Selected    int64
	Waitlisted  int64
	UnderReview int64
}

func (q *Queries) CreateRun(ctx context.Context, arg CreateRunParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, createRun,
		arg.Mode,
		arg.FinishedAt,
		arg.Pages,
		arg.Threads,
		arg.Selected,
		arg.Waitlisted,
		arg.UnderReview,
	)
	var id int64
	err := row.Scan(&id)
	return id, err
}

const createCompanyCount = `insert into company_count (
    run_id, company, selected, waitlisted, under_review
) values (?, ?, ?, ?, ?)`

type CreateCompanyCountParams struct {
	RunID       int64
	Company     string
	Selected    int64
	Waitlisted  int64
	UnderReview int64
}

func (q *Queries) CreateCompanyCount(ctx context.Context, arg CreateCompanyCountParams) error {
	_, err := q.db.ExecContext(ctx, createCompanyCount,
		arg.RunID,
		arg.Company,
		arg.Selected,
		arg.Waitlisted,
		arg.UnderReview,
	)
	return err
}

const getCompanyCounts = `select company, selected, waitlisted, under_review
from company_count
where run_id = ?
order by company`

type GetCompanyCountsRow struct {
	Company     string
	Selected    int64
	Waitlisted  int64
	UnderReview int64
}

func (q *Queries) GetCompanyCounts(ctx context.Context, runID int64) ([]GetCompanyCountsRow, error) {
	rows, err := q.db.QueryContext(ctx, getCompanyCounts, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetCompanyCountsRow
	for rows.Next() {
		var i GetCompanyCountsRow
		err := rows.Scan(&i.Company, &i.Selected, &i.Waitlisted, &i.UnderReview)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
