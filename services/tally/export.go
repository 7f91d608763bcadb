package tally

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"noticeboard-tally/services/tally/db"
)

// SaveSnapshot writes `result` into the export database and returns the id
// of the new run. The database is only ever written to.
func SaveSnapshot(ctx context.Context, database *sql.DB, result Result, finishedAt time.Time) (int64, error) {
	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()
	qry := db.New(database).WithTx(tx)

	runId, err := qry.CreateRun(ctx, db.CreateRunParams{
		Mode:        string(result.Mode),
		FinishedAt:  finishedAt.Unix(),
		Pages:       int64(result.PagesVisited),
		Threads:     int64(result.ThreadsChecked),
		Selected:    int64(result.Totals.Selected),
		Waitlisted:  int64(result.Totals.Waitlisted),
		UnderReview: int64(result.Totals.UnderReview),
	})
	if err != nil {
		return 0, fmt.Errorf("create run: %w", err)
	}

	for _, company := range result.SortedCompanies() {
		count := result.Companies[company]
		err := qry.CreateCompanyCount(ctx, db.CreateCompanyCountParams{
			RunID:       runId,
			Company:     company,
			Selected:    int64(count.Selected),
			Waitlisted:  int64(count.Waitlisted),
			UnderReview: int64(count.UnderReview),
		})
		if err != nil {
			return 0, fmt.Errorf("create company count %q: %w", company, err)
		}
	}

	return runId, tx.Commit()
}
