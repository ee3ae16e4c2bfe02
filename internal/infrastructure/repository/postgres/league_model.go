package postgres

import (
	"database/sql"
	"time"
)

type leagueTableModel struct {
	ID          int64         `db:"id"`
	PublicID    string        `db:"public_id"`
	Name        string        `db:"name"`
	CountryCode string        `db:"country_code"`
	Season      int           `db:"season"`
	IsDefault   bool          `db:"is_default"`
	LeagueRefID sql.NullInt64 `db:"external_league_id"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

func nullInt64ToInt64(v sql.NullInt64) int64 {
	if !v.Valid {
		return 0
	}
	return v.Int64
}
