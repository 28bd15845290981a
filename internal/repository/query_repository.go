package repository

import (
	"database/sql"

	"stockscreen/internal/model"
)

type QueryRepository struct {
	db *sql.DB
}

func NewQueryRepository(db *sql.DB) *QueryRepository {
	return &QueryRepository{db: db}
}

func (r *QueryRepository) SaveQuery(rec *model.QueryRecord) error {
	return r.db.QueryRow(`
		INSERT INTO query_log(query, route, objective, risk_tolerance, horizon_years, source, duration_ms)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, rec.Query, rec.Route, rec.Objective, rec.RiskTolerance, rec.HorizonYears, rec.Source, rec.DurationMs).Scan(&rec.ID)
}

func (r *QueryRepository) GetRecent(limit, offset int) ([]model.QueryRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, query, route, objective, risk_tolerance, horizon_years, source, duration_ms, created_at
		FROM query_log
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.QueryRecord
	for rows.Next() {
		var rec model.QueryRecord
		err := rows.Scan(&rec.ID, &rec.Query, &rec.Route, &rec.Objective, &rec.RiskTolerance, &rec.HorizonYears, &rec.Source, &rec.DurationMs, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *QueryRepository) GetTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM query_log`).Scan(&total)
	return total, err
}
