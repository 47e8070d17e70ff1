package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/adenchik/leadboard/internal/domain/model"
	"github.com/adenchik/leadboard/internal/domain/region"
	"github.com/adenchik/leadboard/pkg/metrics"
)

// SQLStore implements Store on top of database/sql.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps an opened database handle.
func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

// ReplaceRegion deletes and re-inserts one region's rows inside a single
// transaction. Regions absent from a fetch cycle are never touched, so
// stale-but-present beats empty.
func (s *SQLStore) ReplaceRegion(ctx context.Context, r region.Region, rows []model.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM players WHERE region = ?`, string(r)); err != nil {
		return fmt.Errorf("delete region %s: %w", r, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO players (region, rank, name, team_id, team_tag, sponsor, country)
VALUES (?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.ExecContext(ctx, string(r), p.Rank, p.Name,
			p.TeamID, nullableString(p.TeamTag), nullableString(p.Sponsor), nullableString(p.Country)); err != nil {
			return fmt.Errorf("insert region %s rank %d: %w", r, p.Rank, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace: %w", err)
	}
	metrics.UpdateRegionRows(string(r), len(rows))
	return nil
}

// FindPlayers composes the filter as parameterized predicate clauses and
// returns matching rows ordered by rank.
func (s *SQLStore) FindPlayers(ctx context.Context, r region.Region, f Filter) ([]model.Player, error) {
	start := time.Now()

	qb := sq.Select("rank", "name", "team_id", "team_tag", "sponsor", "country").
		From("players").
		Where(sq.Eq{"region": string(r)})

	// Half a range pair is treated as no range at all.
	if f.RankFrom != nil && f.RankTo != nil {
		qb = qb.Where(sq.GtOrEq{"rank": *f.RankFrom}).Where(sq.LtOrEq{"rank": *f.RankTo})
	}

	if len(f.Countries) > 0 {
		codes := make([]string, 0, len(f.Countries))
		for _, c := range f.Countries {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, strings.ToUpper(c))
			}
		}
		if len(codes) > 0 {
			qb = qb.Where(sq.Eq{"UPPER(country)": codes})
		}
	}

	switch f.Team {
	case "yes":
		qb = qb.Where("team_tag IS NOT NULL AND team_tag != ''")
	case "no":
		qb = qb.Where(sq.Or{sq.Eq{"team_tag": nil}, sq.Eq{"team_tag": ""}})
	}

	if f.NamePrefix != "" {
		qb = qb.Where(sq.Like{"LOWER(name)": strings.ToLower(f.NamePrefix) + "%"})
	}

	query, args, err := qb.OrderBy("rank ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build player query: %w", err)
	}

	dbRows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer dbRows.Close()

	var out []model.Player
	for dbRows.Next() {
		var (
			p       model.Player
			teamID  sql.NullInt64
			teamTag sql.NullString
			sponsor sql.NullString
			country sql.NullString
		)
		if err := dbRows.Scan(&p.Rank, &p.Name, &teamID, &teamTag, &sponsor, &country); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		p.Region = r
		if teamID.Valid {
			p.TeamID = &teamID.Int64
		}
		p.TeamTag = nullStringPtr(teamTag)
		p.Sponsor = nullStringPtr(sponsor)
		p.Country = nullStringPtr(country)
		out = append(out, p)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}

	metrics.RecordQueryLatency(float64(time.Since(start).Milliseconds()))
	return out, nil
}

// DistinctCountries lists the upper-cased codes present for one region.
func (s *SQLStore) DistinctCountries(ctx context.Context, r region.Region) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT DISTINCT UPPER(country)
  FROM players
 WHERE region = ? AND country IS NOT NULL AND country != ''
`, string(r))
	if err != nil {
		return nil, fmt.Errorf("query countries: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

// nullableString maps a nil or empty optional field to NULL so the country
// index and team filters see one representation of "absent".
func nullableString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
