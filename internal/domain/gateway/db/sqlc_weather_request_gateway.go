package db

import (
	"database/sql"
	"errors"

	"go-weather/internal/domain/entity"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

const selectWeatherRequest = `
		SELECT id, location, start_date, end_date, weather_info, created_at
		FROM weather_requests`

var schemas = map[string]string{
	DialectPostgres: `
		CREATE TABLE IF NOT EXISTS weather_requests (
			id           BIGSERIAL PRIMARY KEY,
			location     VARCHAR(100) NOT NULL,
			start_date   VARCHAR(10)  NOT NULL,
			end_date     VARCHAR(10)  NOT NULL,
			weather_info TEXT,
			created_at   TIMESTAMP    NOT NULL
		)`,
	DialectSQLite: `
		CREATE TABLE IF NOT EXISTS weather_requests (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			location     VARCHAR(100) NOT NULL,
			start_date   VARCHAR(10)  NOT NULL,
			end_date     VARCHAR(10)  NOT NULL,
			weather_info TEXT,
			created_at   TIMESTAMP    NOT NULL
		)`,
}

type rowScanner interface {
	Scan(dest ...any) error
}

// SQLCWeatherRequestGateway stores weather requests through database/sql. Placeholders are $n,
// understood by both lib/pq and go-sqlite3.
type SQLCWeatherRequestGateway struct {
	DB      *sql.DB
	Dialect string
}

var _ WeatherRequestGateway = (*SQLCWeatherRequestGateway)(nil)

func NewSQLCWeatherRequestGateway(db *sql.DB, dialect string) *SQLCWeatherRequestGateway {
	return &SQLCWeatherRequestGateway{DB: db, Dialect: dialect}
}

func (gateway *SQLCWeatherRequestGateway) Migrate() error {
	schema, ok := schemas[gateway.Dialect]
	if !ok {
		return errors.New("unsupported sql dialect: " + gateway.Dialect)
	}
	_, err := gateway.DB.Exec(schema)
	return err
}

func (gateway *SQLCWeatherRequestGateway) FindAll() ([]entity.WeatherRequest, error) {
	return gateway.query(selectWeatherRequest + `
		ORDER BY created_at DESC, id DESC`)
}

func (gateway *SQLCWeatherRequestGateway) FindAllForExport() ([]entity.WeatherRequest, error) {
	return gateway.query(selectWeatherRequest + `
		ORDER BY id ASC`)
}

func (gateway *SQLCWeatherRequestGateway) FindByID(id int64) (*entity.WeatherRequest, error) {
	request, err := scanWeatherRequest(gateway.DB.QueryRow(selectWeatherRequest+`
		WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (gateway *SQLCWeatherRequestGateway) Create(request entity.WeatherRequest) (*entity.WeatherRequest, error) {
	request.CreatedAt = nowUTC()

	tx, err := gateway.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.QueryRow(`
		INSERT INTO weather_requests (location, start_date, end_date, weather_info, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		request.Location, request.StartDate, request.EndDate, request.WeatherInfo, request.CreatedAt).
		Scan(&request.ID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return &request, nil
}

func (gateway *SQLCWeatherRequestGateway) UpdateByID(id int64, updated entity.WeatherRequest) (*entity.WeatherRequest, error) {
	tx, err := gateway.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	stored, err := scanWeatherRequest(tx.QueryRow(selectWeatherRequest+`
		WHERE id = $1`+gateway.lockClause(), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	stored.Location = updated.Location
	stored.StartDate = updated.StartDate
	stored.EndDate = updated.EndDate
	stored.WeatherInfo = updated.WeatherInfo

	_, err = tx.Exec(`
		UPDATE weather_requests
		SET location = $1, start_date = $2, end_date = $3, weather_info = $4
		WHERE id = $5`,
		stored.Location, stored.StartDate, stored.EndDate, stored.WeatherInfo, id)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return stored, nil
}

func (gateway *SQLCWeatherRequestGateway) DeleteByID(id int64) error {
	tx, err := gateway.DB.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(`DELETE FROM weather_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (gateway *SQLCWeatherRequestGateway) query(query string, args ...any) ([]entity.WeatherRequest, error) {
	rows, err := gateway.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	results := make([]entity.WeatherRequest, 0)
	for rows.Next() {
		request, err := scanWeatherRequest(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *request)
	}
	return results, rows.Err()
}

// lockClause takes a row lock where the engine supports it; sqlite serializes writers itself
func (gateway *SQLCWeatherRequestGateway) lockClause() string {
	if gateway.Dialect == DialectPostgres {
		return " FOR UPDATE"
	}
	return ""
}

func scanWeatherRequest(row rowScanner) (*entity.WeatherRequest, error) {
	var request entity.WeatherRequest
	var weatherInfo sql.NullString
	if err := row.Scan(&request.ID, &request.Location, &request.StartDate, &request.EndDate, &weatherInfo, &request.CreatedAt); err != nil {
		return nil, err
	}
	request.WeatherInfo = weatherInfo.String
	request.CreatedAt = request.CreatedAt.UTC()
	return &request, nil
}
