package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asdfghjkl1994/Frost-Tesh/internal/models"
)

// Postgres backs both stores with a pgx pool. The memory backend remains
// the default; this one survives restarts.
type Postgres struct {
	Pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Postgres{Pool: pool}, nil
}

func (p *Postgres) Close() {
	p.Pool.Close()
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS bookings (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL DEFAULT '',
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			customer_email TEXT NOT NULL DEFAULT '',
			service TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			address TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS emergency_requests (
			seq BIGSERIAL,
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			area TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			priority TEXT NOT NULL,
			assigned_technician TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (p *Postgres) Bookings() BookingStore {
	return &pgBookings{pool: p.Pool}
}

func (p *Postgres) Emergencies() EmergencyStore {
	return &pgEmergencies{pool: p.Pool}
}

type pgBookings struct {
	pool *pgxpool.Pool
}

const bookingColumns = `id, user_id, customer_name, customer_phone, customer_email, service, date, time, address, price, notes, status, created_at, updated_at`

func scanBooking(row pgx.Row) (models.Booking, error) {
	var b models.Booking
	var updatedAt *time.Time
	err := row.Scan(&b.ID, &b.UserID, &b.CustomerName, &b.CustomerPhone, &b.CustomerEmail,
		&b.Service, &b.Date, &b.Time, &b.Address, &b.Price, &b.Notes, &b.Status,
		&b.CreatedAt, &updatedAt)
	if err != nil {
		return models.Booking{}, err
	}
	if updatedAt != nil {
		b.UpdatedAt = *updatedAt
	}
	return b, nil
}

func (s *pgBookings) List(ctx context.Context, f Filter) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var args []any
	var wheres []string
	if f.Status != "" {
		args = append(args, f.Status)
		wheres = append(wheres, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		wheres = append(wheres, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		wheres = append(wheres, fmt.Sprintf("(customer_name ILIKE $%d OR service ILIKE $%d OR customer_phone LIKE $%d)", len(args), len(args), len(args)))
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY seq ASC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *pgBookings) Get(ctx context.Context, id string) (models.Booking, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Booking{}, ErrNotFound
	}
	return b, err
}

func (s *pgBookings) Create(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.ID = newID()
	b.Status = models.BookingPending
	b.CreatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO bookings (id, user_id, customer_name, customer_phone, customer_email, service, date, time, address, price, notes, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`, b.ID, b.UserID, b.CustomerName, b.CustomerPhone, b.CustomerEmail, b.Service, b.Date, b.Time, b.Address, b.Price, b.Notes, b.Status, b.CreatedAt)
	if err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (s *pgBookings) UpdateStatus(ctx context.Context, id, status string) (models.Booking, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2
		RETURNING `+bookingColumns, status, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Booking{}, ErrNotFound
	}
	return b, err
}

func (s *pgBookings) Delete(ctx context.Context, id string) (models.Booking, error) {
	row := s.pool.QueryRow(ctx, `DELETE FROM bookings WHERE id = $1 RETURNING `+bookingColumns, id)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Booking{}, ErrNotFound
	}
	return b, err
}

type pgEmergencies struct {
	pool *pgxpool.Pool
}

const emergencyColumns = `id, user_id, name, phone, address, area, type, description, status, priority, assigned_technician, created_at`

func scanEmergency(row pgx.Row) (models.EmergencyRequest, error) {
	var e models.EmergencyRequest
	err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.Phone, &e.Address, &e.Area, &e.Type,
		&e.Description, &e.Status, &e.Priority, &e.AssignedTechnician, &e.CreatedAt)
	if err != nil {
		return models.EmergencyRequest{}, err
	}
	return e, nil
}

func (s *pgEmergencies) List(ctx context.Context, f Filter) ([]models.EmergencyRequest, error) {
	query := `SELECT ` + emergencyColumns + ` FROM emergency_requests`
	var args []any
	var wheres []string
	if f.Status != "" {
		args = append(args, f.Status)
		wheres = append(wheres, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		wheres = append(wheres, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		wheres = append(wheres, fmt.Sprintf("(name ILIKE $%d OR type ILIKE $%d OR phone LIKE $%d)", len(args), len(args), len(args)))
	}
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY seq ASC"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.EmergencyRequest{}
	for rows.Next() {
		e, err := scanEmergency(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *pgEmergencies) Get(ctx context.Context, id string) (models.EmergencyRequest, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+emergencyColumns+` FROM emergency_requests WHERE id = $1`, id)
	e, err := scanEmergency(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.EmergencyRequest{}, ErrNotFound
	}
	return e, err
}

func (s *pgEmergencies) Create(ctx context.Context, e models.EmergencyRequest) (models.EmergencyRequest, error) {
	e.ID = newID()
	e.Status = models.EmergencyPending
	e.Priority = models.PriorityHigh
	e.AssignedTechnician = ""
	e.CreatedAt = time.Now().UTC()
	_, err := s.pool.Exec(ctx, `
		INSERT INTO emergency_requests (id, user_id, name, phone, address, area, type, description, status, priority, assigned_technician, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, e.ID, e.UserID, e.Name, e.Phone, e.Address, e.Area, e.Type, e.Description, e.Status, e.Priority, e.AssignedTechnician, e.CreatedAt)
	if err != nil {
		return models.EmergencyRequest{}, err
	}
	return e, nil
}

func (s *pgEmergencies) UpdateStatus(ctx context.Context, id, status, technician string) (models.EmergencyRequest, error) {
	query := `UPDATE emergency_requests SET status = $1 WHERE id = $2 RETURNING ` + emergencyColumns
	args := []any{status, id}
	if technician != "" {
		query = `UPDATE emergency_requests SET status = $1, assigned_technician = $2 WHERE id = $3 RETURNING ` + emergencyColumns
		args = []any{status, technician, id}
	}
	row := s.pool.QueryRow(ctx, query, args...)
	e, err := scanEmergency(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.EmergencyRequest{}, ErrNotFound
	}
	return e, err
}

func (s *pgEmergencies) Delete(ctx context.Context, id string) (models.EmergencyRequest, error) {
	row := s.pool.QueryRow(ctx, `DELETE FROM emergency_requests WHERE id = $1 RETURNING `+emergencyColumns, id)
	e, err := scanEmergency(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.EmergencyRequest{}, ErrNotFound
	}
	return e, err
}
