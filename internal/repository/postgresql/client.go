package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carelink/homecare-backend-go/internal/domain/client"
	"github.com/carelink/homecare-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.Repository {
	return &clientRepositoryImpl{db: db}
}

// Create implements client.Repository.
func (r *clientRepositoryImpl) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO clients (id, first_name, last_name, address, phone, contracted_hours, is_active)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, true)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.FirstName, c.LastName, c.Address, c.Phone, c.ContractedHoursPerMth,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}
	c.IsActive = true

	return c, nil
}

// GetByID implements client.Repository.
func (r *clientRepositoryImpl) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, address, phone, contracted_hours, is_active, created_at, updated_at
		FROM clients
		WHERE id = $1 AND deleted_at IS NULL
	`

	var c client.Client
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.Phone,
		&c.ContractedHoursPerMth, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

// List implements client.Repository.
func (r *clientRepositoryImpl) List(ctx context.Context, filter client.ClientFilter) ([]client.Client, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil {
		conditions = append(conditions, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM clients WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, address, phone, contracted_hours, is_active, created_at, updated_at
		FROM clients
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, where, filter.SortBy, strings.ToUpper(filter.SortOrder), argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []client.Client
	for rows.Next() {
		var c client.Client
		err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.Phone,
			&c.ContractedHoursPerMth, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, total, nil
}

// Update implements client.Repository.
func (r *clientRepositoryImpl) Update(ctx context.Context, req client.UpdateClientRequest) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	updates := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.FirstName != nil {
		updates = append(updates, fmt.Sprintf("first_name = $%d", argIdx))
		args = append(args, *req.FirstName)
		argIdx++
	}
	if req.LastName != nil {
		updates = append(updates, fmt.Sprintf("last_name = $%d", argIdx))
		args = append(args, *req.LastName)
		argIdx++
	}
	if req.Address != nil {
		updates = append(updates, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}
	if req.Phone != nil {
		updates = append(updates, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.ContractedHours != nil {
		updates = append(updates, fmt.Sprintf("contracted_hours = $%d", argIdx))
		args = append(args, decimal.NewFromFloat(*req.ContractedHours).Round(2))
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	args = append(args, req.ID)

	query := fmt.Sprintf(`
		UPDATE clients SET %s
		WHERE id = $%d AND deleted_at IS NULL
		RETURNING id, first_name, last_name, address, phone, contracted_hours, is_active, created_at, updated_at
	`, strings.Join(updates, ", "), argIdx)

	var c client.Client
	err := q.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Address, &c.Phone,
		&c.ContractedHoursPerMth, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.Client{}, client.ErrClientNotFound
		}
		return client.Client{}, fmt.Errorf("failed to update client: %w", err)
	}

	return c, nil
}

// SoftDelete implements client.Repository.
func (r *clientRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE clients SET deleted_at = NOW(), is_active = false, updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return client.ErrClientNotFound
	}

	return nil
}
