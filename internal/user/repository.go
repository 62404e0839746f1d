package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles profile data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new profile repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new profile into the database
func (r *Repository) Create(ctx context.Context, req *CreateProfileRequest) (*Profile, error) {
	query := `
		INSERT INTO profiles (id, full_name, email, avatar_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, full_name, email, avatar_url, created_at
	`

	profile := &Profile{}
	err := r.db.QueryRowContext(ctx, query, uuid.New().String(), req.FullName, req.Email, req.AvatarURL).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.AvatarURL,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// GetByID retrieves a profile by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Profile, error) {
	query := `
		SELECT id, full_name, email, avatar_url, created_at
		FROM profiles
		WHERE id = $1
	`

	profile := &Profile{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.AvatarURL,
		&profile.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// GetByEmail retrieves a profile by its email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Profile, error) {
	query := `
		SELECT id, full_name, email, avatar_url, created_at
		FROM profiles
		WHERE email = $1
	`

	profile := &Profile{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.AvatarURL,
		&profile.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile by email: %w", err)
	}

	return profile, nil
}

// List retrieves profiles with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Profile, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	query := `
		SELECT id, full_name, email, avatar_url, created_at
		FROM profiles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		profile := &Profile{}
		if err := rows.Scan(
			&profile.ID,
			&profile.FullName,
			&profile.Email,
			&profile.AvatarURL,
			&profile.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	return profiles, total, nil
}

// Update modifies an existing profile
func (r *Repository) Update(ctx context.Context, id string, req *UpdateProfileRequest) (*Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = COALESCE($2, full_name),
		    avatar_url = COALESCE($3, avatar_url)
		WHERE id = $1
		RETURNING id, full_name, email, avatar_url, created_at
	`

	profile := &Profile{}
	err := r.db.QueryRowContext(ctx, query, id, req.FullName, req.AvatarURL).Scan(
		&profile.ID,
		&profile.FullName,
		&profile.Email,
		&profile.AvatarURL,
		&profile.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return profile, nil
}
