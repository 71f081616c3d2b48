package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"cusco-tours/internal/domain/user"
	"cusco-tours/internal/infra"
	"cusco-tours/internal/pkg/pgconv"
)

type UserRepository struct {
	db infra.DBTX
}

func NewUserRepository(db infra.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, phone, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		u.ID(),
		u.Name(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Phone(),
		u.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, infra.ClassifyPgErr(err))
	}

	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `
		SELECT id, name, email, password_hash, phone, last_login, is_active, created_at, updated_at
		FROM users
		WHERE email = $1`

	var (
		id                  uuid.UUID
		name, emailStr      string
		passwordHash, phone string
		lastLogin           pgtype.Timestamptz
		isActive            bool
		createdAt, updated  pgtype.Timestamptz
	)

	err := r.db.QueryRow(ctx, query, email).Scan(
		&id, &name, &emailStr, &passwordHash, &phone, &lastLogin, &isActive, &createdAt, &updated,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find user by email", err, infra.ClassifyPgErr(err))
	}

	emailVO, err := user.NewEmail(emailStr)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}

	return user.ReconstructUser(
		id,
		name,
		emailVO,
		passwordHash,
		phone,
		pgconv.TimePtrFromTimestamptz(lastLogin),
		isActive,
		createdAt.Time,
		updated.Time,
	), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err, infra.ClassifyPgErr(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	return nil
}
