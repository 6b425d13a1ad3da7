package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bumblebee-api/internal/model"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// List returns every user account.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	defer observe(time.Now(), "select", "Users")

	query := `
        SELECT UserID, FirstName, LastName, Email, Role
        FROM Users
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.UserID, &u.FirstName, &u.LastName, &u.Email, &u.Role); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// FindByID returns a user by id.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	defer observe(time.Now(), "select", "Users")

	query := `
        SELECT UserID, FirstName, LastName, Email, Role
        FROM Users
        WHERE UserID = $1
    `
	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.UserID, &u.FirstName, &u.LastName, &u.Email, &u.Role,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// FindByEmail returns a user with the stored password, for login checks.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	defer observe(time.Now(), "select", "Users")

	query := `
        SELECT UserID, FirstName, LastName, Email, Password, Role
        FROM Users
        WHERE Email = $1
    `
	var u model.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.UserID, &u.FirstName, &u.LastName, &u.Email, &u.Password, &u.Role,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// Create inserts a new user and fills in the generated id.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	defer observe(time.Now(), "insert", "Users")

	query := `
        INSERT INTO Users (FirstName, LastName, Email, Password, Role)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING UserID
    `
	return r.db.QueryRow(ctx, query,
		u.FirstName, u.LastName, u.Email, u.Password, u.Role,
	).Scan(&u.UserID)
}

// Update rewrites the editable fields of a user.
func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	defer observe(time.Now(), "update", "Users")

	query := `
        UPDATE Users
        SET FirstName = $2, LastName = $3, Email = $4, Role = $5
        WHERE UserID = $1
    `
	_, err := r.db.Exec(ctx, query, u.UserID, u.FirstName, u.LastName, u.Email, u.Role)
	return err
}

// Delete removes a user. Deleting an id that does not exist is not an error.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	defer observe(time.Now(), "delete", "Users")

	query := `
        DELETE FROM Users
        WHERE UserID = $1
    `
	_, err := r.db.Exec(ctx, query, id)
	return err
}
