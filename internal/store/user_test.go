package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"rest-boilerplate/internal/model"
)

func userRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"user_id", "email", "password", "first_name", "last_name", "isactive"})
}

func TestGetUserByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM users WHERE email`).
		WithArgs("alice@example.com").
		WillReturnRows(userRows().AddRow(1, "alice@example.com", "hash", "Alice", "Chen", true))

	u, err := GetUserByEmail(context.Background(), mock, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, 1, u.ID)
	require.Equal(t, "alice@example.com", u.Email)
	require.Equal(t, "hash", u.PasswordHash)
	require.True(t, u.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM users WHERE email`).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	_, err = GetUserByEmail(context.Background(), mock, "ghost@example.com")
	require.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestGetUserByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM users WHERE user_id`).
		WithArgs(7).
		WillReturnRows(userRows().AddRow(7, "alice@example.com", "hash", "Alice", "Chen", true))

	u, err := GetUserByID(context.Background(), mock, 7)
	require.NoError(t, err)
	require.Equal(t, 7, u.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice@example.com", "hash", "Alice", "Chen").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "isactive"}).AddRow(42, true))

	u := &model.User{Email: "alice@example.com", PasswordHash: "hash", FirstName: "Alice", LastName: "Chen"}
	created, err := CreateUser(context.Background(), mock, u)
	require.NoError(t, err)
	require.Equal(t, 42, created.ID)
	require.True(t, created.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`FROM users`).
		WithArgs("ali", 10, 0).
		WillReturnRows(userRows().
			AddRow(1, "alice@example.com", "h1", "Alice", "Chen", true).
			AddRow(2, "alina@example.com", "h2", "Alina", "Wu", false))

	list, err := ListUsers(context.Background(), mock, 10, 0, "ali", "ASC")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "alice@example.com", list[0].Email)
	require.False(t, list[1].IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListUsersDefaults(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	// limit <= 0 與 offset < 0 會套用預設值
	mock.ExpectQuery(`FROM users`).
		WithArgs("", 50, 0).
		WillReturnRows(userRows())

	list, err := ListUsers(context.Background(), mock, -1, -5, "", "bogus")
	require.NoError(t, err)
	require.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE users`).
		WithArgs("alice@example.com", "hash", "Alice", "Chen", true, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	u := &model.User{ID: 1, Email: "alice@example.com", PasswordHash: "hash", FirstName: "Alice", LastName: "Chen", IsActive: true}
	require.NoError(t, UpdateUser(context.Background(), mock, u))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, DeleteUser(context.Background(), mock, 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsUniqueViolation(errors.New("other")))
	require.False(t, IsUniqueViolation(nil))
}
