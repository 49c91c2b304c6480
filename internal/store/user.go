// File: internal/store/user.go
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/model"
)

const userColumns = `user_id, email, password, first_name, last_name, isactive`

func GetUserByID(ctx context.Context, db database.Querier, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE user_id = $1`,
		userID,
	)
	u := &model.User{}
	if err := scanUser(row.Scan, u); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.Querier, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := scanUser(row.Scan, u); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.Querier, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (email, password, first_name, last_name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING user_id, isactive`,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
	)
	if err := row.Scan(&u.ID, &u.IsActive); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// ListUsers 依分頁、搜尋與排序條件列出使用者
// sort 僅接受 ASC 或 DESC，其他值一律視為 ASC
func ListUsers(ctx context.Context, db database.Querier, limit, offset int, search, sort string) ([]model.User, error) {
	direction := "ASC"
	if sort == "DESC" {
		direction = "DESC"
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := db.Query(ctx,
		`SELECT `+userColumns+`
		 FROM users
		 WHERE ($1 = '' OR email ILIKE '%' || $1 || '%')
		 ORDER BY user_id `+direction+`
		 LIMIT $2 OFFSET $3`,
		search, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := scanUser(rows.Scan, &u); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func UpdateUser(ctx context.Context, db database.Querier, u *model.User) error {
	_, err := db.Exec(ctx,
		`UPDATE users
		 SET email = $1, password = $2, first_name = $3, last_name = $4, isactive = $5
		 WHERE user_id = $6`,
		u.Email,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.IsActive,
		u.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateUser: %w", err)
	}
	return nil
}

func DeleteUser(ctx context.Context, db database.Querier, userID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM users WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("DeleteUser: %w", err)
	}
	return nil
}

// IsUniqueViolation 判斷錯誤是否為唯一性約束衝突 (SQLSTATE 23505)
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanUser(scan func(dest ...any) error, u *model.User) error {
	return scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.IsActive,
	)
}
