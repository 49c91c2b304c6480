// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"rest-boilerplate/internal/config"
	"rest-boilerplate/internal/database"
	"rest-boilerplate/internal/dto"
	"rest-boilerplate/internal/logging"
	"rest-boilerplate/internal/model"
	"rest-boilerplate/internal/store"
)

// Login 驗證帳密並發行存取令牌
// 查無使用者回傳 ErrNotFound，密碼不符回傳 ErrInvalidCredential，
// 兩者皆不會呼叫令牌發行
func Login(ctx context.Context, db database.DB, cfg *config.Config, email, password string) (string, error) {
	user, err := store.GetUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("Login: %w", err)
	}

	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredential
	}

	token, err := IssueToken(user, cfg.SecretKey, cfg.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("Login: %w", err)
	}
	return token, nil
}

// Signup 建立新使用者
// 檢查與寫入在同一交易內完成；Email 已存在回傳 ErrConflict
// 寫入期間的任何失敗（含重複 Email 的競態）記錄後回傳 ErrInternal，
// 儲存層錯誤不會原樣傳給客戶端
func Signup(ctx context.Context, db database.DB, cfg *config.Config, log logging.Logger, req dto.SignupRequest) error {
	err := database.WithTx(ctx, db, cfg.AcquireTimeout, func(tx pgx.Tx) error {
		_, err := store.GetUserByEmail(ctx, tx, req.Email)
		if err == nil {
			return ErrConflict
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		hash, err := HashPassword(req.Password, 0)
		if err != nil {
			return err
		}

		_, err = store.CreateUser(ctx, tx, &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			FirstName:    req.FirstName,
			LastName:     req.LastName,
		})
		return err
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConflict) {
		return ErrConflict
	}
	if store.IsUniqueViolation(err) {
		// 兩個 signup 競態同一 Email 時，落敗方在此觀察到唯一性衝突
		log.Warn(ctx, "duplicate email lost insert race", "email", req.Email)
	}
	log.Error(ctx, "Error creating new user", "error", err.Error())
	return ErrInternal
}
