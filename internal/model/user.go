// File: internal/model/user.go
package model

// User 對應 users 資料表的一筆紀錄
// PasswordHash 僅存 bcrypt 哈希，永不序列化輸出
type User struct {
	ID           int    `db:"user_id" json:"user_id"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password" json:"-"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	IsActive     bool   `db:"isactive" json:"isactive"`
}
