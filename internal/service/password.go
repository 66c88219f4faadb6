// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes 是 bcrypt 可處理的明文長度上限
const MaxPasswordBytes = 72

// 以下變數供測試替換
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串；每次呼叫的 salt 都不同
func HashPassword(password string, cost int) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// VerifyPassword 比對明文與哈希，哈希格式錯誤時回傳 false
func VerifyPassword(password, hash string) bool {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
