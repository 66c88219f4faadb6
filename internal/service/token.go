// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 定義 JWT 負載內容，Subject 為管理員帳號
type Claims struct {
	AdminID int `json:"admin_id"`
	jwt.RegisteredClaims
}

// Tokens 負責簽發與驗證 access token，建立後不可變
type Tokens struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	parser *jwt.Parser

	// Now 預設為 time.Now，測試可替換
	Now func() time.Time
}

// NewTokens 只接受 HMAC 系列演算法 (HS256 / HS384 / HS512)
func NewTokens(secret, algorithm string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}

	t := &Tokens{secret: []byte(secret), method: method, ttl: ttl, Now: time.Now}
	t.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return t.Now() }),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
	)
	return t, nil
}

// TTL 回傳 token 有效期間
func (t *Tokens) TTL() time.Duration { return t.ttl }

// Issue 簽發 token，回傳序列化字串與到期時間。
// iat 取整到秒，exp 恰好是 iat + ttl。
func (t *Tokens) Issue(subject string, adminID int) (string, time.Time, error) {
	now := t.Now().UTC().Truncate(time.Second)
	claims := Claims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims.ExpiresAt.Time, nil
}

// Verify 檢查簽章與到期時間 (now < exp)。
// 任何失敗都只回傳 false，不區分過期或偽造。
func (t *Tokens) Verify(token string) (*Claims, bool) {
	claims := &Claims{}
	parsed, err := t.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, false
	}
	return claims, true
}
