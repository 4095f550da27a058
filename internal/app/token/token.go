package token

import (
	"time"

	"backend/internal/app/config"

	"github.com/golang-jwt/jwt"
)

// Claims API-токена партнёра
type PartnerClaims struct {
	jwt.StandardClaims
	PartnerName string `json:"partner_name"`
}

// IssuePartnerToken выпускает api_token для нового партнёра, если токен не
// передан в запросе. Токен только выпускается и сохраняется в карточке —
// никакой проверки на нашей стороне нет, её выполняют внешние сервисы
func IssuePartnerToken(cfg *config.JWTConfig, partnerName string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(cfg.SigningMethod, PartnerClaims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt: now.Unix(),
			Issuer:   "partner-console",
		},
		PartnerName: partnerName,
	})
	return t.SignedString([]byte(cfg.Token))
}
