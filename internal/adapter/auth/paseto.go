package auth

import (
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/MikeRez0/lavanderia/internal/adapter/config"
	"github.com/MikeRez0/lavanderia/internal/core/domain"
	"github.com/MikeRez0/lavanderia/internal/core/port"
)

const payloadClaim = "operator"

// PasetoToken issues v4 local tokens for shop operators.
type PasetoToken struct {
	parser paseto.Parser
	key    paseto.V4SymmetricKey
	ttl    time.Duration
}

func New(conf *config.Auth) (port.TokenService, error) {
	key := paseto.NewV4SymmetricKey()
	if conf.SymmetricKey != "" {
		var err error
		key, err = paseto.V4SymmetricKeyFromHex(conf.SymmetricKey)
		if err != nil {
			return nil, fmt.Errorf("invalid token key: %w", err)
		}
	}
	if conf.TokenTTL <= 0 {
		return nil, domain.ErrTokenDuration
	}

	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())

	return &PasetoToken{
		parser: parser,
		key:    key,
		ttl:    conf.TokenTTL,
	}, nil
}

func (p *PasetoToken) CreateToken(user *domain.User) (string, error) {
	token := paseto.NewToken()
	now := time.Now()
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(p.ttl))

	payload := port.TokenPayload{UserID: user.ID, Login: user.Login}
	err := token.Set(payloadClaim, payload)
	if err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(p.key, nil), nil
}

func (p *PasetoToken) VerifyToken(token string) (*port.TokenPayload, error) {
	parsedToken, err := p.parser.ParseV4Local(p.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.TokenPayload{}
	err = parsedToken.Get(payloadClaim, &payload)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}
