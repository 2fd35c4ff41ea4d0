package authorization

import (
	"errors"
	"time"

	"github.com/cristalhq/jwt/v4"
)

const tokenDuration = time.Hour

var errTokenExpired = errors.New("token has expired")

// GenerateToken signs the supplied claims verbatim with HS256 and stamps a
// one hour expiry on top. The payload is not validated; whatever identity
// the client claims is what gets signed.
func (auth *Authorizer) GenerateToken(claims map[string]interface{}) (string, error) {
	builder := jwt.NewBuilder(auth.signer)

	signed := make(map[string]interface{}, len(claims)+1)
	for key, value := range claims {
		signed[key] = value
	}
	signed["exp"] = time.Now().Add(tokenDuration).Unix()

	token, err := builder.Build(signed)
	if err != nil {
		return "", err
	}

	return token.String(), nil
}

func (auth *Authorizer) parseClaims(tokenString string) (map[string]interface{}, error) {
	var claims map[string]interface{}
	err := jwt.ParseClaims([]byte(tokenString), auth.verifier, &claims)
	if err != nil {
		return nil, err
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errTokenExpired
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return nil, errTokenExpired
	}

	return claims, nil
}
