package security

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/emala/emala-backend/internal/domain/ports"
)

// DefaultBcryptCost é o custo padrão do bcrypt (fator de trabalho 10)
const DefaultBcryptCost = 10

// BcryptHasher implementa ports.PasswordHasher usando bcrypt.
// O salt aleatório é embutido no próprio digest e a comparação do
// bcrypt é de tempo constante.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo informado (0 usa o padrão)
func NewBcryptHasher(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify retorna false para digest malformado ao invés de propagar erro
func (h *BcryptHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
