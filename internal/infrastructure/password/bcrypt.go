package password

import (
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher хэширует пароли через bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher создаёт хэшер. Нулевая стоимость заменяется на bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (b *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return string(hash), nil
}

func (b *BcryptHasher) Compare(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
