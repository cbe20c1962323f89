package ports

// PasswordHasher define a interface para hashing de senhas
type PasswordHasher interface {
	// Hash gera o digest salgado de uma senha em texto plano
	Hash(plain string) (string, error)
	// Verify compara senha e digest; digest malformado retorna false
	Verify(plain, digest string) bool
}

// TokenClaims contém a identidade carregada em um token assinado
type TokenClaims struct {
	UserID uint
	Email  string
	Role   string
}

// TokenProvider define a interface para emissão e validação de tokens
type TokenProvider interface {
	Generate(claims TokenClaims) (string, error)
	Validate(token string) (*TokenClaims, error)
}
