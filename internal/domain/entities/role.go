package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleManager Role = "manager"
)

// DefaultRole é o papel atribuído quando nenhum é informado
const DefaultRole = RoleUser

// IsValid verifica se o role é um dos valores aceitos
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleManager:
		return true
	}
	return false
}

// ParseRole converte uma string em Role, aplicando o default quando vazia
func ParseRole(s string) (Role, bool) {
	if s == "" {
		return DefaultRole, true
	}
	r := Role(s)
	return r, r.IsValid()
}
