package entities

import (
	"strings"
	"testing"

	"github.com/emala/emala-backend/internal/domain/valueobjects"
)

func validUser(t *testing.T) *User {
	t.Helper()
	email, err := valueobjects.NewEmail("jane@example.com")
	if err != nil {
		t.Fatalf("email de teste inválido: %v", err)
	}
	return &User{
		Name:         "Jane Doe",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         RoleUser,
	}
}

func TestUser_Validate(t *testing.T) {
	t.Run("usuário válido passa", func(t *testing.T) {
		if err := validUser(t).Validate(); err != nil {
			t.Errorf("esperava sucesso, obteve: %v", err)
		}
	})

	t.Run("email vazio falha", func(t *testing.T) {
		user := validUser(t)
		user.Email = valueobjects.Email{}
		if err := user.Validate(); err == nil {
			t.Error("esperava erro para email vazio")
		}
	})

	t.Run("nome vazio falha", func(t *testing.T) {
		user := validUser(t)
		user.Name = ""
		if err := user.Validate(); err == nil {
			t.Error("esperava erro para nome vazio")
		}
	})

	t.Run("nome com um caractere falha", func(t *testing.T) {
		user := validUser(t)
		user.Name = "J"
		if err := user.Validate(); err == nil {
			t.Error("esperava erro para nome curto demais")
		}
	})

	t.Run("nome com 256 caracteres falha", func(t *testing.T) {
		user := validUser(t)
		user.Name = strings.Repeat("a", 256)
		if err := user.Validate(); err == nil {
			t.Error("esperava erro para nome longo demais")
		}
	})

	t.Run("role desconhecido falha", func(t *testing.T) {
		user := validUser(t)
		user.Role = Role("superuser")
		if err := user.Validate(); err == nil {
			t.Error("esperava erro para role inválido")
		}
	})
}

func TestUser_IsAdmin(t *testing.T) {
	user := validUser(t)

	if user.IsAdmin() {
		t.Error("role user não é admin")
	}

	user.Role = RoleAdmin
	if !user.IsAdmin() {
		t.Error("role admin deveria ser admin")
	}
}

func TestParseRole(t *testing.T) {
	t.Run("string vazia vira o default", func(t *testing.T) {
		role, ok := ParseRole("")
		if !ok || role != DefaultRole {
			t.Errorf("esperava (%q, true), obteve (%q, %v)", DefaultRole, role, ok)
		}
	})

	t.Run("valores do enum são aceitos", func(t *testing.T) {
		for _, s := range []string{"admin", "user", "manager"} {
			role, ok := ParseRole(s)
			if !ok || string(role) != s {
				t.Errorf("esperava (%q, true), obteve (%q, %v)", s, role, ok)
			}
		}
	})

	t.Run("valor fora do enum é rejeitado", func(t *testing.T) {
		if _, ok := ParseRole("superuser"); ok {
			t.Error("esperava rejeição de role desconhecido")
		}
	})
}
