package valueobjects

import "testing"

func TestNewEmail(t *testing.T) {
	t.Run("email válido é aceito", func(t *testing.T) {
		email, err := NewEmail("jane@example.com")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve: %v", err)
		}
		if email.String() != "jane@example.com" {
			t.Errorf("esperava jane@example.com, obteve %q", email.String())
		}
	})

	t.Run("normaliza maiúsculas e espaços", func(t *testing.T) {
		email, err := NewEmail("  Jane@Example.COM  ")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve: %v", err)
		}
		if email.String() != "jane@example.com" {
			t.Errorf("esperava jane@example.com, obteve %q", email.String())
		}
	})

	t.Run("formatos inválidos são rejeitados", func(t *testing.T) {
		invalid := []string{
			"",
			"not-an-email",
			"@example.com",
			"jane@",
			"jane@example",
			"jane example@example.com",
		}
		for _, s := range invalid {
			if _, err := NewEmail(s); err == nil {
				t.Errorf("esperava erro para %q", s)
			}
		}
	})
}

func TestEmail_Equals(t *testing.T) {
	a, _ := NewEmail("jane@example.com")
	b, _ := NewEmail("JANE@EXAMPLE.COM")
	c, _ := NewEmail("john@example.com")

	if !a.Equals(b) {
		t.Error("emails normalizados iguais deveriam ser iguais")
	}
	if a.Equals(c) {
		t.Error("emails diferentes não deveriam ser iguais")
	}
}
