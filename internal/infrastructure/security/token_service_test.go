package security_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/emala/emala-backend/internal/domain/ports"
	"github.com/emala/emala-backend/internal/infrastructure/security"
)

var _ = Describe("TokenService", func() {
	var service *security.TokenService

	claims := ports.TokenClaims{
		UserID: 42,
		Email:  "jane@example.com",
		Role:   "manager",
	}

	BeforeEach(func() {
		service = security.NewTokenService("test-secret", time.Hour)
	})

	It("faz round-trip das claims (gerar e validar)", func() {
		token, err := service.Generate(claims)
		Expect(err).NotTo(HaveOccurred())
		Expect(token).NotTo(BeEmpty())

		got, err := service.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.UserID).To(Equal(uint(42)))
		Expect(got.Email).To(Equal("jane@example.com"))
		Expect(got.Role).To(Equal("manager"))
	})

	It("rejeita token expirado", func() {
		expired := security.NewTokenService("test-secret", -time.Minute)
		token, err := expired.Generate(claims)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(HaveOccurred())
	})

	It("rejeita token assinado com outro segredo", func() {
		other := security.NewTokenService("outro-segredo", time.Hour)
		token, err := other.Generate(claims)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(HaveOccurred())
	})

	It("rejeita lixo que não é um JWT", func() {
		_, err := service.Validate("admin-demo-token")
		Expect(err).To(HaveOccurred())

		_, err = service.Validate("")
		Expect(err).To(HaveOccurred())
	})
})
