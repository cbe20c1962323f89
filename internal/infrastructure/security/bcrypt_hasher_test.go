package security_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/emala/emala-backend/internal/domain/ports"
	"github.com/emala/emala-backend/internal/infrastructure/security"
)

var _ = Describe("BcryptHasher", func() {
	var hasher ports.PasswordHasher

	BeforeEach(func() {
		// Custo mínimo para os testes não ficarem lentos
		hasher = security.NewBcryptHasher(bcrypt.MinCost)
	})

	Describe("Hash", func() {
		It("gera digests diferentes para a mesma senha (salt aleatório)", func() {
			d1, err := hasher.Hash("secret123")
			Expect(err).NotTo(HaveOccurred())

			d2, err := hasher.Hash("secret123")
			Expect(err).NotTo(HaveOccurred())

			Expect(d1).NotTo(Equal(d2))
		})

		It("nunca retorna a senha em texto plano", func() {
			digest, err := hasher.Hash("secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(digest).NotTo(ContainSubstring("secret123"))
		})
	})

	Describe("Verify", func() {
		It("aceita a senha original (round-trip)", func() {
			digest, err := hasher.Hash("secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(hasher.Verify("secret123", digest)).To(BeTrue())
		})

		It("rejeita uma senha diferente", func() {
			digest, err := hasher.Hash("secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(hasher.Verify("outra-senha", digest)).To(BeFalse())
		})

		It("retorna false para digest malformado ao invés de falhar", func() {
			Expect(hasher.Verify("secret123", "nao-e-um-digest-bcrypt")).To(BeFalse())
			Expect(hasher.Verify("secret123", "")).To(BeFalse())
		})
	})

	Describe("NewBcryptHasher", func() {
		It("usa o custo padrão quando o custo informado é inválido", func() {
			h := security.NewBcryptHasher(-1)
			digest, err := h.Hash("abc")
			Expect(err).NotTo(HaveOccurred())

			cost, err := bcrypt.Cost([]byte(digest))
			Expect(err).NotTo(HaveOccurred())
			Expect(cost).To(Equal(security.DefaultBcryptCost))
		})
	})
})
