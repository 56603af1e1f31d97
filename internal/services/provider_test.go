package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mealbridge/mealbridge/internal/services"
	"github.com/mealbridge/mealbridge/internal/store"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

var _ = Describe("ProviderService", func() {
	var (
		ctx context.Context
		st  *store.Store
		db  *sql.DB
		srv *services.ProviderService
	)

	BeforeEach(func() {
		ctx = context.Background()
		st, db = newTestStore(ctx)
		srv = services.NewProviderService(st)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Add", func() {
		It("should insert a provider with the required fields", func() {
			id, err := srv.Add(ctx, services.AddProviderParams{
				Name: "Anna Kitchen",
				Type: "Restaurant",
				City: "Chennai",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(BeNumerically(">", 0))
			Expect(countRows(db, "Providers")).To(Equal(1))
		})

		// Given an empty name
		// When we add a provider
		// Then validation fails and nothing is written
		It("should reject an empty name and write nothing", func() {
			_, err := srv.Add(ctx, services.AddProviderParams{
				Type: "Restaurant",
				City: "Chennai",
			})

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(countRows(db, "Providers")).To(BeZero())
		})

		It("should reject a whitespace-only city", func() {
			_, err := srv.Add(ctx, services.AddProviderParams{
				Name: "Anna Kitchen",
				Type: "Restaurant",
				City: "   ",
			})

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
			Expect(countRows(db, "Providers")).To(BeZero())
		})

		It("should accept missing address and contact", func() {
			_, err := srv.Add(ctx, services.AddProviderParams{
				Name: "Fresh Mart",
				Type: "Grocery Store",
				City: "Delhi",
			})

			Expect(err).NotTo(HaveOccurred())
		})
	})
})
