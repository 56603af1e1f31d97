package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mealbridge/mealbridge/internal/models"
	"github.com/mealbridge/mealbridge/internal/store"
	"github.com/mealbridge/mealbridge/internal/store/migrations"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

var _ = Describe("ProviderStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Insert and Get", func() {
		It("should round-trip a provider", func() {
			id, err := s.Provider().Insert(ctx, models.Provider{
				Name:    "Anna Kitchen",
				Type:    "Restaurant",
				Address: "12 Beach Rd",
				City:    "Chennai",
				Contact: "+91-44-000",
			})
			Expect(err).NotTo(HaveOccurred())

			p, err := s.Provider().Get(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Name).To(Equal("Anna Kitchen"))
			Expect(p.Type).To(Equal("Restaurant"))
			Expect(p.City).To(Equal("Chennai"))
			Expect(p.Contact).To(Equal("+91-44-000"))
		})

		// Given no provider with the requested ID
		// When we get it
		// Then a typed not-found error is returned
		It("should return a not-found error for a missing provider", func() {
			_, err := s.Provider().Get(ctx, 42)

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("ListRefs", func() {
		It("should order providers by name", func() {
			seedProvider(db, "Zaika", "Catering Service", "Mumbai")
			seedProvider(db, "Anna Kitchen", "Restaurant", "Chennai")

			refs, err := s.Provider().ListRefs(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(refs).To(HaveLen(2))
			Expect(refs[0].Name).To(Equal("Anna Kitchen"))
			Expect(refs[1].Name).To(Equal("Zaika"))
		})
	})

	Context("Facet values", func() {
		It("should list distinct cities and types ascending", func() {
			seedProvider(db, "A", "Restaurant", "Delhi")
			seedProvider(db, "B", "Supermarket", "Chennai")
			seedProvider(db, "C", "Restaurant", "Chennai")

			cities, err := s.Provider().Cities(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cities).To(Equal([]string{"Chennai", "Delhi"}))

			types, err := s.Provider().Types(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(types).To(Equal([]string{"Restaurant", "Supermarket"}))
		})
	})
})
