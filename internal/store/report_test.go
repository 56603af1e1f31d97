package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mealbridge/mealbridge/internal/store"
	"github.com/mealbridge/mealbridge/internal/store/migrations"
)

var _ = Describe("ReportStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB

		annaKitchen int64
		freshMart   int64
		shelterOne  int64
		shelterTwo  int64

		rice  int64
		bread int64
		curry int64
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)

		annaKitchen = seedProvider(db, "Anna Kitchen", "Restaurant", "Chennai")
		freshMart = seedProvider(db, "Fresh Mart", "Grocery Store", "Delhi")
		shelterOne = seedReceiver(db, "Hope Shelter", "Chennai")
		shelterTwo = seedReceiver(db, "Care Trust", "Delhi")

		rice = seedFood(db, "Rice", 10, "2026-09-03", annaKitchen, "Restaurant", "Chennai", "Vegetarian", "Lunch")
		bread = seedFood(db, "Bread", 5, "2026-09-01", freshMart, "Grocery Store", "Delhi", "Vegan", "Breakfast")
		curry = seedFood(db, "Chicken Curry", 3, "2026-09-02", annaKitchen, "Restaurant", "Chennai", "Non-Vegetarian", "Dinner")

		seedClaim(db, rice, shelterOne, "Completed")
		seedClaim(db, rice, shelterTwo, "Pending")
		seedClaim(db, bread, shelterOne, "Completed")
		seedClaim(db, curry, shelterOne, "Cancelled")
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Overview", func() {
		It("should count all four tables", func() {
			o, err := s.Report().Overview(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(o.Providers).To(Equal(2))
			Expect(o.Receivers).To(Equal(2))
			Expect(o.FoodListings).To(Equal(3))
			Expect(o.Claims).To(Equal(4))
		})
	})

	Context("CityParticipation", func() {
		It("should count providers and receivers per city", func() {
			rows, err := s.Report().CityParticipation(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].City).To(Equal("Chennai"))
			Expect(rows[0].Providers).To(Equal(1))
			Expect(rows[0].Receivers).To(Equal(1))
		})
	})

	Context("ProviderTypeContribution", func() {
		It("should count listings per provider-type snapshot", func() {
			rows, err := s.Report().ProviderTypeContribution(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].ProviderType).To(Equal("Restaurant"))
			Expect(rows[0].TotalFoodItems).To(Equal(2))
		})
	})

	Context("ProviderContacts", func() {
		It("should list providers for the given city", func() {
			rows, err := s.Report().ProviderContacts(ctx, "Chennai")

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Name).To(Equal("Anna Kitchen"))
		})

		// Given a city with zero providers
		// When we run the lookup
		// Then the result is empty without error
		It("should return an empty set for an unknown city", func() {
			rows, err := s.Report().ProviderContacts(ctx, "Nowhere")

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})

	Context("TopReceivers", func() {
		It("should order receivers by claim count", func() {
			rows, err := s.Report().TopReceivers(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].ReceiverID).To(Equal(shelterOne))
			Expect(rows[0].TotalClaims).To(Equal(3))
			Expect(rows[1].TotalClaims).To(Equal(1))
		})
	})

	Context("TotalQuantity", func() {
		It("should sum quantities across listings", func() {
			total, err := s.Report().TotalQuantity(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(18)))
		})

		It("should return zero with no listings", func() {
			_, err := db.Exec(`DELETE FROM Claims`)
			Expect(err).NotTo(HaveOccurred())
			_, err = db.Exec(`DELETE FROM Food_Listings`)
			Expect(err).NotTo(HaveOccurred())

			total, err := s.Report().TotalQuantity(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(BeZero())
		})
	})

	Context("TopCity", func() {
		It("should pick the city with the most listings", func() {
			row, err := s.Report().TopCity(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(row).NotTo(BeNil())
			Expect(row.City).To(Equal("Chennai"))
			Expect(row.TotalListings).To(Equal(2))
		})
	})

	Context("FoodTypeFrequency", func() {
		It("should count listings per food type", func() {
			rows, err := s.Report().FoodTypeFrequency(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
			total := 0
			for _, r := range rows {
				total += r.Count
			}
			Expect(total).To(Equal(3))
		})
	})

	Context("ClaimsPerFood", func() {
		It("should count claims per food item, most claimed first", func() {
			rows, err := s.Report().ClaimsPerFood(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
			Expect(rows[0].FoodID).To(Equal(rice))
			Expect(rows[0].TotalClaims).To(Equal(2))
		})
	})

	Context("TopProvider", func() {
		// Given claims in several statuses
		// When we rank providers
		// Then only completed claims count
		It("should count only completed claims", func() {
			row, err := s.Report().TopProvider(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(row).NotTo(BeNil())
			// Anna Kitchen: 1 completed (rice); Fresh Mart: 1 completed (bread).
			// Both tie at 1; cancelled and pending claims must not tip the count.
			Expect(row.SuccessfulClaims).To(Equal(1))
		})

		It("should return nil when no claim has completed", func() {
			_, err := db.Exec(`DELETE FROM Claims`)
			Expect(err).NotTo(HaveOccurred())

			row, err := s.Report().TopProvider(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(row).To(BeNil())
		})
	})

	Context("StatusDistribution", func() {
		// Given claims in several statuses
		// When we compute the distribution
		// Then the percentages sum to 100 within rounding tolerance
		It("should sum to 100 within rounding tolerance", func() {
			rows, err := s.Report().StatusDistribution(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))

			sum := 0.0
			for _, r := range rows {
				sum += r.Percentage
			}
			Expect(sum).To(BeNumerically("~", 100.0, 0.02))
		})
	})

	Context("AvgQuantityPerReceiver", func() {
		It("should round the approximate average to two decimals", func() {
			rows, err := s.Report().AvgQuantityPerReceiver(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			// Hope Shelter claimed rice (10), bread (5), curry (3): avg 6.
			for _, r := range rows {
				if r.ReceiverName == "Hope Shelter" {
					Expect(r.ApproxAvgQuantity).To(BeNumerically("~", 6.0, 0.001))
				}
			}
		})
	})

	Context("MealTypeClaims", func() {
		It("should count claims per meal type", func() {
			rows, err := s.Report().MealTypeClaims(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
			Expect(rows[0].MealType).To(Equal("Lunch"))
			Expect(rows[0].TotalClaims).To(Equal(2))
		})
	})

	Context("ProviderDonations", func() {
		It("should sum donated quantity per provider", func() {
			rows, err := s.Report().ProviderDonations(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0].ProviderID).To(Equal(annaKitchen))
			Expect(rows[0].TotalQuantity).To(Equal(13))
			Expect(rows[1].ProviderID).To(Equal(freshMart))
			Expect(rows[1].TotalQuantity).To(Equal(5))
		})
	})
})
