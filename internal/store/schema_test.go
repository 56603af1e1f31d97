package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mealbridge/mealbridge/internal/store"
	"github.com/mealbridge/mealbridge/internal/store/migrations"
)

var _ = Describe("Schema", func() {
	var (
		ctx context.Context
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	// Receivers and Claims are loaded from the external dataset, which
	// carries Receiver.Type and Claim.Timestamp; the schema must accept
	// both even though this service never reads them.
	It("should accept externally loaded receiver rows with a type", func() {
		_, err := db.Exec(
			`INSERT INTO Receivers (Name, Type, City) VALUES (?, ?, ?)`,
			"Hope Shelter", "NGO", "Chennai")

		Expect(err).NotTo(HaveOccurred())
	})

	It("should accept externally loaded claim rows with a timestamp", func() {
		provID := seedProvider(db, "Anna Kitchen", "Restaurant", "Chennai")
		recvID := seedReceiver(db, "Hope Shelter", "Chennai")
		foodID := seedFood(db, "Rice", 10, "2026-09-03", provID, "Restaurant", "Chennai", "Vegetarian", "Lunch")

		_, err := db.Exec(
			`INSERT INTO Claims (Food_ID, Receiver_ID, Status, Timestamp) VALUES (?, ?, ?, ?)`,
			foodID, recvID, "Pending", "2026-08-30 12:00:00")

		Expect(err).NotTo(HaveOccurred())
	})
})
