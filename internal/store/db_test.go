package store_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mealbridge/mealbridge/internal/store"
)

var _ = Describe("NewDB", func() {
	// Given a file-backed database
	// When we open it
	// Then the connection pragmas actually took effect
	It("should apply WAL, busy_timeout and foreign_keys to a file database", func() {
		path := filepath.Join(GinkgoT().TempDir(), "mealbridge.db")

		db, err := store.NewDB(path)
		Expect(err).NotTo(HaveOccurred())
		defer db.Close()

		var journalMode string
		Expect(db.QueryRow(`PRAGMA journal_mode`).Scan(&journalMode)).To(Succeed())
		Expect(journalMode).To(Equal("wal"))

		var busyTimeout int
		Expect(db.QueryRow(`PRAGMA busy_timeout`).Scan(&busyTimeout)).To(Succeed())
		Expect(busyTimeout).To(Equal(5000))

		var foreignKeys int
		Expect(db.QueryRow(`PRAGMA foreign_keys`).Scan(&foreignKeys)).To(Succeed())
		Expect(foreignKeys).To(Equal(1))
	})
})
