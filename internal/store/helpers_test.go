package store_test

import (
	"database/sql"

	. "github.com/onsi/gomega"
)

// Test fixtures insert rows directly; Receivers and Claims have no write
// surface in the store itself.

func seedProvider(db *sql.DB, name, ptype, city string) int64 {
	res, err := db.Exec(
		`INSERT INTO Providers (Name, Type, Address, City, Contact) VALUES (?, ?, ?, ?, ?)`,
		name, ptype, "", city, "")
	Expect(err).NotTo(HaveOccurred())
	id, err := res.LastInsertId()
	Expect(err).NotTo(HaveOccurred())
	return id
}

func seedReceiver(db *sql.DB, name, city string) int64 {
	res, err := db.Exec(`INSERT INTO Receivers (Name, City) VALUES (?, ?)`, name, city)
	Expect(err).NotTo(HaveOccurred())
	id, err := res.LastInsertId()
	Expect(err).NotTo(HaveOccurred())
	return id
}

func seedFood(db *sql.DB, name string, qty int, expiry string, providerID int64, providerType, location, foodType, mealType string) int64 {
	res, err := db.Exec(
		`INSERT INTO Food_Listings
			(Food_Name, Quantity, Expiry_Date, Provider_ID, Provider_Type, Location, Food_Type, Meal_Type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		name, qty, expiry, providerID, providerType, location, foodType, mealType)
	Expect(err).NotTo(HaveOccurred())
	id, err := res.LastInsertId()
	Expect(err).NotTo(HaveOccurred())
	return id
}

func seedClaim(db *sql.DB, foodID, receiverID int64, status string) int64 {
	res, err := db.Exec(
		`INSERT INTO Claims (Food_ID, Receiver_ID, Status) VALUES (?, ?, ?)`,
		foodID, receiverID, status)
	Expect(err).NotTo(HaveOccurred())
	id, err := res.LastInsertId()
	Expect(err).NotTo(HaveOccurred())
	return id
}

func countRows(db *sql.DB, table string) int {
	var n int
	Expect(db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n)).To(Succeed())
	return n
}
