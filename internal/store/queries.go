package store

// Provider queries
const (
	queryInsertProvider = `
		INSERT INTO Providers (Name, Type, Address, City, Contact)
		VALUES (?, ?, ?, ?, ?)`

	queryGetProvider = `
		SELECT Provider_ID, Name, Type, Address, City, Contact
		FROM Providers WHERE Provider_ID = ?`

	queryListProviderRefs = `
		SELECT Provider_ID, Name, Type
		FROM Providers ORDER BY Name`

	queryProviderCities = `SELECT DISTINCT City FROM Providers ORDER BY City`
	queryProviderTypes  = `SELECT DISTINCT Type FROM Providers ORDER BY Type`
)

// Food listing queries
const (
	queryInsertFood = `
		INSERT INTO Food_Listings
			(Food_Name, Quantity, Expiry_Date, Provider_ID, Provider_Type, Location, Food_Type, Meal_Type)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	queryUpdateFoodQuantity = `UPDATE Food_Listings SET Quantity = ? WHERE Food_ID = ?`

	queryDeleteFood = `DELETE FROM Food_Listings WHERE Food_ID = ?`

	queryFoodTypes = `SELECT DISTINCT Food_Type FROM Food_Listings ORDER BY Food_Type`
	queryMealTypes = `SELECT DISTINCT Meal_Type FROM Food_Listings ORDER BY Meal_Type`
)

// Overview counts
const (
	queryOverview = `
		SELECT
			(SELECT COUNT(*) FROM Providers) AS providers,
			(SELECT COUNT(*) FROM Receivers) AS receivers,
			(SELECT COUNT(*) FROM Food_Listings) AS food_items,
			(SELECT COUNT(*) FROM Claims) AS claims`
)

// Canned report queries. Column aliases are part of the report contract.
const (
	queryCityParticipation = `
		SELECT P.City,
		       COUNT(DISTINCT P.Provider_ID) AS Providers,
		       COUNT(DISTINCT R.Receiver_ID) AS Receivers
		FROM Providers P
		LEFT JOIN Receivers R ON P.City = R.City
		GROUP BY P.City
		ORDER BY P.City`

	queryProviderTypeContribution = `
		SELECT Provider_Type, COUNT(Food_ID) AS Total_Food_Items
		FROM Food_Listings
		GROUP BY Provider_Type
		ORDER BY Total_Food_Items DESC`

	queryProviderContacts = `
		SELECT Name, Type, City, Contact
		FROM Providers
		WHERE City = ?`

	queryTopReceivers = `
		SELECT R.Receiver_ID, R.Name AS Receiver_Name, COUNT(C.Claim_ID) AS Total_Claims
		FROM Receivers R
		JOIN Claims C ON R.Receiver_ID = C.Receiver_ID
		GROUP BY R.Receiver_ID, R.Name
		ORDER BY Total_Claims DESC
		LIMIT 10`

	queryTotalQuantity = `
		SELECT SUM(Quantity) AS Total_Food_Quantity
		FROM Food_Listings`

	queryTopCity = `
		SELECT P.City, COUNT(F.Food_ID) AS Total_Listings
		FROM Food_Listings F
		JOIN Providers P ON F.Provider_ID = P.Provider_ID
		GROUP BY P.City
		ORDER BY Total_Listings DESC
		LIMIT 1`

	queryFoodTypeFrequency = `
		SELECT Food_Type, COUNT(*) AS Count
		FROM Food_Listings
		GROUP BY Food_Type
		ORDER BY Count DESC`

	queryClaimsPerFood = `
		SELECT F.Food_ID, F.Food_Name, COUNT(C.Claim_ID) AS Total_Claims
		FROM Claims C
		JOIN Food_Listings F ON C.Food_ID = F.Food_ID
		GROUP BY F.Food_ID, F.Food_Name
		ORDER BY Total_Claims DESC`

	queryTopProvider = `
		SELECT P.Provider_ID, P.Name AS Provider_Name, COUNT(*) AS Successful_Claims
		FROM Claims C
		JOIN Food_Listings F ON C.Food_ID = F.Food_ID
		JOIN Providers P ON F.Provider_ID = P.Provider_ID
		WHERE C.Status = 'Completed'
		GROUP BY P.Provider_ID, P.Name
		ORDER BY Successful_Claims DESC
		LIMIT 1`

	queryStatusDistribution = `
		SELECT Status,
		       ROUND(100.0 * COUNT(*) / (SELECT COUNT(*) FROM Claims), 2) AS Percentage
		FROM Claims
		GROUP BY Status
		ORDER BY Percentage DESC`

	queryAvgQuantityPerReceiver = `
		SELECT R.Name AS Receiver_Name, ROUND(AVG(F.Quantity), 2) AS Approx_Avg_Quantity
		FROM Claims C
		JOIN Receivers R ON C.Receiver_ID = R.Receiver_ID
		JOIN Food_Listings F ON C.Food_ID = F.Food_ID
		GROUP BY R.Name
		ORDER BY Approx_Avg_Quantity DESC`

	queryMealTypeClaims = `
		SELECT F.Meal_Type, COUNT(*) AS Total_Claims
		FROM Claims C
		JOIN Food_Listings F ON C.Food_ID = F.Food_ID
		GROUP BY F.Meal_Type
		ORDER BY Total_Claims DESC`

	queryProviderDonations = `
		SELECT P.Provider_ID, P.Name AS Provider_Name, SUM(F.Quantity) AS Total_Quantity
		FROM Food_Listings F
		JOIN Providers P ON F.Provider_ID = P.Provider_ID
		GROUP BY P.Provider_ID, P.Name
		ORDER BY Total_Quantity DESC`
)
