package models

// Row types for the canned reports. Column meanings follow the dashboard's
// report catalog; numeric columns that the SQL rounds keep two decimals.

type CityParticipation struct {
	City      string
	Providers int
	Receivers int
}

type ProviderTypeContribution struct {
	ProviderType   string
	TotalFoodItems int
}

type ProviderContact struct {
	Name    string
	Type    string
	City    string
	Contact string
}

type ReceiverClaimCount struct {
	ReceiverID   int64
	ReceiverName string
	TotalClaims  int
}

type CityListingCount struct {
	City          string
	TotalListings int
}

type FoodTypeFrequency struct {
	FoodType string
	Count    int
}

type FoodClaimCount struct {
	FoodID      int64
	FoodName    string
	TotalClaims int
}

type TopProvider struct {
	ProviderID       int64
	ProviderName     string
	SuccessfulClaims int
}

type StatusShare struct {
	Status     string
	Percentage float64
}

type ReceiverAvgQuantity struct {
	ReceiverName      string
	ApproxAvgQuantity float64
}

type MealTypeClaimCount struct {
	MealType    string
	TotalClaims int
}

type ProviderDonationTotal struct {
	ProviderID    int64
	ProviderName  string
	TotalQuantity int
}
