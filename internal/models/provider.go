package models

// Provider is a food donor (restaurant, grocery store, supermarket, catering
// service) registered in the system.
type Provider struct {
	ID      int64
	Name    string
	Type    string
	Address string
	City    string
	Contact string
}

// ProviderRef is the short form used to populate provider pickers.
type ProviderRef struct {
	ID   int64
	Name string
	Type string
}
