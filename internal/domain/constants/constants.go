package constants

// Store collection names
const (
	CollectionProducts  = "products"
	CollectionInvoices  = "invoices"
	CollectionCustomers = "customers"
)

// Assistant constants
const (
	// DefaultLowStockThreshold mahsulot kam deb hisoblanadigan miqdor
	DefaultLowStockThreshold = 10

	// LowStockExampleLimit low-stock javobida ko'rsatiladigan max nomlar
	LowStockExampleLimit = 6

	// TopCustomersLimit top mijozlar ro'yxati hajmi
	TopCustomersLimit = 5
)

// Chat constants
const (
	// DefaultMaxContextSize chat tarixida saqlanadigan max xabarlar soni
	DefaultMaxContextSize = 60
)
