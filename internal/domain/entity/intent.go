package entity

// Intent foydalanuvchi savolining yopiq toifasi
type Intent string

const (
	IntentProductsCount  Intent = "products_count"
	IntentLowStock       Intent = "low_stock"
	IntentInvoicesCount  Intent = "invoices_count"
	IntentInvoicesToday  Intent = "invoices_today"
	IntentInvoicesMonth  Intent = "invoices_month"
	IntentInvoicesTotal  Intent = "invoices_total"
	IntentTopCustomers   Intent = "top_customers"
	IntentCustomersCount Intent = "customers_count"
	IntentProductLookup  Intent = "product_lookup"
	IntentBackup         Intent = "backup"
	IntentHelp           Intent = "help"
	IntentFallback       Intent = "fallback"
)

// Entities bitta savol doirasida ajratib olingan qiymatlar.
// Threshold faqat low-stock savollarida ishlatiladi.
type Entities struct {
	Number    float64
	HasNumber bool
}
