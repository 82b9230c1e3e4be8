package model

// OrderLine is one purchased line item as delivered by the upstream
// order source. It is immutable once ingested; the pipeline only reads
// from it.
type OrderLine struct {
	OrderID            string `json:"order_id"`
	OrderDate          string `json:"order_date"`
	Name               string `json:"name"`
	PhoneNumeric       string `json:"phone_numeric"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	HouseUnitNo        string `json:"house_unit_no"`
	AddressLine1       string `json:"address_line1"`
	SelectDeliveryCity string `json:"select_delivery_city"`
	ShippingCity       string `json:"shipping_city"`
	Zip                string `json:"zip"`
	SKU                string `json:"sku"`
	DriverInstructions string `json:"driver_instructions"`
	SellerInstructions string `json:"seller_instructions"`
	DeliveryTime       string `json:"delivery_time"`
	Quantity           string `json:"quantity"`
	StartDate          string `json:"start_date"`
	DeliveryCity       string `json:"delivery_city"`
	CityMismatch       string `json:"city_mismatch"`
}

// ExportRow is the canonical flattened record between the mapper and
// the enrichment join. The field set is identical for every row
// regardless of the source order's shape; CLabl, Label and Upstair are
// placeholders reserved for later stages or manual annotation.
type ExportRow struct {
	OrderID      string
	Date         string
	Name         string
	Phone        string
	Email        string
	HouseUnitNo  string
	AddressLine1 string
	City         string
	Zip          string
	SKU          string
	CLabl        string
	Label        string
	DriverNote   string
	SellerNote   string
	Upstair      string
	DeliveryTime string
	Quantity     string
	StartDate    string
	CityMismatch string
}
