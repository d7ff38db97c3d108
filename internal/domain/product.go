package domain

type ProductCategory string

const (
	ProductCategoryChairs  ProductCategory = "CHAIRS"
	ProductCategoryTables  ProductCategory = "TABLES"
	ProductCategoryTents   ProductCategory = "TENTS"
	ProductCategoryDefault ProductCategory = "DEFAULT"
)

type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  ProductCategory `json:"category"`
	// Quantity is the owned stock. The rented portion is never stored; it is
	// derived from active order line items (see InventoryService).
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	CreatedOn      string `json:"created_on"`
	UpdatedOn      string `json:"updated_on"`
}

// ProductAvailability is the derived view of a product's stock.
type ProductAvailability struct {
	ProductID      string `json:"product_id"`
	OwnedQuantity  int    `json:"owned_quantity"`
	RentedQuantity int    `json:"rented_quantity"`
	Available      int    `json:"available"`
}
