package seeder

type SeedConfig struct {
	Products             int // Products to generate, ids 1..Products
	Categories           int // Categories to generate, ids 1..Categories
	Brands               int // brand_id is drawn from 1..Brands
	CategoriesPerProduct int // Distinct categories linked to each product
}

type TableInfo struct {
	Name         string
	Dependencies []string
}
