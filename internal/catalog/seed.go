package catalog

import "fmt"

func ptr[T any](v T) *T { return &v }

func SampleProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Classic White T-Shirt",
			Description: "A comfortable and versatile white t-shirt made from 100% cotton.",
			Price:       24.99,
			Category:    "men",
			Rating:      4.5,
			Reviews:     120,
			IsNew:       ptr(true),
		},
		{
			ID:            "2",
			Name:          "Slim Fit Jeans",
			Description:   "Modern slim fit jeans with a comfortable stretch fabric.",
			Price:         59.99,
			OriginalPrice: ptr(79.99),
			Category:      "men",
			Rating:        4.2,
			Reviews:       85,
			Discount:      ptr(25.0),
		},
	}
}

var (
	demoCategories     = []string{"electronics", "clothing", "furniture", "toys", "books", "appliances", "beauty", "sports", "automotive", "jewelry"}
	demoPrices         = []float64{199.99, 299.99, 399.99, 499.99, 599.99, 699.99, 799.99, 899.99, 999.99, 1099.99}
	demoReviews        = []int{10, 25, 50, 75, 100, 150, 200, 300, 500, 1000}
	demoRatings        = []float64{3.5, 4.0, 4.2, 4.5, 4.7, 4.8, 4.9, 5.0, 3.8, 3.9}
	demoOriginalPrices = []float64{249.99, 349.99, 449.99, 549.99, 649.99, 749.99, 849.99, 949.99, 1049.99, 1149.99}
	demoDiscounts      = []float64{5, 10, 15, 20, 25, 30, 35, 40, 50, 60}
)

// DemoProducts builds n placeholder products. Attributes cycle through
// fixed tables by index so the catalog is identical on every start.
func DemoProducts(n int) []Product {
	out := make([]Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Product{
			ID:            fmt.Sprintf("prod-%d", i),
			Name:          fmt.Sprintf("Dummy Product %d", i),
			Description:   fmt.Sprintf("A test product for demonstration purposes - %d", i),
			Price:         demoPrices[(i*3)%len(demoPrices)],
			OriginalPrice: ptr(demoOriginalPrices[(i*3)%len(demoOriginalPrices)]),
			Category:      demoCategories[i%len(demoCategories)],
			Rating:        demoRatings[(i*7)%len(demoRatings)],
			Reviews:       demoReviews[(i*5)%len(demoReviews)],
			IsNew:         ptr(i%2 == 0),
			Discount:      ptr(demoDiscounts[(i*9)%len(demoDiscounts)]),
		})
	}
	return out
}
