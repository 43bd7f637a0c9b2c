package store

import "github.com/kijanigreens/storefront/internal/models"

// SeedProducts returns the startup catalog. Identifiers are assigned by the
// store, so product ids change across restarts.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			Name:            "Amaranth (Terere)",
			Description:     "Vibrant green and purple-red leafy vegetable rich in protein, iron, and calcium. A traditional favorite with a mild, earthy flavor.",
			Price:           "80.00",
			Unit:            "bunch",
			Image:           "amaranth_product_photo.png",
			NutritionalInfo: "Amaranth leaves are exceptionally high in protein (compared to most greens), iron, calcium, and vitamins A, C, and K. They contain essential amino acids and powerful antioxidants that support immune health and bone strength.",
			PreparationTips: "Wash thoroughly and remove tough stems. Sauté with onions, tomatoes, and a touch of salt for 5-7 minutes. Amaranth pairs wonderfully with ugali or rice. The tender leaves can also be added raw to salads.",
			InStock:         1,
		},
		{
			Name:            "Black Nightshade (Managu)",
			Description:     "Dark green indigenous leaves with a unique, slightly bitter taste. Packed with nutrients and beloved in traditional cuisine.",
			Price:           "70.00",
			Unit:            "bunch",
			Image:           "black_nightshade_product_photo.png",
			NutritionalInfo: "Black nightshade is rich in iron, calcium, vitamins A and C, and contains beneficial compounds that support digestive health. It's particularly valued for its high antioxidant content.",
			PreparationTips: "Boil leaves for 10-15 minutes to reduce bitterness, then drain and sauté with onions, tomatoes, and cream or milk. The slight bitterness balances beautifully with creamy accompaniments. Traditionally served with ugali.",
			InStock:         1,
		},
		{
			Name:            "Cowpea Leaves (Kunde)",
			Description:     "Tender, bright green leaves from cowpea plants. Mild flavor and delicate texture make them a family favorite.",
			Price:           "75.00",
			Unit:            "bunch",
			Image:           "cowpea_leaves_product_photo.png",
			NutritionalInfo: "Cowpea leaves provide excellent amounts of protein, fiber, iron, and folate. They're particularly rich in vitamins A and C, supporting eye health and immune function. Low in calories but high in nutrients.",
			PreparationTips: "Quick-cooking greens that retain their bright color. Sauté with onions, garlic, and tomatoes for 5-8 minutes until tender. Add coconut milk for a creamy variation. Serve with ugali, rice, or as a side to any protein.",
			InStock:         1,
		},
		{
			Name:            "Fordhook Swiss Chard",
			Description:     "Vibrant green leaves with crisp white or light green stems. Mild, slightly sweet flavor with a tender texture when cooked.",
			Price:           "90.00",
			Unit:            "bunch",
			Image:           "swiss_chard_product_photo.png",
			NutritionalInfo: "Swiss chard is a nutritional powerhouse containing vitamins K, A, and C, along with magnesium, potassium, and iron. It supports bone health, blood sugar regulation, and cardiovascular wellness.",
			PreparationTips: "Separate stems from leaves—stems take longer to cook. Chop stems and sauté first for 3-4 minutes, then add chopped leaves and cook for another 3-5 minutes. Delicious with garlic, lemon juice, or in soups and stews.",
			InStock:         1,
		},
	}
}
