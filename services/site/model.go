package site

type Product struct {
	Name        string
	Description string
	// Price is displayed as is and posted to the cart checkout.
	Price string
}

var catalogue = []Product{
	{Name: "Neural Visor", Description: "Augmented overlay for field engineers", Price: "12,500"},
	{Name: "Holo Band", Description: "Wrist projector with gesture control", Price: "3,000"},
	{Name: "Quantum Node", Description: "Edge compute unit for smart shops", Price: "45,000"},
	{Name: "Solar Mesh Kit", Description: "Off-grid power for rural hubs", Price: "18,750"},
}

// ContactMessage is posted by the contact form on every page.
type ContactMessage struct {
	UID     string `form:"-"`
	Name    string `form:"name"`
	Email   string `form:"email"`
	Message string `form:"message"`
}

type pageData struct {
	Title    string
	Products []Product
}
