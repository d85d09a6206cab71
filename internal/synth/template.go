package synth

import "github.com/agentstation/sitebridge/pkg/descriptor"

// Template is the declarative generation template for a service type: a
// display name, a short description of the site to build, and a feature list.
type Template struct {
	Name        string
	Description string
	Features    []string
}

// DefaultServiceName is the display name used when a generic descriptor
// carries no name of its own.
const DefaultServiceName = "Service Portal"

var serviceTemplates = map[ServiceType]Template{
	GroceryStore: {
		Name:        "Fresh Market",
		Description: "Create a modern grocery shopping website with product browsing, search, and shopping cart",
		Features:    []string{"product catalog", "search functionality", "shopping cart", "product categories"},
	},
	Bank: {
		Name:        "Secure Bank",
		Description: "Create a banking website with account management, transactions, and transfers",
		Features:    []string{"account overview", "transaction history", "money transfers", "account management"},
	},
	RecipeSite: {
		Name:        "Recipe Hub",
		Description: "Create a cooking website with recipe search, favorites, and meal planning",
		Features:    []string{"recipe search", "recipe details", "favorites", "meal planning"},
	},
	Ecommerce: {
		Name:        "Online Store",
		Description: "Create an e-commerce website with product catalog and shopping features",
		Features:    []string{"product catalog", "product search", "shopping cart", "user accounts"},
	},
}

// TemplateFor selects the template for a service type. The generic template
// is built from the descriptor itself, falling back to DefaultServiceName
// when the descriptor carries no name.
func TemplateFor(serviceType ServiceType, d *descriptor.Descriptor) Template {
	if tmpl, ok := serviceTemplates[serviceType]; ok {
		return tmpl
	}

	name := d.Name
	if name == "" {
		name = DefaultServiceName
	}
	subject := d.Name
	if subject == "" {
		subject = "this service"
	}

	return Template{
		Name:        name,
		Description: "Create a website for " + subject,
		Features:    []string{"service features", "user interactions"},
	}
}
