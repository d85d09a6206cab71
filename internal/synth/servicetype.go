package synth

import (
	"strings"

	"github.com/agentstation/sitebridge/pkg/descriptor"
)

// ServiceType is the heuristic classification of a descriptor's business
// domain, used to pick a generation template.
type ServiceType string

// Known service types.
const (
	GroceryStore   ServiceType = "grocery_store"
	Bank           ServiceType = "bank"
	RecipeSite     ServiceType = "recipe_site"
	Ecommerce      ServiceType = "ecommerce"
	GenericService ServiceType = "generic_service"
)

// serviceTypeRules are checked in order; the first matching rule wins. The
// order is the tie-break for descriptors matching several keyword sets.
var serviceTypeRules = []struct {
	serviceType ServiceType
	keywords    []string
}{
	{GroceryStore, []string{"grocery", "store", "shop"}},
	{Bank, []string{"bank", "financial"}},
	{RecipeSite, []string{"recipe", "cooking", "food"}},
	{Ecommerce, []string{"ecommerce", "commerce"}},
}

// ClassifyService infers what kind of service a descriptor describes by
// case-insensitive substring matching against its name and description.
// Descriptors matching no keyword set classify as GenericService.
func ClassifyService(d *descriptor.Descriptor) ServiceType {
	combined := strings.ToLower(d.Name + " " + d.Description)

	for _, rule := range serviceTypeRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(combined, keyword) {
				return rule.serviceType
			}
		}
	}

	return GenericService
}

// Display returns the service type with underscores spelled out, e.g.
// "grocery store", for use in natural-language prompt text.
func (s ServiceType) Display() string {
	return strings.ReplaceAll(string(s), "_", " ")
}
