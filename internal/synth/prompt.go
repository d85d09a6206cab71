package synth

import (
	"fmt"
	"strings"

	"github.com/agentstation/sitebridge/pkg/descriptor"
)

// systemPrompt instructs the model to produce a complete styled, scripted
// page with no surrounding markdown fencing.
const systemPrompt = `You are a web developer that creates complete, functional websites from API specifications.

Generate a COMPLETE website that users can naturally interact with. The website should:
1. Look and feel like a real business website (not an API testing tool)
2. Have embedded JavaScript that makes API calls transparently
3. Include beautiful CSS styling
4. Handle user interactions naturally (shopping, browsing, etc.)
5. Make API calls behind the scenes when users interact with the site

Generate only the HTML content with embedded CSS and JavaScript. No markdown code blocks.`

// userPromptFormat composes the generation request. Interpolated in order:
// service name, template name, template description, base URL, endpoint
// summary block, spelled-out service type, base URL again (in the script
// illustration).
const userPromptFormat = `
Create a complete, beautiful website for: %s

Service Type: %s
Description: %s

API Base URL: %s

Available API Endpoints:
%s

Requirements:
1. Create a COMPLETE website that looks professional and modern
2. Users should be able to naturally interact with it (no "Call API" buttons)
3. Embed JavaScript functions that call the actual API endpoints
4. Include beautiful CSS styling (modern design, responsive)
5. Handle loading states and errors gracefully
6. Make it feel like a real %s website

For API calls, use this pattern in your JavaScript:
` + "```javascript" + `
async function apiCall(endpoint, params = {}) {
    // This will be handled by the browser
    const result = await window.electronAPI.callAPI('%s', endpoint, params);
    return result;
}
` + "```" + `

Generate the complete HTML page with embedded CSS and JavaScript:
`

// EndpointSummary renders one fixed-format line per endpoint, preserving
// descriptor order.
func EndpointSummary(endpoints []descriptor.Endpoint) string {
	lines := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		lines = append(lines, fmt.Sprintf("- %s: %s %s - %s", ep.DisplayID(), ep.HTTPMethod(), ep.Path, ep.Summary))
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt composes the user prompt for website generation.
func BuildPrompt(d *descriptor.Descriptor, serviceType ServiceType, tmpl Template) string {
	name := d.Name
	if name == "" {
		name = "Unknown Service"
	}

	return fmt.Sprintf(userPromptFormat,
		name,
		tmpl.Name,
		tmpl.Description,
		d.BaseURL,
		EndpointSummary(d.Endpoints),
		serviceType.Display(),
		d.BaseURL,
	)
}

// CleanHTML strips markdown code-fence markers from generated output and
// trims surrounding whitespace. Input with no fences is returned unchanged
// modulo trimming.
func CleanHTML(html string) string {
	html = strings.ReplaceAll(html, "```html", "")
	html = strings.ReplaceAll(html, "```", "")
	return strings.TrimSpace(html)
}
