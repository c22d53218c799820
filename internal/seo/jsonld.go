// Package seo generates schema.org JSON-LD for the marketing pages.
package seo

import "consultancy-backend/internal/content"

// Site describes the business entity rendered into structured data.
type Site struct {
	Name    string
	BaseURL string
	Email   string
	Phone   string
}

// Organization builds the schema.org Organization entity.
func Organization(site Site) map[string]any {
	org := map[string]any{
		"@context": "https://schema.org",
		"@type":    "ProfessionalService",
		"name":     site.Name,
		"url":      site.BaseURL,
		"areaServed": map[string]any{
			"@type": "Country",
			"name":  "United Kingdom",
		},
	}
	if site.Email != "" || site.Phone != "" {
		contact := map[string]any{
			"@type":       "ContactPoint",
			"contactType": "sales",
		}
		if site.Email != "" {
			contact["email"] = site.Email
		}
		if site.Phone != "" {
			contact["telephone"] = site.Phone
		}
		org["contactPoint"] = contact
	}
	return org
}

// ServicePage builds the schema.org Service entity for one offering.
func ServicePage(site Site, svc content.Service) map[string]any {
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Service",
		"name":        svc.Name,
		"description": svc.Summary,
		"url":         site.BaseURL + "/services/" + svc.Slug,
		"provider": map[string]any{
			"@type": "ProfessionalService",
			"name":  site.Name,
			"url":   site.BaseURL,
		},
	}
}

// Breadcrumbs builds a BreadcrumbList from ordered (name, path) pairs.
func Breadcrumbs(site Site, crumbs [][2]string) map[string]any {
	items := make([]map[string]any, 0, len(crumbs))
	for i, crumb := range crumbs {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb[0],
			"item":     site.BaseURL + crumb[1],
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}
