package content

import "context"

// staticServices mirrors the CMS service collection. Slugs match the
// serviceInterest codes accepted by the contact form.
var staticServices = []Service{
	{Slug: "strategy", Name: "Strategy", Summary: "Market positioning, growth planning and board advisory."},
	{Slug: "operations", Name: "Operations", Summary: "Process improvement and operating model design."},
	{Slug: "staffing", Name: "Staffing", Summary: "Interim placements and permanent recruitment support."},
	{Slug: "compliance", Name: "Compliance", Summary: "UK regulatory compliance reviews and remediation."},
	{Slug: "training", Name: "Training", Summary: "Leadership development and bespoke team training."},
	{Slug: "other", Name: "Other", Summary: "Anything that does not fit the categories above."},
}

var staticTestimonials = []Testimonial{
	{Author: "Sarah Whitfield", Role: "Operations Director", Company: "Hartley & Co", Quote: "They rebuilt our back office processes in a quarter."},
	{Author: "James Okafor", Role: "Managing Director", Company: "Brightline Logistics", Quote: "Pragmatic advice, delivered without the usual consultancy theatre."},
	{Author: "Priya Shah", Role: "Head of People", Company: "Fenwick Digital", Quote: "The interim placements were outstanding from day one."},
}

// Static serves the built-in dataset. It never fails.
type Static struct{}

func (Static) Services(ctx context.Context) ([]Service, error) {
	out := make([]Service, len(staticServices))
	copy(out, staticServices)
	return out, nil
}

func (Static) ServiceBySlug(ctx context.Context, slug string) (Service, error) {
	for _, s := range staticServices {
		if s.Slug == slug {
			return s, nil
		}
	}
	return Service{}, ErrNotFound
}

func (Static) Testimonials(ctx context.Context) ([]Testimonial, error) {
	out := make([]Testimonial, len(staticTestimonials))
	copy(out, staticTestimonials)
	return out, nil
}
