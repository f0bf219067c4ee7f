// Package catalog - Shipped design-option catalog
// This is the source of truth for option pricing.
package catalog

// Default returns a catalog populated with the shipped option tables
func Default() *Catalog {
	c := NewCatalog()
	RegisterDefaults(c)
	return c
}

// RegisterDefaults populates the catalog with all shipped categories
func RegisterDefaults(c *Catalog) {
	// ============================================
	// STRUCTURE
	// ============================================

	c.Register(Category{Name: "template", Label: "Template", Kind: KindSingle, Choices: []Choice{
		{"Landing Page", 0}, {"Personal", 0}, {"Portfolio", 1}, {"Restaurant", 1},
		{"Event", 1}, {"Nonprofit", 1}, {"Blog", 2}, {"Business", 2}, {"Agency", 2},
		{"SaaS", 3}, {"Documentation", 3}, {"E-commerce", 4},
	}})
	c.Register(Category{Name: "layout", Label: "Layout", Kind: KindSingle, Choices: []Choice{
		{"Single Column", 0}, {"Two Column", 1}, {"Grid", 1}, {"Split Screen", 1},
		{"Masonry", 2}, {"Asymmetric", 2},
	}})
	c.Register(Category{Name: "navigation", Label: "Navigation", Kind: KindSingle, Choices: []Choice{
		{"None", -1}, {"Top Bar", 0}, {"Hamburger", 0}, {"Sidebar", 1},
		{"Bottom Tab", 1}, {"Mega Menu", 2},
	}})
	c.Register(Category{Name: "heroStyle", Label: "Hero style", Kind: KindSingle, Choices: []Choice{
		{"Minimal", -1}, {"Centered", 0}, {"Split", 1}, {"Fullscreen Image", 1},
		{"Carousel", 2}, {"Video Background", 3},
	}})
	c.Register(Category{Name: "sections", Label: "Page sections", Kind: KindCounted, Choices: []Choice{
		{"Hero", 0}, {"Features", 0}, {"About", 0}, {"Services", 0}, {"Pricing", 0},
		{"Testimonials", 0}, {"Team", 0}, {"Gallery", 0}, {"Portfolio", 0}, {"Blog", 0},
		{"Stats", 0}, {"Timeline", 0}, {"Partners", 0}, {"FAQ", 0}, {"CTA", 0},
		{"Newsletter", 0}, {"Contact", 0}, {"Footer", 0},
	}})
	c.Register(Category{Name: "stickyElements", Label: "Sticky elements", Kind: KindCounted, Choices: []Choice{
		{"Header", 0}, {"Footer", 0}, {"CTA Button", 0}, {"Chat Widget", 0},
		{"Cookie Banner", 0}, {"Sidebar", 0}, {"Back To Top", 0},
	}})

	// ============================================
	// VISUAL DESIGN
	// ============================================

	c.Register(Category{Name: "style", Label: "Design style", Kind: KindSingle, Choices: []Choice{
		{"Minimal", 0}, {"Modern", 0}, {"Corporate", 1}, {"Playful", 1}, {"Elegant", 1},
		{"Retro", 1}, {"Brutalist", 2}, {"Glassmorphism", 2}, {"Neumorphism", 2},
		{"Futuristic", 2},
	}})
	c.Register(Category{Name: "palette", Label: "Color palette", Kind: KindSingle, Choices: []Choice{
		{"Default", 0}, {"Monochrome", 0}, {"Ocean", 0}, {"Sunset", 0}, {"Forest", 0},
		{"Pastel", 0}, {"Earth", 0}, {"Vibrant", 1}, {"Neon", 1}, {"Custom", 0},
	}})
	c.Register(Category{Name: "mode", Label: "Color mode", Kind: KindSingle, Choices: []Choice{
		{"Light", 0}, {"Dark", 0}, {"Auto", 1},
	}})
	c.Register(Category{Name: "typography", Label: "Typography", Kind: KindSingle, Choices: []Choice{
		{"System", 0}, {"Sans", 0}, {"Serif", 0}, {"Mono", 0}, {"Display", 1},
		{"Handwritten", 1}, {"Custom", 2},
	}})
	c.Register(Category{Name: "imagery", Label: "Imagery", Kind: KindSingle, Choices: []Choice{
		{"Placeholder", 0}, {"Icons Only", 0}, {"Illustrations", 1}, {"Photography", 1},
		{"AI Generated", 2}, {"3D Renders", 3},
	}})
	c.Register(Category{Name: "buttonStyle", Label: "Button style", Kind: KindSingle, Choices: []Choice{
		{"Rounded", 0}, {"Square", 0}, {"Pill", 0}, {"Outline", 0}, {"Gradient", 1}, {"3D", 1},
	}})
	c.Register(Category{Name: "cardStyle", Label: "Card style", Kind: KindSingle, Choices: []Choice{
		{"Flat", 0}, {"Elevated", 0}, {"Bordered", 0}, {"Glass", 1}, {"Neumorphic", 1},
	}})

	// ============================================
	// CONDITIONAL - charged only when selected
	// ============================================

	c.Register(Category{Name: "animation", Label: "Animations", Kind: KindSingle, Conditional: true, Choices: []Choice{
		{"None", -1}, {"Subtle", 0}, {"Moderate", 2}, {"Scroll-Triggered", 3},
		{"Parallax", 3}, {"Rich", 4},
	}})
	c.Register(Category{Name: "backgroundEffect", Label: "Background effect", Kind: KindSingle, Conditional: true, Choices: []Choice{
		{"None", 0}, {"Noise", 1}, {"Gradient Mesh", 1}, {"Particles", 2}, {"Waves", 2},
		{"3D Shapes", 3},
	}})
	c.Register(Category{Name: "seo", Label: "SEO optimization", Kind: KindSingle, Conditional: true, Choices: []Choice{
		{"Basic", 0}, {"Advanced", 2},
	}})
	c.Register(Category{Name: "accessibility", Label: "Accessibility", Kind: KindSingle, Conditional: true, Choices: []Choice{
		{"Basic", 0}, {"WCAG AA", 2}, {"WCAG AAA", 4},
	}})
	c.Register(Category{Name: "framework", Label: "Output framework", Kind: KindSingle, Conditional: true, Choices: []Choice{
		{"HTML", 0}, {"React", 2}, {"Vue", 2}, {"Svelte", 2}, {"Next.js", 3},
	}})

	// ============================================
	// MULTI-SELECT - each selected value summed
	// ============================================

	c.Register(Category{Name: "integrations", Label: "Integrations", Kind: KindMulti, Choices: []Choice{
		{"Analytics", 0}, {"Contact Form", 1}, {"Newsletter", 1}, {"Maps", 1},
		{"Social Feed", 1}, {"Booking", 2}, {"Chat Widget", 2}, {"Search", 2},
		{"Payments", 3},
	}})
	c.Register(Category{Name: "interactions", Label: "Interactions", Kind: KindMulti, Choices: []Choice{
		{"Hover Effects", 0}, {"Tabs", 0}, {"Accordions", 0}, {"Tooltips", 0},
		{"Modals", 1}, {"Sliders", 1}, {"Lightbox", 1},
	}})
}
