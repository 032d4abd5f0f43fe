package models

// Service is an offering listed on the marketing page.
type Service struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Icon        IconName `json:"icon" yaml:"icon"` // Resolved to a glyph by the API layer, never here
}

// Project is a portfolio entry. Featured projects make up the homepage highlight set.
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	ImageURL     string   `json:"imageUrl" yaml:"imageUrl"`               // Main thumbnail
	Images       []string `json:"images,omitempty" yaml:"images,omitempty"` // Slideshow images, in display order
	ShopifyTheme string   `json:"shopifyTheme" yaml:"shopifyTheme"`       // e.g. Dawn, Impulse
	Link         string   `json:"link,omitempty" yaml:"link,omitempty"`
	Featured     bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
}

// Plan is a pricing tier. Price is display text and is never parsed.
type Plan struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       string   `json:"price" yaml:"price"`
	Features    []string `json:"features" yaml:"features"`
	Recommended bool     `json:"recommended,omitempty" yaml:"recommended,omitempty"`
}

// Testimonial is a client review. Rating is expected to be 1-5 but is not enforced.
type Testimonial struct {
	ID           string `json:"id" yaml:"id"`
	ClientName   string `json:"clientName" yaml:"clientName"`
	BusinessName string `json:"businessName" yaml:"businessName"`
	Content      string `json:"content" yaml:"content"`
	Rating       int    `json:"rating" yaml:"rating"`
}

// Inquiry is a contact form submission. Inquiries are append-only.
type Inquiry struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
	Theme   string `json:"theme" yaml:"theme"`
	Message string `json:"message" yaml:"message"`
	Date    string `json:"date" yaml:"date"` // RFC 3339 submission time
}

// AppData is the single document holding all site content. It is persisted as one unit.
type AppData struct {
	Services     []Service     `json:"services" yaml:"services"`
	Projects     []Project     `json:"projects" yaml:"projects"`
	Plans        []Plan        `json:"plans" yaml:"plans"`
	Testimonials []Testimonial `json:"testimonials" yaml:"testimonials"`
	Inquiries    []Inquiry     `json:"inquiries" yaml:"inquiries"`
}

// Clone returns a deep copy of the document. Nil collections come back as empty slices
// so the serialized form never carries null arrays.
func (d AppData) Clone() AppData {
	out := AppData{
		Services:     make([]Service, len(d.Services)),
		Projects:     make([]Project, len(d.Projects)),
		Plans:        make([]Plan, len(d.Plans)),
		Testimonials: make([]Testimonial, len(d.Testimonials)),
		Inquiries:    make([]Inquiry, len(d.Inquiries)),
	}
	copy(out.Services, d.Services)
	for i, p := range d.Projects {
		out.Projects[i] = p.Clone()
	}
	for i, p := range d.Plans {
		out.Plans[i] = p.Clone()
	}
	copy(out.Testimonials, d.Testimonials)
	copy(out.Inquiries, d.Inquiries)
	return out
}

// FeaturedProjects returns copies of the projects flagged for the homepage, in display order.
func (d AppData) FeaturedProjects() []Project {
	out := []Project{}
	for _, p := range d.Projects {
		if p.Featured {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Clone returns a copy of the project that does not share its image list.
func (p Project) Clone() Project {
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	return p
}

// Clone returns a copy of the plan that does not share its feature list.
func (p Plan) Clone() Plan {
	if p.Features != nil {
		p.Features = append([]string(nil), p.Features...)
	}
	return p
}
