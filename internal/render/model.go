package render

// Document is the structured CV shape assembled from the builder form. It is
// also the JSON payload persisted by the draft store; order of the experience
// and education slices reflects submission order and matters for rendering.
type Document struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	JobTitle  string `json:"jobTitle"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Website   string `json:"website"`
	Summary   string `json:"summary"`
	Template  string `json:"template"`

	Links      []Link       `json:"links,omitempty"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     Skills       `json:"skills"`
}

// Link is a user-supplied labeled URL shown alongside the contact fields.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Experience is one work history entry.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	Degree string `json:"degree"`
	Field  string `json:"field"`
	School string `json:"school"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

// Skills groups the three unordered skill lists.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Languages []string `json:"languages"`
}

// FullName joins the name fields for display.
func (d Document) FullName() string {
	switch {
	case d.FirstName == "":
		return d.LastName
	case d.LastName == "":
		return d.FirstName
	default:
		return d.FirstName + " " + d.LastName
	}
}
