package core

// Tour is the scalar part of a tour package as stored in the tours table.
// Price is kept as a display string on purpose: the front end prints it
// verbatim next to the currency code, it never does arithmetic with it.
type Tour struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Image         string `json:"image"` // primary media: image URL, video file or embed link
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	MinGuests     int    `json:"minGuests"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	Created       string `json:"created"`
}

// Winery is one stop of a tour. Ordered within its tour by display_order.
type Winery struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Location  string `json:"location"` // Google Maps URL
	Instagram string `json:"instagram"`
}

// TourDetails groups the optional extras shown on the tour card flip side.
type TourDetails struct {
	MenuImage *string  `json:"menuImage"`
	MenuSteps []string `json:"menuSteps"`
	Wineries  []Winery `json:"wineries"`
}

// TourView is the nested document the public API serves: the tour row plus
// all of its child rows, assembled by the aggregator.
type TourView struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Subtitle      string          `json:"subtitle"`
	Image         string          `json:"image"`
	Media         MediaDescriptor `json:"media"`
	Price         string          `json:"price"`
	PriceCurrency string          `json:"priceCurrency"`
	MinGuests     int             `json:"minGuests"`
	Description   string          `json:"description"`
	Duration      string          `json:"duration"`
	Features      []string        `json:"features"`
	Details       TourDetails     `json:"details"`
}

// TourInput is the nested payload accepted from the admin form.
// Child arrays are positional: index becomes display_order.
type TourInput struct {
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Image         string   `json:"image"`
	Price         string   `json:"price"`
	PriceCurrency string   `json:"priceCurrency"`
	MinGuests     int      `json:"minGuests"`
	Description   string   `json:"description"`
	Duration      string   `json:"duration"`
	Features      []string `json:"features"`
	Wineries      []Winery `json:"wineries"`
	MenuSteps     []string `json:"menuSteps"`
	MenuImage     string   `json:"menuImage"` // empty means no menu image
}

// MediaKind tells the renderer how to present a tour's primary media.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaEmbed MediaKind = "embed"
	MediaNone  MediaKind = "none"
)

// MediaDescriptor is the resolver's verdict on a media reference.
type MediaDescriptor struct {
	Kind      MediaKind `json:"kind"`
	RenderURL string    `json:"renderUrl"`
}

// GalleryImage is an image of the public gallery, independent of tours.
// Field names mirror the gallery table so the admin JS can use rows as-is.
type GalleryImage struct {
	ID           string `json:"id"`
	ImagePath    string `json:"image_path"`
	Alt          string `json:"alt"`
	DisplayOrder int    `json:"display_order"`
	PublicID     string `json:"public_id"`
}

// User is a store-managed admin account. The password hash never leaves
// the service layer.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt"`
	PasswordHash string `json:"-"`
}

const (
	RoleAdmin  = "admin"
	RoleMaster = "master"
)

// Identity is the authenticated caller as carried through a session.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Settings is the singleton site configuration row. The WhatsApp number
// feeds the booking deep links built by the front end.
type Settings struct {
	ID             string `json:"id"`
	SiteName       string `json:"site_name"`
	WhatsappNumber string `json:"whatsapp_number"`
	BookingMessage string `json:"booking_message"`
}

// DashboardStats is the counter strip on top of the admin dashboard.
type DashboardStats struct {
	Tours         int64 `json:"tours"`
	GalleryImages int64 `json:"galleryImages"`
	Users         int64 `json:"users"`
}
