package models

import "time"

type Admin struct {
	ID           string     `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	FullName     string     `db:"full_name"`
	Role         string     `db:"role"`
	IsActive     bool       `db:"is_active"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// User is a public author profile referenced by articles, distinct from
// the admin accounts that sign in to the back office.
type User struct {
	ID         string    `db:"id"`
	FullNameAR string    `db:"full_name_ar"`
	FullNameEN string    `db:"full_name_en"`
	BioAR      string    `db:"bio_ar"`
	BioEN      string    `db:"bio_en"`
	AvatarURL  string    `db:"avatar_url"`
	Role       string    `db:"role"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type Section struct {
	ID            string    `db:"id"`
	TitleAR       string    `db:"title_ar"`
	TitleEN       string    `db:"title_en"`
	DescriptionAR string    `db:"description_ar"`
	DescriptionEN string    `db:"description_en"`
	Slug          string    `db:"slug"`
	Icon          string    `db:"icon"`
	OrderIndex    int       `db:"order_index"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Category struct {
	ID            string    `db:"id"`
	SectionID     string    `db:"section_id"`
	TitleAR       string    `db:"title_ar"`
	TitleEN       string    `db:"title_en"`
	DescriptionAR string    `db:"description_ar"`
	DescriptionEN string    `db:"description_en"`
	Slug          string    `db:"slug"`
	OrderIndex    int       `db:"order_index"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Article struct {
	ID            string    `db:"id"`
	CategoryID    string    `db:"category_id"`
	AuthorID      string    `db:"author_id"`
	TitleAR       string    `db:"title_ar"`
	TitleEN       string    `db:"title_en"`
	ContentAR     string    `db:"content_ar"`
	ContentEN     string    `db:"content_en"`
	ExcerptAR     string    `db:"excerpt_ar"`
	ExcerptEN     string    `db:"excerpt_en"`
	Slug          string    `db:"slug"`
	FeaturedImage string    `db:"featured_image"`
	IsFeatured    bool      `db:"is_featured"`
	ViewsCount    int       `db:"views_count"`
	PublishedAt   time.Time `db:"published_at"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Comment struct {
	ID         string    `db:"id"`
	ArticleID  string    `db:"article_id"`
	UserID     string    `db:"user_id"`
	ParentID   *string   `db:"parent_id"`
	Content    string    `db:"content"`
	IsApproved bool      `db:"is_approved"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Briefing carries its author and category as localized text rather than
// foreign keys; the editorial workflow enters them free-form.
type Briefing struct {
	ID            string    `db:"id"`
	TitleAR       string    `db:"title_ar"`
	TitleEN       string    `db:"title_en"`
	ContentAR     string    `db:"content_ar"`
	ContentEN     string    `db:"content_en"`
	ExcerptAR     string    `db:"excerpt_ar"`
	ExcerptEN     string    `db:"excerpt_en"`
	AuthorAR      string    `db:"author_ar"`
	AuthorEN      string    `db:"author_en"`
	CategoryAR    string    `db:"category_ar"`
	CategoryEN    string    `db:"category_en"`
	FeaturedImage string    `db:"featured_image"`
	PDFURL        *string   `db:"pdf_url"`
	IsFeatured    bool      `db:"is_featured"`
	ViewsCount    int       `db:"views_count"`
	PublishedAt   time.Time `db:"published_at"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type Activity struct {
	ID               string     `db:"id"`
	TitleAR          string     `db:"title_ar"`
	TitleEN          string     `db:"title_en"`
	DescriptionAR    string     `db:"description_ar"`
	DescriptionEN    string     `db:"description_en"`
	ActivityTypeAR   string     `db:"activity_type_ar"`
	ActivityTypeEN   string     `db:"activity_type_en"`
	LocationAR       string     `db:"location_ar"`
	LocationEN       string     `db:"location_en"`
	FeaturedImage    string     `db:"featured_image"`
	StartDate        time.Time  `db:"start_date"`
	EndDate          *time.Time `db:"end_date"`
	IsUpcoming       bool       `db:"is_upcoming"`
	RegistrationLink *string    `db:"registration_link"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

type TeamMember struct {
	ID           string    `db:"id"`
	NameAR       string    `db:"name_ar"`
	NameEN       string    `db:"name_en"`
	PositionAR   string    `db:"position_ar"`
	PositionEN   string    `db:"position_en"`
	BioAR        string    `db:"bio_ar"`
	BioEN        string    `db:"bio_en"`
	PhotoURL     string    `db:"photo_url"`
	Email        *string   `db:"email"`
	LinkedinURL  *string   `db:"linkedin_url"`
	TwitterURL   *string   `db:"twitter_url"`
	DisplayOrder int       `db:"display_order"`
	IsLeadership bool      `db:"is_leadership"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// OrganizationValue holds mission, vision and value blocks, discriminated
// by Type.
type OrganizationValue struct {
	ID           string    `db:"id"`
	Type         string    `db:"type"`
	TitleAR      string    `db:"title_ar"`
	TitleEN      string    `db:"title_en"`
	ContentAR    string    `db:"content_ar"`
	ContentEN    string    `db:"content_en"`
	Icon         *string   `db:"icon"`
	DisplayOrder int       `db:"display_order"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type HeroContent struct {
	ID         string    `db:"id"`
	TitleAR    string    `db:"title_ar"`
	TitleEN    string    `db:"title_en"`
	SubtitleAR string    `db:"subtitle_ar"`
	SubtitleEN string    `db:"subtitle_en"`
	CTATextAR  string    `db:"cta_text_ar"`
	CTATextEN  string    `db:"cta_text_en"`
	CTALink    string    `db:"cta_link"`
	IsActive   bool      `db:"is_active"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type HeroSlide struct {
	ID            string    `db:"id"`
	TitleAR       string    `db:"title_ar"`
	TitleEN       string    `db:"title_en"`
	DescriptionAR string    `db:"description_ar"`
	DescriptionEN string    `db:"description_en"`
	ImageURL      string    `db:"image_url"`
	DisplayOrder  int       `db:"display_order"`
	LinkType      *string   `db:"link_type"`
	LinkID        *string   `db:"link_id"`
	ExternalLink  *string   `db:"external_link"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type SiteStat struct {
	ID           string    `db:"id"`
	LabelAR      string    `db:"label_ar"`
	LabelEN      string    `db:"label_en"`
	Value        string    `db:"value"`
	Icon         string    `db:"icon"`
	DisplayOrder int       `db:"display_order"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type WhyRaydanPoint struct {
	ID            string    `db:"id"`
	TitleAR       string    `db:"title_ar"`
	TitleEN       string    `db:"title_en"`
	DescriptionAR string    `db:"description_ar"`
	DescriptionEN string    `db:"description_en"`
	Icon          string    `db:"icon"`
	DisplayOrder  int       `db:"display_order"`
	IsActive      bool      `db:"is_active"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type SiteSetting struct {
	ID          string    `db:"id"`
	Key         string    `db:"key"`
	ValueAR     string    `db:"value_ar"`
	ValueEN     string    `db:"value_en"`
	Description string    `db:"description"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// BusinessInfo is a singleton row feeding NAP display and structured-data
// markup. BusinessHours and SocialMedia are stored as JSON.
type BusinessInfo struct {
	ID              string    `db:"id"`
	BusinessName    string    `db:"business_name"`
	BusinessNameAR  string    `db:"business_name_ar"`
	Address         string    `db:"address"`
	AddressAR       string    `db:"address_ar"`
	City            string    `db:"city"`
	CityAR          string    `db:"city_ar"`
	State           string    `db:"state"`
	StateAR         string    `db:"state_ar"`
	Country         string    `db:"country"`
	CountryAR       string    `db:"country_ar"`
	PostalCode      string    `db:"postal_code"`
	Phone           string    `db:"phone"`
	PhoneSecondary  *string   `db:"phone_secondary"`
	Email           string    `db:"email"`
	Latitude        *float64  `db:"latitude"`
	Longitude       *float64  `db:"longitude"`
	BusinessHours   []byte    `db:"business_hours"`
	FoundedYear     int       `db:"founded_year"`
	Description     string    `db:"description"`
	DescriptionAR   string    `db:"description_ar"`
	Keywords        []byte    `db:"keywords"`
	SocialMedia     []byte    `db:"social_media"`
	GoogleProfile   *string   `db:"google_business_profile_url"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type SEOMetadata struct {
	ID               string    `db:"id"`
	PagePath         string    `db:"page_path"`
	Title            string    `db:"title"`
	TitleAR          string    `db:"title_ar"`
	Description      string    `db:"description"`
	DescriptionAR    string    `db:"description_ar"`
	Keywords         []byte    `db:"keywords"`
	OGImage          *string   `db:"og_image"`
	SchemaType       string    `db:"schema_type"`
	AdditionalSchema []byte    `db:"additional_schema"`
	CanonicalURL     *string   `db:"canonical_url"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type MembershipApplication struct {
	ID             string    `db:"id"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	Email          string    `db:"email"`
	Phone          string    `db:"phone"`
	Address        string    `db:"address"`
	MembershipTier string    `db:"membership_tier"`
	Status         string    `db:"status"`
	AdminNotes     *string   `db:"admin_notes"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type MediaAsset struct {
	ID           string    `db:"id"`
	OwnerAdminID *string   `db:"owner_admin_id"`
	Bucket       string    `db:"bucket"`
	StorageKey   string    `db:"storage_key"`
	Filename     *string   `db:"filename"`
	ContentType  string    `db:"content_type"`
	SizeBytes    int64     `db:"size_bytes"`
	Sha256       *string   `db:"sha256"`
	CreatedAt    time.Time `db:"created_at"`
}

type ServerMetricSample struct {
	ID                string    `db:"id"`
	CapturedAt        time.Time `db:"captured_at"`
	HeapUsedBytes     int64     `db:"heap_used_bytes"`
	HeapMaxBytes      int64     `db:"heap_max_bytes"`
	SystemMemoryTotal int64     `db:"system_memory_total_bytes"`
	SystemMemoryUsed  int64     `db:"system_memory_used_bytes"`
	DiskTotalBytes    int64     `db:"disk_total_bytes"`
	DiskUsedBytes     int64     `db:"disk_used_bytes"`
	ProcessCpuLoad    float64   `db:"process_cpu_load"`
	SystemCpuLoad     float64   `db:"system_cpu_load"`
}
