package models

// HeroSlide is one slide of the homepage carousel.
type HeroSlide struct {
	ID       int    `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Active   bool   `json:"active"`
}

// TopBanner is the site-wide promo strip.
type TopBanner struct {
	Text   string `json:"text"`
	Active bool   `json:"active"`
	Color  string `json:"color"`
}

// Settings is the publicly readable site configuration. It is fetched once
// per session and replaced as a whole object; consumers may assume every
// field is populated once loading finished.
type Settings struct {
	Phone1       string `json:"phone1"`
	Phone2       string `json:"phone2"`
	Email        string `json:"email"`
	Viber        string `json:"viber"`
	Address      string `json:"address"`
	WorkingHours string `json:"workingHours"`
	Weekend      string `json:"weekend"`

	Instagram string `json:"instagram"`
	TikTok    string `json:"tiktok"`
	Facebook  string `json:"facebook"`
	YouTube   string `json:"youtube"`

	SiteName        string `json:"siteName"`
	SiteDescription string `json:"siteDescription"`
	SiteKeywords    string `json:"siteKeywords"`

	HeroSlides []HeroSlide `json:"heroSlides"`
	TopBanner  TopBanner   `json:"topBanner"`

	DeliveryText string `json:"deliveryText"`
	PaymentText  string `json:"paymentText"`
	ReturnPolicy string `json:"returnPolicy"`

	FreeDeliveryFrom   int `json:"freeDeliveryFrom"`
	FirstOrderDiscount int `json:"firstOrderDiscount"`
	BulkOrderDiscount  int `json:"bulkOrderDiscount"`

	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`

	OrderNotificationEmail string `json:"orderNotificationEmail"`
	SupportEmail           string `json:"supportEmail"`

	Currency string `json:"currency"`
	Language string `json:"language"`
	Timezone string `json:"timezone"`

	ShowStock   bool `json:"showStock"`
	ShowReviews bool `json:"showReviews"`
}

// SettingsEnvelope is the backend response wrapper for /api/settings.
type SettingsEnvelope struct {
	SettingsData Settings `json:"settings_data"`
}

// DefaultSettings is the complete fallback configuration used when the
// backend cannot be reached, so downstream consumers never see a partially
// populated object.
func DefaultSettings() Settings {
	return Settings{
		Phone1:       "+380 (63) 650-74-49",
		Phone2:       "+380 (95) 251-03-47",
		Email:        "info@platansad.ua",
		Viber:        "+380636507449",
		Address:      "смт. Смига, вул. Садова, 15",
		WorkingHours: "Пн-Сб: 9:00-18:00",
		Weekend:      "Нд: вихідний",

		Instagram: "https://www.instagram.com/platansad.uaa",
		TikTok:    "https://www.tiktok.com/@platansad.ua",

		SiteName:        "PlatanSad",
		SiteDescription: "Професійний розсадник рослин в Україні",
		SiteKeywords:    "розсадник, рослини, туя, бонсай, хвойні",

		HeroSlides: []HeroSlide{
			{ID: 1, Image: "https://images.unsplash.com/photo-1494825514961-674db1ac2700", Title: "PlatanSad", Subtitle: "Професійний розсадник рослин", Active: true},
			{ID: 2, Image: "https://images.prom.ua/6510283244_w640_h640_bonsaj-nivaki-pinus.jpg", Title: "Бонсай Нівакі", Subtitle: "Японський стиль для вашого саду", Active: true},
			{ID: 3, Image: "https://images.prom.ua/5107353705_w640_h640_tuya-smaragd-smaragd.jpg", Title: "Туя Смарагд", Subtitle: "Ідеальний живопліт", Active: true},
			{ID: 4, Image: "https://images.prom.ua/713633902_w640_h640_hvojni-roslini.jpg", Title: "Хвойні рослини", Subtitle: "Вічнозелена краса", Active: true},
		},
		TopBanner: TopBanner{Text: "🎉 Знижка 20% на всі туї до кінця місяця!", Active: false, Color: "#10b981"},

		DeliveryText: "Ми працюємо з Новою Поштою. Безкоштовна доставка при замовленні від 1000₴.",
		PaymentText:  "Приймаємо оплату: накладений платіж, LiqPay (Visa/Mastercard).",
		ReturnPolicy: "Повернення та обмін товару протягом 14 днів.",

		FreeDeliveryFrom: 1000,

		PrimaryColor:   "#10b981",
		SecondaryColor: "#059669",
		AccentColor:    "#f59e0b",

		OrderNotificationEmail: "orders@platansad.ua",
		SupportEmail:           "support@platansad.ua",

		Currency: "₴",
		Language: "uk",
		Timezone: "Europe/Kiev",

		ShowStock:   true,
		ShowReviews: true,
	}
}
