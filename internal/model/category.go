package model

// Category groups items under a predefined icon tag. The server owns the
// records; the client only normalizes them for display.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Title       string `json:"-"`
	Icon        Icon   `json:"-"`
	Color       string `json:"-"`
	Description string `json:"description,omitempty"`
}

// CategoryColor is the single display color used for all categories.
const CategoryColor = "#FFB300"

// Book reports whether the category activates book semantics (author field,
// read status, bulk import).
func (c Category) Book() bool {
	return c.Icon == IconBook
}

// Icon is a predefined category icon tag.
type Icon string

// Supported icon tags.
const (
	IconFolder           Icon = "folder"
	IconCouch            Icon = "couch"
	IconBed              Icon = "bed"
	IconUtensils         Icon = "utensils"
	IconShirt            Icon = "shirt"
	IconTV               Icon = "tv"
	IconBook             Icon = "book"
	IconCar              Icon = "car"
	IconHome             Icon = "home"
	IconHeart            Icon = "heart"
	IconGift             Icon = "gift"
	IconStar             Icon = "star"
	IconShoppingBag      Icon = "shopping-bag"
	IconCoffee           Icon = "coffee"
	IconMusic            Icon = "music"
	IconPalette          Icon = "palette"
	IconGamepad          Icon = "gamepad"
	IconCamera           Icon = "camera"
	IconBicycle          Icon = "bicycle"
	IconUmbrella         Icon = "umbrella"
	IconGlasses          Icon = "glasses"
	IconDesktop          Icon = "desktop"
	IconBath             Icon = "bath"
	IconChild            Icon = "child"
	IconDumbbell         Icon = "dumbbell"
	IconBriefcaseMedical Icon = "briefcase-medical"
	IconGraduationCap    Icon = "graduation-cap"
	IconBriefcase        Icon = "briefcase"
	IconLeaf             Icon = "leaf"
	IconStore            Icon = "store"
	IconPlane            Icon = "plane"
	IconMobile           Icon = "mobile-alt"
	IconGem              Icon = "gem"
	IconSeedling         Icon = "seedling"
	IconGlobe            Icon = "globe"
	IconEllipsis         Icon = "ellipsis-h"
)

var icons = map[Icon]bool{
	IconFolder: true, IconCouch: true, IconBed: true, IconUtensils: true,
	IconShirt: true, IconTV: true, IconBook: true, IconCar: true,
	IconHome: true, IconHeart: true, IconGift: true, IconStar: true,
	IconShoppingBag: true, IconCoffee: true, IconMusic: true, IconPalette: true,
	IconGamepad: true, IconCamera: true, IconBicycle: true, IconUmbrella: true,
	IconGlasses: true, IconDesktop: true, IconBath: true, IconChild: true,
	IconDumbbell: true, IconBriefcaseMedical: true, IconGraduationCap: true,
	IconBriefcase: true, IconLeaf: true, IconStore: true, IconPlane: true,
	IconMobile: true, IconGem: true, IconSeedling: true, IconGlobe: true,
	IconEllipsis: true,
}

// ParseIcon maps a raw icon tag to the Icon enum. Unknown or empty tags fall
// back to the folder icon, so bad server data never reaches display code.
func ParseIcon(tag string) Icon {
	if icons[Icon(tag)] {
		return Icon(tag)
	}
	return IconFolder
}

// KnownIcon reports whether a tag is one of the supported icon names.
func KnownIcon(tag string) bool {
	return icons[Icon(tag)]
}
