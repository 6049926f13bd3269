package color

// Named colors
var (
	Transparent = Color32{}
	White       = Color32{0xFF, 0xFF, 0xFF, 0xFF}
	Black       = RGB(0x00, 0x00, 0x00)
	Red         = RGB(0xFF, 0x00, 0x00)
	Green       = RGB(0x00, 0xFF, 0x00)
	Blue        = RGB(0x00, 0x00, 0xFF)

	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Orange      = RGB(255, 165, 0)
	DarkOrange  = RGB(255, 140, 0)
	OrangeRed   = RGB(255, 69, 0)
	Gold        = RGB(255, 215, 0)
	Crimson     = RGB(220, 20, 60)
	DarkRed     = RGB(139, 0, 0)
	ForestGreen = RGB(34, 139, 34)
	DarkTurq    = RGB(0, 206, 209)
	RoyalBlue   = RGB(65, 105, 225)
	Indigo      = RGB(75, 0, 130)
	Violet      = RGB(238, 130, 238)
	Gray        = RGB(128, 128, 128)
	DimGray     = RGB(105, 105, 105)
	WhiteSmoke  = RGB(245, 245, 245)
)

var byName = map[string]Color32{
	"transparent": Transparent,
	"white":       White,
	"black":       Black,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"yellow":      Yellow,
	"orange":      Orange,
	"darkorange":  DarkOrange,
	"orangered":   OrangeRed,
	"gold":        Gold,
	"crimson":     Crimson,
	"darkred":     DarkRed,
	"forestgreen": ForestGreen,
	"darkturq":    DarkTurq,
	"royalblue":   RoyalBlue,
	"indigo":      Indigo,
	"violet":      Violet,
	"gray":        Gray,
	"dimgray":     DimGray,
	"whitesmoke":  WhiteSmoke,
}

// Named looks up a lowercase color name
func Named(name string) (Color32, bool) {
	c, ok := byName[name]
	return c, ok
}
