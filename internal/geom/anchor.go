package geom

// Anchor names one of nine reference positions on a rectangle. It is
// consumed by layout code; the geometry types never interpret it.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorCenterLeft
	AnchorCenter
	AnchorCenterRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

// String returns a human-readable representation of the anchor.
func (a Anchor) String() string {
	switch a {
	case AnchorTopLeft:
		return "TopLeft"
	case AnchorTop:
		return "Top"
	case AnchorTopRight:
		return "TopRight"
	case AnchorCenterLeft:
		return "CenterLeft"
	case AnchorCenter:
		return "Center"
	case AnchorCenterRight:
		return "CenterRight"
	case AnchorBottomLeft:
		return "BottomLeft"
	case AnchorBottom:
		return "Bottom"
	case AnchorBottomRight:
		return "BottomRight"
	default:
		return "Unknown"
	}
}
