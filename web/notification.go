package web

// Kind selects a notification's icon and colour.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notification is a toast shown in the top-right corner of the page. The
// client removes it after five seconds or when closed.
type Notification struct {
	Message string
	Kind    Kind
}

func NewNotification(kind Kind, message string) Notification {
	return Notification{Message: message, Kind: kind.normalize()}
}

func (k Kind) normalize() Kind {
	switch k {
	case KindSuccess, KindError:
		return k
	default:
		return KindInfo
	}
}

// Icon is the Font Awesome icon name.
func (n Notification) Icon() string {
	switch n.Kind.normalize() {
	case KindSuccess:
		return "check-circle"
	case KindError:
		return "exclamation-circle"
	default:
		return "info-circle"
	}
}

func (n Notification) Color() string {
	switch n.Kind.normalize() {
	case KindSuccess:
		return "#48bb78"
	case KindError:
		return "#f56565"
	default:
		return "#4299e1"
	}
}
