package landing

// ToastKind classifies a transient notification.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Valid reports whether k is a known kind.
func (k ToastKind) Valid() bool {
	switch k {
	case ToastSuccess, ToastError, ToastInfo:
		return true
	}
	return false
}

// Toast is a short-lived message shown to the user.
type Toast struct {
	Kind    ToastKind `json:"type"`
	Message string    `json:"message"`
}
