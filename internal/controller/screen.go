package controller

//go:generate go tool stringer -type=Screen -output=screen_string.go

// Screen is the single discrete view selector: exactly one screen renders at
// a time.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenShop
	ScreenCart
	ScreenOwner
	ScreenCheckout
	ScreenAwaitingAuth
)

// Modal is the sign-up/log-in overlay state, independent of the screen.
type Modal int

const (
	ModalNone Modal = iota
	ModalSignUp
	ModalLogIn
)
