package core

// KeyHandler receives a key code (one of the Key* constants) for every press
// and release.
type KeyHandler func(key int, pressed bool)

// ResizeHandler receives the new framebuffer size in pixels.
type ResizeHandler func(width, height int)

// Key codes, numerically equal to GLFW's. Letter keys identify the physical
// key and carry no case.
const (
	KeySpace  = 32
	Key0      = 48
	Key1      = 49
	Key2      = 50
	Key3      = 51
	KeyA      = 65
	KeyD      = 68
	KeyE      = 69
	KeyQ      = 81
	KeyR      = 82
	KeyS      = 83
	KeyW      = 87
	KeyX      = 88
	KeyEscape = 256
	KeyF2     = 291
)
