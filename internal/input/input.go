package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical preview action, not a physical key
type Action int

// Action constants using iota
const (
	ActionQuit Action = iota
	ActionToggleWrap
	ActionInvert
	ActionGrayscale
	ActionNextGradient
	ActionPrevGradient
	ActionNextCurve
	ActionPrevCurve
	ActionToggleRaw
	ActionToggleMarkers
	ActionToggleProfiling
	ActionSave
	ActionReload
	ActionMouseLeft
	ActionMouseRight
	ActionModControl
	ActionModShift
	ActionModAlt
	ActionModSuper
	ActionCount // Sentinel value for array sizing
)

var actionNames = [ActionCount]string{
	"quit", "toggle-wrap", "invert", "grayscale",
	"next-gradient", "prev-gradient", "next-curve", "prev-curve",
	"toggle-raw", "toggle-markers", "toggle-profiling", "save", "reload",
	"mouse-left", "mouse-right",
	"mod-control", "mod-shift", "mod-alt", "mod-super",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputManager manages keyboard and mouse input state and maps physical keys/buttons to logical actions
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Mouse button to action mapping
	mouseButtonToActions map[glfw.MouseButton][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Previous frame state (for edge detection)
	prevState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	cursorX, cursorY float64
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	// Set default key bindings
	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeyQ, ActionQuit)
	im.BindKey(glfw.KeyW, ActionToggleWrap)
	im.BindKey(glfw.KeyI, ActionInvert)
	im.BindKey(glfw.KeyG, ActionGrayscale)
	im.BindKey(glfw.KeyRight, ActionNextGradient)
	im.BindKey(glfw.KeyLeft, ActionPrevGradient)
	im.BindKey(glfw.KeyDown, ActionNextCurve)
	im.BindKey(glfw.KeyUp, ActionPrevCurve)
	im.BindKey(glfw.KeyR, ActionToggleRaw)
	im.BindKey(glfw.KeyM, ActionToggleMarkers)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyS, ActionSave)
	im.BindKey(glfw.KeyF5, ActionReload)

	// Set default mouse button bindings
	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)
	im.BindMouseButton(glfw.MouseButtonRight, ActionMouseRight)

	// Set default modifier key bindings
	im.BindKey(glfw.KeyLeftControl, ActionModControl)
	im.BindKey(glfw.KeyRightControl, ActionModControl)
	im.BindKey(glfw.KeyLeftShift, ActionModShift)
	im.BindKey(glfw.KeyRightShift, ActionModShift)
	im.BindKey(glfw.KeyLeftAlt, ActionModAlt)
	im.BindKey(glfw.KeyRightAlt, ActionModAlt)
	im.BindKey(glfw.KeyLeftSuper, ActionModSuper)
	im.BindKey(glfw.KeyRightSuper, ActionModSuper)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// UnbindMouseButton removes all action bindings for a mouse button
func (im *InputManager) UnbindMouseButton(button glfw.MouseButton) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.mouseButtonToActions, button)
}

// HandleKeyEvent processes a key event and updates internal state
// This can be called from a custom key callback
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	im.mu.Lock()
	for _, act := range actions {
		if act >= 0 && act < ActionCount {
			// Detect edges immediately when event arrives
			if isPressed && !im.currentState[act] {
				im.justPressed[act] = true
			}
			if !isPressed && im.currentState[act] {
				im.justReleased[act] = true
			}
			im.currentState[act] = isPressed
		}
	}
	im.mu.Unlock()
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
// This can be called from a custom mouse button callback
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.mouseButtonToActions[button]
	im.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press

	im.mu.Lock()
	for _, act := range actions {
		if act >= 0 && act < ActionCount {
			// Detect edges immediately when event arrives
			if isPressed && !im.currentState[act] {
				im.justPressed[act] = true
			}
			if !isPressed && im.currentState[act] {
				im.justReleased[act] = true
			}
			im.currentState[act] = isPressed
		}
	}
	im.mu.Unlock()
}

// HandleCursorEvent records the cursor position in window coordinates
func (im *InputManager) HandleCursorEvent(x, y float64) {
	im.mu.Lock()
	im.cursorX, im.cursorY = x, y
	im.mu.Unlock()
}

// Cursor returns the last recorded cursor position
func (im *InputManager) Cursor() (x, y float64) {
	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.cursorX, im.cursorY
}

// Attach installs the GLFW key, mouse button and cursor callbacks for this input manager
// This should be called once during initialization
func (im *InputManager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		im.HandleCursorEvent(x, y)
	})
}

// PostUpdate must be called at the end of each frame to update edge detection states
// This should be called after all input checks are done
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	// Reset edge flags and update prev state
	for i := range ActionCount {
		im.justPressed[i] = false
		im.justReleased[i] = false
		im.prevState[i] = im.currentState[i]
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}
