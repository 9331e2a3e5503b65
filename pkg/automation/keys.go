package automation

import "strings"

// KeyCode maps a friendly key name to its Android keycode token.
// Tokens that are already numeric or KEYCODE_* pass through unchanged.
func KeyCode(key string) string {
	key = strings.TrimSpace(key)
	switch strings.ToLower(key) {
	case "":
		return ""
	case "enter":
		return "KEYCODE_ENTER"
	case "back":
		return "KEYCODE_BACK"
	case "home":
		return "KEYCODE_HOME"
	case "menu":
		return "KEYCODE_MENU"
	case "delete", "backspace":
		return "KEYCODE_DEL"
	case "tab":
		return "KEYCODE_TAB"
	case "space":
		return "KEYCODE_SPACE"
	case "volume_up":
		return "KEYCODE_VOLUME_UP"
	case "volume_down":
		return "KEYCODE_VOLUME_DOWN"
	case "power":
		return "KEYCODE_POWER"
	case "camera":
		return "KEYCODE_CAMERA"
	case "search":
		return "KEYCODE_SEARCH"
	case "app_switch", "recents":
		return "KEYCODE_APP_SWITCH"
	case "dpad_up":
		return "KEYCODE_DPAD_UP"
	case "dpad_down":
		return "KEYCODE_DPAD_DOWN"
	case "dpad_left":
		return "KEYCODE_DPAD_LEFT"
	case "dpad_right":
		return "KEYCODE_DPAD_RIGHT"
	case "dpad_center":
		return "KEYCODE_DPAD_CENTER"
	default:
		return key
	}
}
