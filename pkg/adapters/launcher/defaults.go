package launcher

import "runtime"

// defaultApps returns the built-in known-apps table for the current OS.
// Names are lower-cased; values are argv vectors.
func defaultApps() map[string][]string {
	switch runtime.GOOS {
	case "windows":
		return map[string][]string{
			"chrome":     {"cmd", "/c", "start", "chrome"},
			"firefox":    {"cmd", "/c", "start", "firefox"},
			"edge":       {"cmd", "/c", "start", "msedge"},
			"notepad":    {"notepad"},
			"calculator": {"calc"},
			"explorer":   {"explorer"},
			"terminal":   {"cmd", "/c", "start", "cmd"},
		}
	case "darwin":
		return map[string][]string{
			"chrome":     {"open", "-a", "Google Chrome"},
			"firefox":    {"open", "-a", "Firefox"},
			"safari":     {"open", "-a", "Safari"},
			"notes":      {"open", "-a", "Notes"},
			"calculator": {"open", "-a", "Calculator"},
			"finder":     {"open", "-a", "Finder"},
			"terminal":   {"open", "-a", "Terminal"},
		}
	default: // linux and the rest of the unixes
		return map[string][]string{
			"chrome":     {"google-chrome"},
			"chromium":   {"chromium"},
			"firefox":    {"firefox"},
			"gedit":      {"gedit"},
			"calculator": {"gnome-calculator"},
			"files":      {"nautilus"},
			"terminal":   {"x-terminal-emulator"},
		}
	}
}

// fallbackCommand treats an unknown name as an executable to launch, using
// the OS opener where one exists.
func fallbackCommand(name string) []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"cmd", "/c", "start", "", name}
	case "darwin":
		return []string{"open", "-a", name}
	default:
		return []string{name}
	}
}
