package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ScanLibrary Phase = iota
	WriteTags
	ExportZip
	ConvertAudio
)

func (p Phase) String() string {
	switch p {
	case ScanLibrary:
		return "scan_library"
	case WriteTags:
		return "write_tags"
	case ExportZip:
		return "export_zip"
	case ConvertAudio:
		return "convert_audio"
	default:
		return ""
	}
}

func writingTagsUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteTags,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Writing tags: %s", step, total, name),
	}
}

func writeFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteTags,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}

func zipEntryUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportZip,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Adding %s...", step, total, name),
	}
}

func zipDoneUpdate(total int, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportZip,
		Step:    total,
		Total:   total,
		Message: fmt.Sprintf("✓ Archive written: %s", path),
		Data:    path,
	}
}

func convertUpdate(step, total int, message string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ConvertAudio,
		Step:    step,
		Total:   total,
		Message: message,
	}
}
