package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyPage       = "page"
	KeyNode       = "node"
	KeyKind       = "kind"
	KeyPages      = "pages"
	KeyOutput     = "output"
	KeyModel      = "model"
	KeyAddr       = "addr"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Page(path string) slog.Attr       { return slog.String(KeyPage, path) }
func Node(name string) slog.Attr       { return slog.String(KeyNode, name) }
func Kind(kind string) slog.Attr       { return slog.String(KeyKind, kind) }
func Pages(n int) slog.Attr            { return slog.Int(KeyPages, n) }
func Output(dir string) slog.Attr      { return slog.String(KeyOutput, dir) }
func Model(path string) slog.Attr      { return slog.String(KeyModel, path) }
func Addr(addr string) slog.Attr       { return slog.String(KeyAddr, addr) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
