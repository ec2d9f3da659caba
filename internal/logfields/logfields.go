package logfields

import "log/slog"

// Canonical log field names shared by the scanner and the CLI.
const (
	KeyPackage = "package"
	KeyObject  = "object"
	KeyKind    = "kind"
	KeyMember  = "member"
	KeyDepth   = "depth"
	KeyReason  = "reason"
	KeyOutput  = "output"
	KeyError   = "error"
)

func Package(path string) slog.Attr { return slog.String(KeyPackage, path) }
func Object(name string) slog.Attr  { return slog.String(KeyObject, name) }
func Kind(k string) slog.Attr       { return slog.String(KeyKind, k) }
func Member(name string) slog.Attr  { return slog.String(KeyMember, name) }
func Depth(d int) slog.Attr         { return slog.Int(KeyDepth, d) }
func Reason(r string) slog.Attr     { return slog.String(KeyReason, r) }
func Output(path string) slog.Attr  { return slog.String(KeyOutput, path) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
