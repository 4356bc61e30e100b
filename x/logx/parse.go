package logx

import "strings"

// Line is one console line written by Print.
type Line struct {
	Level  Level
	Msg    string
	Fields []any // alternating key, value strings
}

// ParseLine splits "Info: msg k=v ..." back into its parts. Trailing k=v
// tokens become fields; a value containing spaces is folded into the
// message. ok is false when the line has no level prefix.
func ParseLine(s string) (l Line, ok bool) {
	s = strings.TrimRight(s, "\r\n")
	head, rest, found := strings.Cut(s, ": ")
	if !found {
		return Line{}, false
	}
	switch head {
	case "Debug":
		l.Level = LevelDebug
	case "Info":
		l.Level = LevelInfo
	case "Warn":
		l.Level = LevelWarn
	default:
		return Line{}, false
	}

	tok := strings.Fields(rest)
	i := len(tok)
	for i > 0 {
		k, _, isKV := strings.Cut(tok[i-1], "=")
		if !isKV || k == "" {
			break
		}
		i--
	}
	l.Msg = strings.Join(tok[:i], " ")
	for _, t := range tok[i:] {
		k, v, _ := strings.Cut(t, "=")
		l.Fields = append(l.Fields, k, v)
	}
	return l, true
}
