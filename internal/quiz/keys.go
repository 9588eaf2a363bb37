package quiz

// KeyKind distinguishes the logical keys of the answer pad.
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeySubmit
	KeyDelete
)

// Key is one logical input event. The physical keyboard and the on-screen
// keypad both produce Keys, so they behave identically.
type Key struct {
	Kind KeyKind
	Char rune // set for KeyChar
}

// CharKey returns the Key for typing r.
func CharKey(r rune) Key {
	return Key{Kind: KeyChar, Char: r}
}

var (
	SubmitKey = Key{Kind: KeySubmit}
	DeleteKey = Key{Kind: KeyDelete}
)

// Label returns the text shown on the keypad button.
func (k Key) Label() string {
	switch k.Kind {
	case KeySubmit:
		return "⏎"
	case KeyDelete:
		return "⌫"
	default:
		return string(k.Char)
	}
}

// ParseKey maps a key name as reported by the terminal ("7", ".", "-",
// "enter", "backspace") to a Key.
func ParseKey(name string) (Key, bool) {
	switch name {
	case "enter":
		return SubmitKey, true
	case "backspace":
		return DeleteKey, true
	}
	r := []rune(name)
	if len(r) != 1 {
		return Key{}, false
	}
	switch c := r[0]; {
	case c >= '0' && c <= '9', c == '.', c == '-':
		return CharKey(c), true
	}
	return Key{}, false
}

// KeypadLayout is the on-screen keypad, row by row.
var KeypadLayout = [][]Key{
	{CharKey('7'), CharKey('8'), CharKey('9')},
	{CharKey('4'), CharKey('5'), CharKey('6')},
	{CharKey('1'), CharKey('2'), CharKey('3')},
	{CharKey('-'), CharKey('0'), CharKey('.')},
	{DeleteKey, SubmitKey},
}
