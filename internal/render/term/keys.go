package term

import "github.com/SeamusWaldron/cubeview/internal/app"

const esc = 0x1b

// csiKeys maps the tail of ESC [ sequences to keymap names.
var csiKeys = map[string]string{
	"A":  app.KeyUp,
	"B":  app.KeyDown,
	"C":  app.KeyRight,
	"D":  app.KeyLeft,
	"5~": app.KeyPageUp,
	"6~": app.KeyPageDown,
}

// parseKeys splits raw terminal input into key names. Unknown escape
// sequences are dropped.
func parseKeys(data []byte) []string {
	var keys []string
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c != esc {
			if c >= 0x20 && c < 0x7f {
				keys = append(keys, string(rune(c)))
			}
			continue
		}
		if i+1 >= len(data) || (data[i+1] != '[' && data[i+1] != 'O') {
			continue
		}
		// Final byte of a CSI/SS3 sequence is in 0x40..0x7e.
		j := i + 2
		for j < len(data) && (data[j] < 0x40 || data[j] > 0x7e) {
			j++
		}
		if j >= len(data) {
			return keys
		}
		if name, ok := csiKeys[string(data[i+2:j+1])]; ok {
			keys = append(keys, name)
		}
		i = j
	}
	return keys
}
