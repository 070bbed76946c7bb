package forward

import (
	"encoding/json"
	"fmt"

	"github.com/stigoleg/mascot-overlay/internal/pointer"
)

type eventInit struct {
	Bubbles     bool   `json:"bubbles"`
	Cancelable  bool   `json:"cancelable"`
	ClientX     int    `json:"clientX"`
	ClientY     int    `json:"clientY"`
	ScreenX     int    `json:"screenX"`
	ScreenY     int    `json:"screenY"`
	Buttons     int    `json:"buttons"`
	PointerType string `json:"pointerType"`
	IsPrimary   bool   `json:"isPrimary"`
}

// moveTemplate targets the first canvas, else the body, and swallows every
// error so a half-loaded page never surfaces a script exception.
const moveTemplate = `(function(){try{` +
	`var t=document.querySelector('canvas')||document.body;if(!t){return;}` +
	`var o=%s;` +
	`if(typeof PointerEvent==='function'){t.dispatchEvent(new PointerEvent('pointermove',o));}` +
	`t.dispatchEvent(new MouseEvent('mousemove',o));` +
	`}catch(e){}})();`

// MoveScript returns the script that dispatches a synthetic pointer-move with
// local (client) and global (screen) coordinates and no buttons pressed.
func MoveScript(local, global pointer.Point) string {
	init, _ := json.Marshal(eventInit{
		Bubbles:     true,
		Cancelable:  true,
		ClientX:     local.X,
		ClientY:     local.Y,
		ScreenX:     global.X,
		ScreenY:     global.Y,
		Buttons:     0,
		PointerType: "mouse",
		IsPrimary:   true,
	})
	return fmt.Sprintf(moveTemplate, init)
}
