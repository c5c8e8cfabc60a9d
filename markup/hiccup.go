/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import "strings"

// makeHiccupTag renders one tag as a Hiccup vector. Multi-line or block
// children move to an indented line; everything else stays inline.
func makeHiccupTag(r *renderer, t *tagRecord, content string) string {
	var b strings.Builder

	b.WriteString("[:" + t.Name)
	if t.ID != "" {
		b.WriteString("#" + t.ID)
	}
	for _, c := range t.Classes {
		b.WriteString("." + c)
	}

	if len(t.Props) > 0 {
		pairs := make([]string, len(t.Props))
		for i, p := range t.Props {
			pairs[i] = ":" + p.Key + ` "` + p.Value + `"`
		}
		b.WriteString(" {" + strings.Join(pairs, ", ") + "}")
	}

	if t.Text != "" {
		b.WriteString(` "` + t.Text + `"`)
	}

	if content != "" {
		if strings.Contains(content, "\n") || t.Settings.Block {
			b.WriteString("\n" + r.indent(content))
		} else {
			b.WriteString(" " + content)
		}
	}

	b.WriteString("]")
	return b.String()
}
