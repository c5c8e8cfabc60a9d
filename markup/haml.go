/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

import "strings"

// makeHAMLTag renders one tag as a HAML line with indented body. The %div
// prefix is implied when an id or class is present.
func makeHAMLTag(r *renderer, t *tagRecord, content string) string {
	var b strings.Builder

	if t.Name != "div" || (t.ID == "" && len(t.Classes) == 0) {
		b.WriteString("%" + t.Name)
	}
	if t.ID != "" {
		b.WriteString("#" + t.ID)
	}
	for _, c := range t.Classes {
		b.WriteString("." + c)
	}

	if len(t.Props) > 0 {
		pairs := make([]string, len(t.Props))
		for i, p := range t.Props {
			pairs[i] = ":" + p.Key + ` => "` + p.Value + `"`
		}
		b.WriteString("{" + strings.Join(pairs, ", ") + "}")
	}

	selfClosing := t.Text == "" && content == "" &&
		(!t.HasBody || t.Settings.SelfClosing)
	if selfClosing {
		b.WriteString("/")
		return b.String()
	}

	if t.Text != "" {
		b.WriteString("\n" + r.indent(t.Text))
	}
	if content != "" {
		b.WriteString("\n" + r.indent(content))
	}
	return b.String()
}
