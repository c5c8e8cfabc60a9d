/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package markup

// makeCommentTag renders HTML and, when the tag carries an id or classes,
// brackets it with selector comments for orientation in long documents.
func makeCommentTag(r *renderer, t *tagRecord, content string) string {
	html := makeHTMLTag(r, t, content)
	if t.ID == "" && len(t.Classes) == 0 {
		return html
	}

	selector := ""
	if t.ID != "" {
		selector += "#" + t.ID
	}
	for _, c := range t.Classes {
		selector += "." + c
	}

	return "<!-- " + selector + " -->\n" + html + "\n<!-- /" + selector + " -->"
}
