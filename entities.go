package hours

import "strings"

// entityReplacer maps the fixed set of HTML entities the source page is
// known to emit onto literal characters. Entities outside this set pass
// through untouched.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&quot;", `"`,
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&apos;", "'",
	"&#39;", "'",
	"&#8216;", "‘",
	"&#8217;", "’",
	"&mdash;", "—",
	"&#8212;", "—",
	"&ndash;", "–",
)

// decodeEntities replaces the known entities in s with literal characters.
func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
